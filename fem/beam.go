// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the frame analysis core: stiffness assembly,
// equilibrium solving, member failure evaluation and post-failure
// energy redistribution
package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/inp"
)

// number of element DOFs: 6 per end node
const nu = 2 * inp.NdofPerNode

// Beam represents a 3D Euler-Bernoulli frame element with uncoupled
// axial and strong-axis bending stiffness. Torsion and weak-axis
// bending are not modelled; their DOF entries carry zero stiffness and
// stay decoupled from the solution.
//
//        y1
//         ^
//         |
//         o-------------------------------o
//         |                               |
//       (y2)-----------------------------(1)------> y0
//
type Beam struct {

	// basic data
	Mbr *inp.Member // the member this element represents
	L   float64     // (derived) length of beam

	// unit vectors aligned with beam element
	e0 []float64 // [3] unit vector aligned with y0-axis (member axis)
	e1 []float64 // [3] unit vector aligned with y1-axis
	e2 []float64 // [3] unit vector aligned with y2-axis

	// vectors and matrices
	T    [][]float64 // global-to-local transformation matrix [nu][nu]
	Kl   [][]float64 // local K matrix
	K    [][]float64 // global K matrix
	Umap []int       // assembly map: global DOF indices of the two end nodes

	// scratchpad
	ue []float64 // local u vector
	fe []float64 // local internal force vector
}

// NewBeam derives length, orientation and stiffness for one member
func NewBeam(frame *inp.FrameData, mbr *inp.Member) (o *Beam, err error) {

	// basic data
	o = new(Beam)
	o.Mbr = mbr
	n0 := frame.Node(mbr.N0)
	n1 := frame.Node(mbr.N1)

	// length and member axis
	dx := []float64{n1.X - n0.X, n1.Y - n0.Y, n1.Z - n0.Z}
	o.L = math.Sqrt(dx[0]*dx[0] + dx[1]*dx[1] + dx[2]*dx[2])
	if o.L < 1e-10 {
		return nil, chk.Err("member %d has zero length", mbr.Id)
	}
	o.e0 = []float64{dx[0] / o.L, dx[1] / o.L, dx[2] / o.L}

	// reference vector orienting the bending plane: global y (vertical),
	// so gravity-direction loads engage the modelled bending stiffness;
	// near-vertical members switch to global z
	ref := []float64{0, 1, 0}
	if math.Abs(o.e0[1]) >= 0.99 {
		ref = []float64{0, 0, 1}
	}

	// unit vectors: e2 := e0 cross ref, e1 := e2 cross e0
	o.e1 = make([]float64, 3)
	o.e2 = make([]float64, 3)
	utl.Cross3d(o.e2, o.e0, ref)
	nrm2 := la.VecNorm(o.e2)
	for i := 0; i < 3; i++ {
		o.e2[i] /= nrm2
	}
	utl.Cross3d(o.e1, o.e2, o.e0)

	// global-to-local transformation matrix
	o.T = la.MatAlloc(nu, nu)
	for k := 0; k < 4; k++ {
		o.T[3*k+0][3*k+0], o.T[3*k+0][3*k+1], o.T[3*k+0][3*k+2] = o.e0[0], o.e0[1], o.e0[2]
		o.T[3*k+1][3*k+0], o.T[3*k+1][3*k+1], o.T[3*k+1][3*k+2] = o.e1[0], o.e1[1], o.e1[2]
		o.T[3*k+2][3*k+0], o.T[3*k+2][3*k+1], o.T[3*k+2][3*k+2] = o.e2[0], o.e2[1], o.e2[2]
	}

	// constants
	EA := mbr.Mat.E * mbr.A
	EI := mbr.Mat.E * mbr.I
	l := o.L
	ll := l * l
	lll := l * ll

	// stiffness matrix in local system: axial + strong-axis bending
	o.Kl = la.MatAlloc(nu, nu)
	o.Kl[0][0], o.Kl[6][6] = EA/l, EA/l
	o.Kl[0][6], o.Kl[6][0] = -EA/l, -EA/l

	o.Kl[1][1], o.Kl[7][7] = 12.0*EI/lll, 12.0*EI/lll
	o.Kl[1][7], o.Kl[7][1] = -12.0*EI/lll, -12.0*EI/lll
	o.Kl[1][5], o.Kl[5][1] = 6.0*EI/ll, 6.0*EI/ll
	o.Kl[1][11], o.Kl[11][1] = 6.0*EI/ll, 6.0*EI/ll
	o.Kl[5][7], o.Kl[7][5] = -6.0*EI/ll, -6.0*EI/ll
	o.Kl[7][11], o.Kl[11][7] = -6.0*EI/ll, -6.0*EI/ll
	o.Kl[5][5], o.Kl[11][11] = 4.0*EI/l, 4.0*EI/l
	o.Kl[5][11], o.Kl[11][5] = 2.0*EI/l, 2.0*EI/l

	// stiffness matrix in global system
	o.K = la.MatAlloc(nu, nu)
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := 1 * trans(T) * Kl * T

	// assembly map
	o.Umap = make([]int, nu)
	for i := 0; i < inp.NdofPerNode; i++ {
		o.Umap[i] = n0.Id*inp.NdofPerNode + i
		o.Umap[i+inp.NdofPerNode] = n1.Id*inp.NdofPerNode + i
	}

	// scratchpad
	o.ue = make([]float64, nu)
	o.fe = make([]float64, nu)
	return
}

// AddToK accumulates the element stiffness into the global matrix
func (o *Beam) AddToK(K [][]float64) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			K[I][J] += o.K[i][j]
		}
	}
}

// Recover computes the element response for a global displacement
// vector: strain energy, axial force and the two end bending moments.
// Energy is the quadratic form ue'*Kl*ue/2 in local coordinates, which
// separates into axial and bending contributions.
func (o *Beam) Recover(u []float64) (energy, axial, m0, m1 float64) {

	// gather and rotate: ue := T * u[Umap]
	for i := range o.ue {
		o.ue[i] = 0
		for j, J := range o.Umap {
			o.ue[i] += o.T[i][j] * u[J]
		}
	}

	// internal forces: fe := Kl * ue
	la.MatVecMul(o.fe, 1, o.Kl, o.ue)

	// energy = ue . fe / 2
	for i := 0; i < nu; i++ {
		energy += o.ue[i] * o.fe[i]
	}
	energy /= 2.0

	// axial force and end moments
	axial = o.fe[0]
	m0 = o.fe[5]
	m1 = o.fe[11]
	return
}
