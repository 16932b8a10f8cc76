// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"

	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/inp"
)

// Domain holds a frame together with its beam elements and the global
// assembly workspace. One Domain serves one simulation run; the element
// set is built once and the active flags of the members decide which
// elements contribute at each step.
type Domain struct {
	Frame *inp.FrameData // the structural model
	Beams []*Beam        // one element per member, aligned with Frame.Members
	K     [][]float64    // global stiffness matrix [ndof][ndof]
	F     []float64      // global load vector [ndof]
}

// NewDomain builds all beam elements for a checked frame
func NewDomain(frame *inp.FrameData) (o *Domain, err error) {
	o = new(Domain)
	o.Frame = frame
	o.Beams = make([]*Beam, len(frame.Members))
	for i, m := range frame.Members {
		o.Beams[i], err = NewBeam(frame, m)
		if err != nil {
			return nil, err
		}
	}
	ndof := frame.Ndof()
	o.K = la.MatAlloc(ndof, ndof)
	o.F = make([]float64, ndof)
	return
}

// Assemble accumulates active members' stiffness into the global matrix.
// Inactive members contribute nothing; DOFs that lose all stiffness
// paths stay at zero and are dealt with by ApplyBC and the solver.
func (o *Domain) Assemble() {
	for i := range o.K {
		la.VecFill(o.K[i], 0)
	}
	for _, b := range o.Beams {
		if !b.Mbr.Active {
			continue
		}
		b.AddToK(o.K)
	}
}

// BuildLoadVector assembles the global load vector scaled by loadFactor
func (o *Domain) BuildLoadVector(loadFactor float64) {
	la.VecFill(o.F, 0)
	for _, l := range o.Frame.Loads {
		o.F[l.NodeId*inp.NdofPerNode+l.Dof] += l.Value * loadFactor
	}
}

// ApplyBC enforces boundary conditions on K and F: fixed DOF rows and
// columns are zeroed with a unit diagonal, and the load entry there is
// discarded (authoritative; a load at a constrained DOF is intentional
// dead weight carried straight into the support).
//
// Free DOFs left with a zero diagonal (no stiffness path, e.g. the
// unmodelled torsion DOFs or a joint isolated by failures) are also
// given a unit diagonal when unloaded, pinning them at zero
// displacement. The ids of zero-stiffness DOFs that still carry load
// are returned: the structure cannot equilibrate these and the solver
// reports collapse.
func (o *Domain) ApplyBC() (loadedNullDofs []int) {
	ndof := o.Frame.Ndof()
	for _, nd := range o.Frame.Nodes {
		for _, dof := range nd.FixedDofs {
			g := nd.Id*inp.NdofPerNode + dof
			for j := 0; j < ndof; j++ {
				o.K[g][j] = 0
				o.K[j][g] = 0
			}
			o.K[g][g] = 1
			o.F[g] = 0
		}
	}
	for g := 0; g < ndof; g++ {
		if o.K[g][g] != 0 {
			continue
		}
		if o.F[g] != 0 {
			loadedNullDofs = append(loadedNullDofs, g)
			continue
		}
		o.K[g][g] = 1
	}
	return
}
