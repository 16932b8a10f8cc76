// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// default bound on the 1-norm condition number of the global stiffness
// matrix; beyond it the structure is treated as collapsed
const DefCondTol = 1e12

// tolerance below which a negative strain energy is numerical noise;
// larger negative values are anomalies worth reporting
const energyTol = 1e-9

// CollapsedError signals that the stiffness matrix became singular or
// ill-conditioned: the structure has no stable equilibrium under the
// current active-member set. This is a first-class outcome of a run,
// not a defect.
type CollapsedError struct {
	LoadFactor float64 // load factor at the point of singularity
	ActiveIds  []int   // members still active at that point
	Cond       float64 // condition number estimate (0 if a loaded DOF lost all stiffness)
}

func (e *CollapsedError) Error() string {
	if e.Cond > 0 {
		return fmt.Sprintf("structure collapsed: stiffness matrix ill-conditioned (cond=%.3e) at load factor %g with %d active members", e.Cond, e.LoadFactor, len(e.ActiveIds))
	}
	return fmt.Sprintf("structure collapsed: loaded DOF without stiffness path at load factor %g with %d active members", e.LoadFactor, len(e.ActiveIds))
}

// State is the response of one member at one step
type State struct {
	MemberId int     // corresponds to inp.Member.Id
	Energy   float64 // elastic strain energy; zero for failed members
	Axial    float64 // axial force N (positive tension)
	M0, M1   float64 // bending moments at start and end nodes
	Failed   bool    // member was inactive at this step
}

// Solution is the outcome of one equilibrium solve
type Solution struct {
	Step       int       // simulation step index
	LoadFactor float64   // load multiplier used
	U          []float64 // global displacement vector [ndof]
	States     []State   // per-member response, aligned with Frame.Members
	Total      float64   // total strain energy
}

// Solve assembles and solves K*u = F for the current active-member set
// and recovers per-member strain energies and internal forces.
// A singular or ill-conditioned system returns *CollapsedError.
func (o *Domain) Solve(step int, loadFactor, condTol float64, logger *slog.Logger) (sol *Solution, err error) {

	// assemble
	o.Assemble()
	o.BuildLoadVector(loadFactor)
	if nulls := o.ApplyBC(); len(nulls) > 0 {
		return nil, &CollapsedError{LoadFactor: loadFactor, ActiveIds: o.Frame.ActiveIds()}
	}

	// solve
	ndof := o.Frame.Ndof()
	kd := mat.NewDense(ndof, ndof, nil)
	for i := 0; i < ndof; i++ {
		kd.SetRow(i, o.K[i])
	}
	if condTol <= 0 {
		condTol = DefCondTol
	}
	cond := mat.Cond(kd, 1)
	if cond > condTol {
		return nil, &CollapsedError{LoadFactor: loadFactor, ActiveIds: o.Frame.ActiveIds(), Cond: cond}
	}
	var u mat.VecDense
	if e := u.SolveVec(kd, mat.NewVecDense(ndof, o.F)); e != nil {
		return nil, &CollapsedError{LoadFactor: loadFactor, ActiveIds: o.Frame.ActiveIds(), Cond: cond}
	}

	// recover member states
	sol = &Solution{Step: step, LoadFactor: loadFactor, U: make([]float64, ndof)}
	copy(sol.U, u.RawVector().Data)
	sol.States = make([]State, len(o.Frame.Members))
	for i, b := range o.Beams {
		st := &sol.States[i]
		st.MemberId = b.Mbr.Id
		if !b.Mbr.Active {
			st.Failed = true
			continue
		}
		en, n, m0, m1 := b.Recover(sol.U)
		if en < 0 {
			if en < -energyTol {
				logger.Warn("negative strain energy clamped to zero",
					"member", b.Mbr.Id, "step", step, "energy", en)
			}
			en = 0
		}
		st.Energy, st.Axial, st.M0, st.M1 = en, n, m0, m1
		sol.Total += en
	}
	return
}
