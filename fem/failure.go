// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/inp"
)

// tolerance for breaking stress-ratio ties; equal ratios within this
// margin go to the lowest member id
const ratioTol = 1e-12

// Event records one member failure
type Event struct {
	MemberId   int     // the member that failed
	Step       int     // step at which it failed
	Ratio      float64 // stress ratio sigma_max/sigma_lim at failure (> 1)
	LoadFactor float64 // load factor at failure
}

// CombinedStress computes the maximum combined axial + bending stress
// in a member:
//
//   sigma_max = |N|/A + |M_max|*c/I
//
// where M_max is the larger-magnitude end moment and c the
// extreme-fibre distance.
func CombinedStress(m *inp.Member, st *State) float64 {
	sigA := math.Abs(st.Axial) / m.A
	mmax := math.Max(math.Abs(st.M0), math.Abs(st.M1))
	return sigA + mmax*m.C/m.I
}

// EvalFailure checks all active members against their material stress
// limit and deactivates at most the single most-overstressed one
// (highest ratio above 1). Restricting failures to one member per step
// gives a deterministic, reproducible failure sequence instead of
// simultaneous multi-member removal. Returns the failure event, or
// ok=false when no member is overstressed.
func EvalFailure(frame *inp.FrameData, sol *Solution, step int, loadFactor float64) (ev Event, ok bool) {
	worst := -1
	best := 1.0
	for i, m := range frame.Members {
		if !m.Active {
			continue
		}
		ratio := CombinedStress(m, &sol.States[i]) / m.Mat.SigY
		switch {
		case ratio > best+ratioTol:
			best = ratio
			worst = i
		case worst >= 0 && ratio > best-ratioTol && m.Id < frame.Members[worst].Id:
			// tie: the Members slice is not necessarily ordered by id
			worst = i
		}
	}
	if worst < 0 {
		return
	}

	// deactivate; monotonic, never reversed
	m := frame.Members[worst]
	m.Active = false
	m.FailOrder = len(frame.Members) - frame.Nactive() - 1
	sol.States[worst].Failed = true
	return Event{MemberId: m.Id, Step: step, Ratio: best, LoadFactor: loadFactor}, true
}
