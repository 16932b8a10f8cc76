// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/inp"
)

// Redistribute transfers the strain energy of a newly failed member
// into the surviving members that share one of its end nodes,
// proportionally to each neighbour's current energy share among the
// neighbours (members already carrying more energy absorb more). The
// failed member's energy is zeroed. One explicit relaxation step; the
// model is phenomenological and stands in for a full nonlinear
// re-equilibration.
//
// Total energy is conserved up to the configured dissipation fraction
// (0 = fully conserved). Special cases: neighbours all at zero energy
// share equally; a failed member with no active neighbour spills into
// all active members; with no active member left the energy is lost
// and reported in the returned dissipated amount.
func Redistribute(frame *inp.FrameData, sol *Solution, failedId int, dissipation float64) (dissipated float64, err error) {
	if dissipation < 0 || dissipation > 1 {
		return 0, chk.Err("dissipation fraction must be within [0,1]. %g is invalid", dissipation)
	}

	// failed member and its released energy
	fm := frame.Member(failedId)
	if fm == nil {
		return 0, chk.Err("cannot redistribute: member %d not found", failedId)
	}
	var fs *State
	for i := range sol.States {
		if sol.States[i].MemberId == failedId {
			fs = &sol.States[i]
		}
	}
	if fs == nil {
		return 0, chk.Err("cannot redistribute: no state for member %d", failedId)
	}
	release := fs.Energy * (1 - dissipation)
	dissipated = fs.Energy * dissipation
	fs.Energy = 0

	// receivers: active members sharing an end node; fall back to all
	// active members when the failed member ended up isolated
	recv := neighbourIdxs(frame, fm)
	if len(recv) == 0 {
		for i, m := range frame.Members {
			if m.Active {
				recv = append(recv, i)
			}
		}
	}
	if len(recv) == 0 {
		dissipated += release
		sol.Total = 0
		return
	}

	// inject proportionally to current energy share
	sum := 0.0
	for _, i := range recv {
		sum += sol.States[i].Energy
	}
	if sum > 0 {
		for _, i := range recv {
			sol.States[i].Energy += release * sol.States[i].Energy / sum
		}
	} else {
		for _, i := range recv {
			sol.States[i].Energy += release / float64(len(recv))
		}
	}

	// new total
	sol.Total = 0
	for i := range sol.States {
		sol.Total += sol.States[i].Energy
	}
	return
}

// neighbourIdxs returns the indices (into Frame.Members) of active
// members sharing an end node with m
func neighbourIdxs(frame *inp.FrameData, m *inp.Member) (idxs []int) {
	for i, other := range frame.Members {
		if !other.Active || other.Id == m.Id {
			continue
		}
		if other.N0 == m.N0 || other.N0 == m.N1 || other.N1 == m.N0 || other.N1 == m.N1 {
			idxs = append(idxs, i)
		}
	}
	return
}
