// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import "github.com/cpmech/gosl/chk"

// register strategy
func init() {
	SetDetector("threshold", func(prm Params) (Detector, error) {
		if prm.Threshold <= 0 {
			return nil, chk.Err("threshold detector needs a positive threshold. %g is invalid", prm.Threshold)
		}
		return &Threshold{limit: prm.Threshold}, nil
	})
}

// Threshold flags collapse at the first step where dS/dt drops below a
// fixed negative limit. Simple and interpretable; the limit must be
// calibrated per structure.
type Threshold struct {
	limit float64 // positive; collapse when dS/dt < -limit
	at    int     // flagged step
	found bool    // terminal detection latch
}

// Step feeds one dS/dt sample
func (o *Threshold) Step(dsdt float64, step int) {
	if o.found {
		return
	}
	if dsdt < -o.limit {
		o.at, o.found = step, true
	}
}

// Detected returns the flagged step, if any
func (o *Threshold) Detected() (int, bool) {
	return o.at, o.found
}
