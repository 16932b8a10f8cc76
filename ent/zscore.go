// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// register strategy
func init() {
	SetDetector("zscore", func(prm Params) (Detector, error) {
		if prm.Window < 2 {
			return nil, chk.Err("zscore detector needs a window of at least 2 samples. %d is invalid", prm.Window)
		}
		if prm.NSig <= 0 {
			return nil, chk.Err("zscore detector needs a positive sigma multiplier. %g is invalid", prm.NSig)
		}
		return &ZScore{size: prm.Window, nsig: prm.NSig}, nil
	})
}

// ZScore flags collapse when the current dS/dt falls more than nsig
// standard deviations below the rolling mean of the previous samples.
// Self-calibrating: the window adapts the baseline to each run. No
// detection is possible before the window fills, and a degenerate
// window (zero spread) never fires.
type ZScore struct {
	size  int       // window capacity
	nsig  float64   // deviations below the mean that flag collapse
	win   []float64 // prior dS/dt samples, oldest first
	at    int       // flagged step
	found bool      // terminal detection latch
}

// Step feeds one dS/dt sample
func (o *ZScore) Step(dsdt float64, step int) {
	if o.found {
		return
	}
	if len(o.win) >= o.size {
		mu, sig := meanStd(o.win)
		if sig > 1e-12 && dsdt < mu-o.nsig*sig {
			o.at, o.found = step, true
			return
		}
	}
	o.win = append(o.win, dsdt)
	if len(o.win) > o.size {
		o.win = o.win[1:]
	}
}

// Detected returns the flagged step, if any
func (o *ZScore) Detected() (int, bool) {
	return o.at, o.found
}

// meanStd computes mean and (population) standard deviation
func meanStd(v []float64) (mu, sig float64) {
	n := float64(len(v))
	for _, x := range v {
		mu += x
	}
	mu /= n
	for _, x := range v {
		sig += (x - mu) * (x - mu)
	}
	return mu, math.Sqrt(sig / n)
}
