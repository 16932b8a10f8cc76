// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ent

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Params configures a collapse detector
type Params struct {
	Window    int     // zscore: number of prior dS/dt samples kept; detection waits for a full window
	NSig      float64 // zscore: deviations below the rolling mean that flag collapse
	Threshold float64 // threshold: positive constant; collapse when dS/dt < -Threshold
}

// DefParams returns the default detector parameters
func DefParams() Params {
	return Params{Window: 10, NSig: 2.5, Threshold: 0.5}
}

// Detector flags the simulation step at which collapse is judged to
// occur, reading the running sequence of dS/dt values. Detection is
// terminal: once flagged the state never re-arms.
type Detector interface {
	Step(dsdt float64, step int)   // feed one dS/dt sample
	Detected() (step int, ok bool) // flagged step, if any
}

// allocators holds all available detector strategies
var allocators = make(map[string]func(prm Params) (Detector, error))

// SetDetector registers a detector allocator under a method name
func SetDetector(method string, a func(prm Params) (Detector, error)) {
	allocators[method] = a
}

// New allocates the detector registered under method. An unknown
// method name is a configuration error, never a silent fallback.
func New(method string, prm Params) (Detector, error) {
	a, ok := allocators[method]
	if !ok {
		return nil, chk.Err("unknown collapse detection method %q. available methods: %v", method, Methods())
	}
	return a(prm)
}

// Methods returns the registered method names, sorted
func Methods() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
