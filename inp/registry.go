// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Builder constructs a frame scenario with compiled-in geometry, loads
// and materials. The returned frame is not yet checked.
type Builder func() *FrameData

// builders holds all registered frame scenarios
var builders = make(map[string]Builder)

// SetBuilder registers a frame builder under the given scenario name
func SetBuilder(name string, b Builder) {
	builders[name] = b
}

// GetFrame builds and validates the frame registered under name
func GetFrame(name string) (frame *FrameData, err error) {
	b, ok := builders[name]
	if !ok {
		return nil, chk.Err("scenario %q is not available. registered scenarios: %v", name, Scenarios())
	}
	frame = b()
	err = frame.Check()
	if err != nil {
		return nil, err
	}
	return
}

// Scenarios returns the names of all registered scenarios, sorted
func Scenarios() (names []string) {
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
