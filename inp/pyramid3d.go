// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/fcarvajalbrown/Entropy-Collapse-Simulator/mdl"

// register scenario
func init() {
	SetBuilder("pyramid3d", Pyramid3d)
}

// Pyramid3d builds a redundant 3D space frame: a square base with four
// pinned corners and a loaded apex node above its centre
//
//          node 4 (apex, loaded)
//         /| \
//        / |  \
//      (0)(1)(2)(3)   base square, z=0, corners pinned
//
// Four diagonal legs share the apex load. When one fails the remaining
// three pick up its energy, producing a multi-step redistribution curve.
func Pyramid3d() *FrameData {
	steel := mdl.SteelS275()
	const (
		area    = 0.02
		inertia = 2e-4
	)
	leg := func(id, base int) *Member {
		return &Member{Id: id, N0: base, N1: 4, Mat: steel, A: area, I: inertia}
	}
	chord := func(id, n0, n1 int) *Member {
		return &Member{Id: id, N0: n0, N1: n1, Mat: steel, A: area, I: inertia}
	}
	return &FrameData{
		Name: "3D redundant space frame",
		Nodes: []*Node{
			{Id: 0, X: 0.0, Y: 0.0, Z: 0.0, FixedDofs: []int{0, 1, 2}},
			{Id: 1, X: 5.0, Y: 0.0, Z: 0.0, FixedDofs: []int{0, 1, 2}},
			{Id: 2, X: 5.0, Y: 5.0, Z: 0.0, FixedDofs: []int{0, 1, 2}},
			{Id: 3, X: 0.0, Y: 5.0, Z: 0.0, FixedDofs: []int{0, 1, 2}},
			{Id: 4, X: 2.5, Y: 2.5, Z: 4.0},
		},
		Members: []*Member{
			// diagonal legs: primary load path
			leg(0, 0), leg(1, 1), leg(2, 2), leg(3, 3),
			// base chords: lateral stability and secondary redistribution path
			chord(4, 0, 1), chord(5, 1, 2), chord(6, 2, 3), chord(7, 3, 0),
		},
		Loads: []Load{
			{NodeId: 4, Dof: 2, Value: -200e3},
		},
	}
}
