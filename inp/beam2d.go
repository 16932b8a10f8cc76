// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/fcarvajalbrown/Entropy-Collapse-Simulator/mdl"

// register scenario
func init() {
	SetBuilder("beam2d", Beam2d)
}

// Beam2d builds a simply-supported two-member beam under a midspan load
//
//   node 0 -------- node 1 -------- node 2
//   (0,0)           (5,0)           (10,0)
//   pinned            |             pinned
//                     V  F = -50 kN (uy)
//
// Both members share section and material, so the first loaded step
// stores equal strain energy in both halves.
func Beam2d() *FrameData {
	steel := mdl.SteelS275()
	return &FrameData{
		Name: "2D simply-supported beam",
		Nodes: []*Node{
			{Id: 0, X: 0.0, Y: 0.0, Z: 0.0, FixedDofs: []int{0, 1}},
			{Id: 1, X: 5.0, Y: 0.0, Z: 0.0},
			{Id: 2, X: 10.0, Y: 0.0, Z: 0.0, FixedDofs: []int{0, 1}},
		},
		Members: []*Member{
			{Id: 0, N0: 0, N1: 1, Mat: steel, A: 0.01, I: 1e-4},
			{Id: 1, N0: 1, N1: 2, Mat: steel, A: 0.01, I: 1e-4},
		},
		Loads: []Load{
			{NodeId: 1, Dof: 1, Value: -50e3},
		},
	}
}
