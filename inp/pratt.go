// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/mdl"
)

// register scenario
func init() {
	SetBuilder("pratt", PrattBridge)
}

// wShape derives the section properties of a wide-flange profile
func wShape(wid, hei, tf, tw float64) *mdl.CrossSection {
	var sec mdl.CrossSection
	if err := sec.Init("I-beam", wid, hei, tf, tw, 0); err != nil {
		chk.Panic("cannot build W-shape section:\n%v", err)
	}
	return &sec
}

// geometry of the 6-panel Pratt truss
const (
	prattPanels = 6   // number of panels
	prattWidth  = 5.0 // panel width
	prattHeight = 4.0 // truss height
)

// PrattBridge builds a 6-panel Pratt truss bridge under distributed
// traffic loading
//
//   top:    T0---T1---T2---T3---T4---T5---T6      (nodes 7..13, y=4)
//           |  / |  / |  / |  / |  / |  / |
//   bottom: B0---B1---B2---B3---B4---B5---B6      (nodes 0..6, y=0)
//           pinned                        roller
//
// Span 30 m. Sections follow typical W-shape proportions per member
// class: heavier bottom chord (tension), lighter verticals. Diagonals
// slope toward the centre so they carry tension under gravity load.
// Out-of-plane and out-of-plane-rotation DOFs are fixed at every node
// (planar analysis); the in-plane rotation rz stays free for bending.
func PrattBridge() *FrameData {
	s275 := mdl.SteelS275()
	s355 := mdl.SteelS355()

	// W-shape sections per member class
	wBottom := wShape(0.257, 0.363, 0.0217, 0.0130) // W360x122
	wTop := wShape(0.305, 0.308, 0.0154, 0.0099)    // W310x97
	wVert := wShape(0.204, 0.206, 0.0126, 0.0079)   // W200x52
	wDiag := wShape(0.256, 0.260, 0.0173, 0.0107)   // W250x89

	mbr := func(id, n0, n1 int, mat *mdl.Material, sec *mdl.CrossSection) *Member {
		return &Member{Id: id, N0: n0, N1: n1, Mat: mat, A: sec.A, I: sec.I22, C: sec.Cmax}
	}
	bottom := func(id, n0, n1 int) *Member { return mbr(id, n0, n1, s355, wBottom) }
	top := func(id, n0, n1 int) *Member { return mbr(id, n0, n1, s355, wTop) }
	vertical := func(id, n0, n1 int) *Member { return mbr(id, n0, n1, s275, wVert) }
	diagonal := func(id, n0, n1 int) *Member { return mbr(id, n0, n1, s355, wDiag) }

	const nchord = prattPanels + 1 // nodes per chord

	// nodes: bottom chord 0..6, top chord 7..13
	planar := []int{2, 3, 4} // uz, rx, ry fixed everywhere
	var nodes []*Node
	for i := 0; i < nchord; i++ {
		fixed := planar
		switch i {
		case 0:
			fixed = append([]int{0, 1}, planar...) // pinned left support
		case prattPanels:
			fixed = append([]int{1}, planar...) // roller right support
		}
		nodes = append(nodes, &Node{Id: i, X: float64(i) * prattWidth, FixedDofs: fixed})
	}
	for i := 0; i < nchord; i++ {
		nodes = append(nodes, &Node{Id: nchord + i, X: float64(i) * prattWidth, Y: prattHeight, FixedDofs: planar})
	}

	// members: bottom chords 0..5, top chords 6..11, verticals 12..18, diagonals 19..24
	var members []*Member
	mid := 0
	for i := 0; i < prattPanels; i++ {
		members = append(members, bottom(mid, i, i+1))
		mid++
	}
	for i := 0; i < prattPanels; i++ {
		members = append(members, top(mid, nchord+i, nchord+i+1))
		mid++
	}
	for i := 0; i < nchord; i++ {
		members = append(members, vertical(mid, i, nchord+i))
		mid++
	}
	for i := 0; i < prattPanels; i++ {
		if i < prattPanels/2 {
			members = append(members, diagonal(mid, i+1, nchord+i))
		} else {
			members = append(members, diagonal(mid, i, nchord+i+1))
		}
		mid++
	}

	// distributed traffic load: -100 kN per interior bottom node, half at ends
	var loads []Load
	for i := 0; i <= prattPanels; i++ {
		value := -100e3
		if i == 0 || i == prattPanels {
			value = -50e3
		}
		loads = append(loads, Load{NodeId: i, Dof: 1, Value: value})
	}

	return &FrameData{
		Name:    "Pratt truss bridge (6 panels, 30m span)",
		Nodes:   nodes,
		Members: members,
		Loads:   loads,
	}
}
