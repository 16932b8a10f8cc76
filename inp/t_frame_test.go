// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/mdl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. check valid frame")

	frame := Beam2d()
	err := frame.Check()
	if err != nil {
		tst.Errorf("Check failed: %v\n", err)
		return
	}
	chk.IntAssert(frame.Ndof(), 18)
	chk.IntAssert(frame.Nactive(), 2)
	chk.Ints(tst, "active ids", frame.ActiveIds(), []int{0, 1})

	// compact fibre distance filled in for raw sections
	m := frame.Member(0)
	chk.Scalar(tst, "C", 1e-15, m.C, math.Sqrt(1e-4/0.01))
	chk.IntAssert(m.FailOrder, -1)
}

func Test_frame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame02. configuration errors")

	steel := mdl.SteelS275()

	// dangling node reference
	bad := &FrameData{
		Name:    "dangling",
		Nodes:   []*Node{{Id: 0}, {Id: 1, X: 1}},
		Members: []*Member{{Id: 0, N0: 0, N1: 7, Mat: steel, A: 0.01, I: 1e-4}},
	}
	if bad.Check() == nil {
		tst.Errorf("Check should have failed with dangling node reference\n")
		return
	}

	// non-positive section property
	bad = &FrameData{
		Name:    "flat",
		Nodes:   []*Node{{Id: 0}, {Id: 1, X: 1}},
		Members: []*Member{{Id: 0, N0: 0, N1: 1, Mat: steel, A: -0.01, I: 1e-4}},
	}
	if bad.Check() == nil {
		tst.Errorf("Check should have failed with negative area\n")
		return
	}

	// load at missing node
	bad = &FrameData{
		Name:    "ghostload",
		Nodes:   []*Node{{Id: 0}, {Id: 1, X: 1}},
		Members: []*Member{{Id: 0, N0: 0, N1: 1, Mat: steel, A: 0.01, I: 1e-4}},
		Loads:   []Load{{NodeId: 9, Dof: 1, Value: -1}},
	}
	if bad.Check() == nil {
		tst.Errorf("Check should have failed with load at missing node\n")
	}
}

func Test_frame03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame03. scenario registry")

	chk.Strings(tst, "scenarios", Scenarios(), []string{"beam2d", "pratt", "pyramid3d"})

	frame, err := GetFrame("pratt")
	if err != nil {
		tst.Errorf("GetFrame failed: %v\n", err)
		return
	}
	chk.IntAssert(len(frame.Nodes), 14)
	chk.IntAssert(len(frame.Members), 25)
	chk.IntAssert(len(frame.Loads), 7)

	// bottom chord members carry the W360x122 wide-flange properties
	var w360 mdl.CrossSection
	err = w360.Init("I-beam", 0.257, 0.363, 0.0217, 0.0130, 0)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	m := frame.Member(0)
	chk.Scalar(tst, "bottom A", 1e-15, m.A, w360.A)
	chk.Scalar(tst, "bottom I", 1e-15, m.I, w360.I22)
	chk.Scalar(tst, "bottom C", 1e-15, m.C, w360.Cmax)
	chk.Scalar(tst, "bottom sigy", 1e-15, m.Mat.SigY, 355e6)

	_, err = GetFrame("suspension")
	if err == nil {
		tst.Errorf("GetFrame should have failed with unknown scenario\n")
		return
	}

	frame, err = GetFrame("pyramid3d")
	if err != nil {
		tst.Errorf("GetFrame failed: %v\n", err)
		return
	}
	chk.IntAssert(frame.Ndof(), 30)
}
