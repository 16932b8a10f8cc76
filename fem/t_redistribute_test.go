// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_redist01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("redist01. energy flows to neighbours, total conserved")

	frame := chainFrame(tst)
	sol := &Solution{
		States: []State{
			{MemberId: 0, Energy: 30.0},
			{MemberId: 1, Energy: 10.0},
			{MemberId: 2, Energy: 60.0},
		},
		Total: 100.0,
	}

	// fail member 0: its only neighbour is member 1 (shared node 1)
	frame.Member(0).Active = false
	sol.States[0].Failed = true
	lost, err := Redistribute(frame, sol, 0, 0)
	if err != nil {
		tst.Errorf("Redistribute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "dissipated", 1e-15, lost, 0)
	chk.Scalar(tst, "U0", 1e-15, sol.States[0].Energy, 0)
	chk.Scalar(tst, "U1", 1e-13, sol.States[1].Energy, 40.0)
	chk.Scalar(tst, "U2", 1e-13, sol.States[2].Energy, 60.0)
	chk.Scalar(tst, "total conserved", 1e-13, sol.Total, 100.0)
}

func Test_redist02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("redist02. proportional split between two neighbours")

	frame := chainFrame(tst)
	sol := &Solution{
		States: []State{
			{MemberId: 0, Energy: 20.0},
			{MemberId: 1, Energy: 40.0},
			{MemberId: 2, Energy: 60.0},
		},
		Total: 120.0,
	}

	// fail the middle member: members 0 and 2 receive 40 split 20/60
	frame.Member(1).Active = false
	sol.States[1].Failed = true
	_, err := Redistribute(frame, sol, 1, 0)
	if err != nil {
		tst.Errorf("Redistribute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "U0", 1e-13, sol.States[0].Energy, 20.0+40.0*20.0/80.0)
	chk.Scalar(tst, "U1", 1e-15, sol.States[1].Energy, 0)
	chk.Scalar(tst, "U2", 1e-13, sol.States[2].Energy, 60.0+40.0*60.0/80.0)
	chk.Scalar(tst, "total conserved", 1e-13, sol.Total, 120.0)
}

func Test_redist03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("redist03. dissipation and zero-energy neighbours")

	// dissipation removes a fraction before injection
	frame := chainFrame(tst)
	sol := &Solution{
		States: []State{
			{MemberId: 0, Energy: 100.0},
			{MemberId: 1, Energy: 0.0},
			{MemberId: 2, Energy: 0.0},
		},
		Total: 100.0,
	}
	frame.Member(0).Active = false
	sol.States[0].Failed = true
	lost, err := Redistribute(frame, sol, 0, 0.25)
	if err != nil {
		tst.Errorf("Redistribute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "dissipated", 1e-13, lost, 25.0)
	// zero-energy neighbours split equally; member 1 is the only neighbour
	chk.Scalar(tst, "U1", 1e-13, sol.States[1].Energy, 75.0)
	chk.Scalar(tst, "total", 1e-13, sol.Total, 75.0)

	// invalid dissipation fraction
	_, err = Redistribute(frame, sol, 1, 1.5)
	if err == nil {
		tst.Errorf("Redistribute should have rejected dissipation > 1\n")
	}
}

func Test_redist04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("redist04. isolated member spills into all survivors")

	frame := chainFrame(tst)
	sol := &Solution{
		States: []State{
			{MemberId: 0, Energy: 10.0},
			{MemberId: 1, Energy: 50.0},
			{MemberId: 2, Energy: 40.0},
		},
		Total: 100.0,
	}

	// fail members 1 then 0: member 0 ends with no active neighbour,
	// so its energy falls back to the full active set (member 2)
	frame.Member(1).Active = false
	sol.States[1].Failed = true
	_, err := Redistribute(frame, sol, 1, 0)
	if err != nil {
		tst.Errorf("Redistribute failed: %v\n", err)
		return
	}
	frame.Member(0).Active = false
	sol.States[0].Failed = true
	_, err = Redistribute(frame, sol, 0, 0)
	if err != nil {
		tst.Errorf("Redistribute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "U0", 1e-15, sol.States[0].Energy, 0)
	chk.Scalar(tst, "total conserved", 1e-13, sol.Total, 100.0)
	chk.Scalar(tst, "U2 has everything", 1e-13, sol.States[2].Energy, 100.0)

	// last survivor fails: nothing can receive, energy is dissipated
	frame.Member(2).Active = false
	sol.States[2].Failed = true
	lost, err := Redistribute(frame, sol, 2, 0)
	if err != nil {
		tst.Errorf("Redistribute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "dissipated", 1e-13, lost, 100.0)
	chk.Scalar(tst, "total", 1e-15, sol.Total, 0)
}
