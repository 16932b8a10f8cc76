// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_material01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material01. init from parameters")

	var mat Material
	err := mat.Init("S275 steel", []*dbf.P{
		&dbf.P{N: "E", V: 200e9},
		&dbf.P{N: "sigy", V: 275e6},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "E", 1e-17, mat.E, 200e9)
	chk.Scalar(tst, "sigy", 1e-17, mat.SigY, 275e6)
	chk.Scalar(tst, "rho (default)", 1e-17, mat.Rho, 7850.0)
}

func Test_material02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material02. invalid properties")

	var mat Material
	err := mat.Init("bad", []*dbf.P{
		&dbf.P{N: "E", V: -1.0},
		&dbf.P{N: "sigy", V: 275e6},
	})
	if err == nil {
		tst.Errorf("Init should have failed with negative E\n")
		return
	}

	var incomplete Material
	err = incomplete.Init("bad", []*dbf.P{
		&dbf.P{N: "E", V: 200e9},
	})
	if err == nil {
		tst.Errorf("Init should have failed with missing sigy\n")
	}
}

func Test_section01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("section01. rectangle, circle and I-beam")

	var rec CrossSection
	err := rec.Init("rectangle", 0.2, 0.3, 0, 0, 0)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "A", 1e-15, rec.A, 0.06)
	chk.Scalar(tst, "I22", 1e-15, rec.I22, 0.2*0.027/12.0)
	chk.Scalar(tst, "Cmax", 1e-15, rec.Cmax, 0.15)

	var cir CrossSection
	err = cir.Init("circle", 0, 0, 0, 0, 0.1)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "A", 1e-15, cir.A, math.Pi*0.01)
	chk.Scalar(tst, "I22", 1e-15, cir.I22, math.Pi*1e-4/4.0)
	chk.Scalar(tst, "Cmax", 1e-15, cir.Cmax, 0.1)

	var ibm CrossSection
	err = ibm.Init("I-beam", 0.2, 0.4, 0.02, 0.01, 0)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "A", 1e-15, ibm.A, 0.2*0.4-0.36*0.19)
	chk.Scalar(tst, "Cmax", 1e-15, ibm.Cmax, 0.2)

	var bad CrossSection
	err = bad.Init("triangle", 1, 1, 0, 0, 0)
	if err == nil {
		tst.Errorf("Init should have failed with unknown type\n")
	}
}

func Test_section02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("section02. compact fibre approximation")

	// c = sqrt(I/A)
	chk.Scalar(tst, "c", 1e-15, CompactFibre(0.01, 1e-4), 0.1)
}
