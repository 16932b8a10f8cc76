// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements material and cross-section models for frame members
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material implements a linear elastic material for frame members.
// Members of the same grade share one Material by reference; the struct
// is immutable after Init.
type Material struct {
	Name string  // human readable grade name; e.g. "S275 steel"
	E    float64 // Young's modulus
	SigY float64 // yield/ultimate stress limit
	Rho  float64 // density; unused by statics but kept for dynamic extensions
}

// Init initialises the material from a parameters set
//  Parameters:
//   E    -- Young's modulus
//   sigy -- stress limit
//   rho  -- density [optional; defaults to structural steel]
func (o *Material) Init(name string, prms dbf.Params) (err error) {
	o.Name = name
	o.Rho = 7850.0
	prms.Connect(&o.E, "E", "material")
	prms.Connect(&o.SigY, "sigy", "material")
	prms.Connect(&o.Rho, "rho", "material")
	if o.E < ϵp {
		return chk.Err("material %q: E must be positive. E=%g is invalid", name, o.E)
	}
	if o.SigY < ϵp {
		return chk.Err("material %q: sigy must be positive. sigy=%g is invalid", name, o.SigY)
	}
	if o.Rho < ϵp {
		return chk.Err("material %q: rho must be positive. rho=%g is invalid", name, o.Rho)
	}
	return
}

// smallest admissible value for physical properties
const ϵp = 1e-9

// SteelS275 returns the S275 structural steel grade
func SteelS275() *Material {
	return mustSteel("S275 steel", 275e6)
}

// SteelS355 returns the S355 structural steel grade
func SteelS355() *Material {
	return mustSteel("S355 steel", 355e6)
}

func mustSteel(name string, sigy float64) *Material {
	var o Material
	err := o.Init(name, []*dbf.P{
		&dbf.P{N: "E", V: 200e9},
		&dbf.P{N: "sigy", V: sigy},
	})
	if err != nil {
		chk.Panic("cannot initialise %s:\n%v", name, err)
	}
	return &o
}
