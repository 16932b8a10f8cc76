// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CrossSection computes cross-sectional area, moment of inertia and
// extreme-fibre distance for the common section shapes
//
//   typ : rectangle
//         circle                             tw
//         I-beam                         -->| |<--
//                                    ___    | |     ___
//   ^ 1       +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +----> 2  |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A    float64 // cross-sectional area
	I22  float64 // major cross-section moment of inertia (bending axis)
	Cmax float64 // distance from neutral axis to extreme fibre
}

// Init initialises the structure and computes the derived properties
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		h3 := h * h * h
		o.A = b * h
		o.I22 = b * h3 / 12.0
		o.Cmax = h / 2.0

	case "I-beam":
		b, h := wid, hei
		h3 := h * h * h
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.I22 = b*h3/12.0 - (b-tw)*l3/12.0
		o.Cmax = h / 2.0

	case "circle":
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I22 = math.Pi * r2 * r2 / 4.0
		o.Cmax = rad

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}

	// check
	if o.A < ϵp || o.I22 < ϵp || o.Cmax < ϵp {
		return chk.Err("cross-section %q has non-positive properties: A=%g, I22=%g, Cmax=%g", typ, o.A, o.I22, o.Cmax)
	}
	return
}

// CompactFibre approximates the extreme-fibre distance for a compact
// section given area and moment of inertia only: c = sqrt(I/A)
func CompactFibre(area, inertia float64) float64 {
	return math.Sqrt(inertia / area)
}
