// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Section holds the cross-section of all lines with the same cell tag
//
//   typ : rectangle       circle / tube          I-beam
//                                                          tw
//                             ,----.                  -->| |<--
//         +-------+         ,'  __  `.            ___    | |     ___
//         |       |        /  ,'  `.  \         tf |   ########   |
//         |       | h     |  |  r   |  |       ---   ########   |
//         |       |        \  `.__,'  /                 ##      | h
//         |       |         `.      ,' ⟵ t              ##      |
//         +-------+           `----'               ---  ########   |
//             b                                  tf_|_  ########  ---
//                                                         b
type Section struct {
	Tag  int     `json:"tag" yaml:"tag"`                                                      // cell tag
	Type string  `json:"type" yaml:"type" validate:"oneof=rectangle circle tube I-beam area"` // type of section
	A    float64 `json:"a" yaml:"a" validate:"gte=0"`                                         // area if type is "area"
	Wid  float64 `json:"wid" yaml:"wid" validate:"gte=0"`                                     // width (b)
	Hei  float64 `json:"hei" yaml:"hei" validate:"gte=0"`                                     // height (h)
	Tf   float64 `json:"tf" yaml:"tf" validate:"gte=0"`                                       // flange thickness if I-beam
	Tw   float64 `json:"tw" yaml:"tw" validate:"gte=0"`                                       // web thickness if I-beam
	R    float64 `json:"r" yaml:"r" validate:"gte=0"`                                         // external radius if circular
	T    float64 `json:"t" yaml:"t" validate:"gte=0"`                                         // wall thickness if tube
}

// Area computes the cross-sectional area
func (o *Section) Area() (A float64, err error) {
	switch o.Type {
	case "area":
		A = o.A

	case "rectangle":
		A = o.Wid * o.Hei

	case "I-beam":
		if 2.0*o.Tf >= o.Hei || o.Tw >= o.Wid {
			return 0, chk.Err("I-beam section %d: flanges and web are too thick; tf=%g tw=%g", o.Tag, o.Tf, o.Tw)
		}
		l := o.Hei - 2.0*o.Tf
		A = o.Wid*o.Hei - l*(o.Wid-o.Tw)

	case "circle":
		A = math.Pi * o.R * o.R

	case "tube":
		if o.T >= o.R {
			return 0, chk.Err("tube section %d: thickness must be smaller than radius; t=%g r=%g", o.Tag, o.T, o.R)
		}
		ri := o.R - o.T
		A = math.Pi * (o.R*o.R - ri*ri)

	default:
		return 0, chk.Err("cross-section type %q is unavailable", o.Type)
	}
	if A <= 0 {
		return 0, chk.Err("section %d (%s) has non-positive area %g", o.Tag, o.Type, A)
	}
	return
}
