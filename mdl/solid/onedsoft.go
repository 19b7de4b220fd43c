// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// OnedSoft implements a nonlinear elastic model with softening for 1D elements
//
//   σ = E ε / (1 + |ε| / ε0)
//
type OnedSoft struct {
	E    float64 // initial Young's modulus
	Eps0 float64 // reference strain controlling the softening
}

// add model to factory
func init() {
	allocators["soft"] = func() OneD { return new(OnedSoft) }
}

// Init initialises model
func (o *OnedSoft) Init(prms Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "e0":
			o.Eps0 = p.V
		}
	}
	if o.E <= 0 || o.Eps0 <= 0 {
		return chk.Err("soft: parameters must be positive; got E=%g e0=%g", o.E, o.Eps0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedSoft) GetPrms() Prms {
	return Prms{
		&Prm{N: "E", V: 210000},
		&Prm{N: "e0", V: 1e-3},
	}
}

// Update updates stresses for given strains
func (o OnedSoft) Update(s *OnedState, ε, Δε float64) (err error) {
	s.Eps = ε
	s.Sig = o.E * ε / (1.0 + math.Abs(ε)/o.Eps0)
	return
}

// CalcD computes D = dσ_new/dε_new consistent with StressUpdate
func (o OnedSoft) CalcD(s *OnedState, firstIt bool) (float64, error) {
	d := 1.0 + math.Abs(s.Eps)/o.Eps0
	return o.E / (d * d), nil
}
