// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/chk"

// OnedLinElast implements a linear elastic model for 1D elements
type OnedLinElast struct {
	E float64 // Young's modulus
}

// add model to factory
func init() {
	allocators["linear"] = func() OneD { return new(OnedLinElast) }
}

// Init initialises model
func (o *OnedLinElast) Init(prms Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		}
	}
	if o.E <= 0 {
		return chk.Err("linear: Young's modulus must be positive; got E=%g", o.E)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms() Prms {
	return Prms{
		&Prm{N: "E", V: 210000},
	}
}

// Update updates stresses for given strains
func (o OnedLinElast) Update(s *OnedState, ε, Δε float64) (err error) {
	s.Eps = ε
	s.Sig += o.E * Δε
	return
}

// CalcD computes D = dσ_new/dε_new consistent with StressUpdate
func (o OnedLinElast) CalcD(s *OnedState, firstIt bool) (float64, error) {
	return o.E, nil
}
