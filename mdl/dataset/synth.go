// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math/rand/v2"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/tianyikillua/data-driven-truss/mdl/solid"
)

// Synth holds the definition of a synthetic material dataset
type Synth struct {
	Law   string  // "linear" or "soft"
	E     float64 // initial Young's modulus
	E0    float64 // soft: reference strain controlling the softening
	EpsM  float64 // maximum absolute strain; samples span [-EpsM, EpsM]
	N     int     // number of samples
	Noise float64 // standard deviation of Gaussian noise added to stresses, relative to E*EpsM
	Seed  uint64  // seed for the noise generator
}

// model allocates and initialises the material model
func (o Synth) model() (model solid.OneD, err error) {
	model, err = solid.New(o.Law)
	if err != nil {
		return
	}
	err = model.Init(solid.Prms{&solid.Prm{N: "E", V: o.E}, &solid.Prm{N: "e0", V: o.E0}})
	return
}

// Stress returns the noiseless stress for a given strain
func (o Synth) Stress(ε float64) (σ float64, err error) {
	model, err := o.model()
	if err != nil {
		return
	}
	var s solid.OnedState
	err = model.Update(&s, ε, ε)
	return s.Sig, err
}

// Generate returns the [N][2] table of (strain, stress) samples
func (o Synth) Generate() (rows [][]float64, err error) {
	if o.N < 1 || o.EpsM <= 0 {
		return nil, chk.Err("synthetic dataset requires N ≥ 1 and EpsM > 0; got N=%d EpsM=%g", o.N, o.EpsM)
	}
	model, err := o.model()
	if err != nil {
		return
	}
	var strains []float64
	if o.N == 1 {
		strains = []float64{0}
	} else {
		strains = utl.LinSpace(-o.EpsM, o.EpsM, o.N)
	}
	rng := rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15))
	σref := o.E * o.EpsM
	rows = utl.Alloc(o.N, 2)
	for i, ε := range strains {
		var s solid.OnedState
		err = model.Update(&s, ε, ε)
		if err != nil {
			return nil, err
		}
		rows[i][0] = ε
		rows[i][1] = s.Sig
		if o.Noise > 0 {
			rows[i][1] += o.Noise * σref * rng.NormFloat64()
		}
	}
	return
}
