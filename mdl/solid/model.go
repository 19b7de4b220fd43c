// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements one-dimensional constitutive models used to generate
// reference material data
package solid

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Prm holds a named parameter
type Prm struct {
	N string  // name
	V float64 // value
}

// Prms holds many parameters
type Prms []*Prm

// OnedState holds the state of a 1D model
type OnedState struct {
	Eps float64 // strain
	Sig float64 // stress
}

// OneD defines 1D models
type OneD interface {
	Init(prms Prms) error                              // initialises model
	GetPrms() Prms                                     // gets (an example) of parameters
	Update(s *OnedState, ε, Δε float64) error          // updates stress for the new strain ε = εold + Δε
	CalcD(s *OnedState, firstIt bool) (float64, error) // computes D = dσ_new/dε_new consistent with Update
}

// allocators holds all available models
var allocators = map[string]func() OneD{}

// New returns a new model
func New(name string) (model OneD, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available; options are: %s", name, strings.Join(Names(), ", "))
	}
	return allocator(), nil
}

// Names returns the names of available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
