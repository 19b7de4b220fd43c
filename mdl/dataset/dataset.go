// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dataset implements the material manifold: measured (strain, stress) samples and a
// nearest-neighbour index over a rescaled representation of them
package dataset

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ZeroStrainTol is the absolute tolerance below which a measured strain is taken as zero when
// computing secant moduli
const ZeroStrainTol = 1e-8

// InvalidDataError reports a malformed material data row
type InvalidDataError struct {
	Row    int    // row index; -1 if the whole set is invalid
	Reason string // what is wrong
}

func (e *InvalidDataError) Error() string {
	if e.Row < 0 {
		return io.Sf("invalid material data: %s", e.Reason)
	}
	return io.Sf("invalid material data: row %d: %s", e.Row, e.Reason)
}

// DegenerateDataError reports that the numerical stiffness cannot be derived from the data
type DegenerateDataError struct {
	Reason string
}

func (e *DegenerateDataError) Error() string {
	return "degenerate material data: " + e.Reason
}

// Set holds an immutable ordered collection of (strain, stress) samples together with the
// cached spatial index built over them
type Set struct {
	Eps []float64 // [ndata] measured strains
	Sig []float64 // [ndata] measured stresses

	mu      sync.Mutex // guards Eps, Sig, version and cache
	version int        // incremented by each Load
	cache   *cacheEntry
}

// New returns a new Set holding the given samples
func New(rows [][]float64) (o *Set, err error) {
	o = new(Set)
	err = o.Load(rows)
	if err != nil {
		return nil, err
	}
	return
}

// Load replaces the samples. Each row must have exactly two finite values: strain and stress
func (o *Set) Load(rows [][]float64) (err error) {
	if len(rows) < 1 {
		return &InvalidDataError{Row: -1, Reason: "at least one (strain, stress) pair is required"}
	}
	eps := make([]float64, len(rows))
	sig := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return &InvalidDataError{Row: i, Reason: io.Sf("expected 2 fields (strain, stress), got %d", len(row))}
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &InvalidDataError{Row: i, Reason: io.Sf("non-finite value %v", v)}
			}
		}
		eps[i], sig[i] = row[0], row[1]
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Eps, o.Sig = eps, sig
	o.version++
	o.cache = nil
	return
}

// samples returns the currently loaded strains and stresses. Load replaces both slices, so
// the returned pair is a consistent snapshot
func (o *Set) samples() (eps, sig []float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.Eps, o.Sig
}

// Ndata returns the number of samples
func (o *Set) Ndata() int {
	eps, _ := o.samples()
	return len(eps)
}

// Version returns the identity of the currently loaded samples
func (o *Set) Version() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.version
}

// Pair returns the i-th sample
func (o *Set) Pair(i int) (eps, sig float64) {
	E, S := o.samples()
	return E[i], S[i]
}

// SecantModulus returns the mean of sig/eps over all samples with numerically non-zero strain
func (o *Set) SecantModulus() (E float64, err error) {
	eps, sig := o.samples()
	n := 0
	for i, ε := range eps {
		if math.Abs(ε) <= ZeroStrainTol {
			continue
		}
		E += sig[i] / ε
		n++
	}
	if n == 0 {
		return 0, &DegenerateDataError{Reason: io.Sf("all %d samples have zero strain; the numerical stiffness must be given", len(eps))}
	}
	E /= float64(n)
	return
}

// Bounds returns the ranges of measured strains and stresses
func (o *Set) Bounds() (epsMin, epsMax, sigMin, sigMax float64) {
	eps, sig := o.samples()
	if len(eps) == 0 {
		chk.Panic("cannot compute bounds of an empty dataset")
	}
	epsMin, epsMax = eps[0], eps[0]
	sigMin, sigMax = sig[0], sig[0]
	for i := 1; i < len(eps); i++ {
		epsMin = math.Min(epsMin, eps[i])
		epsMax = math.Max(epsMax, eps[i])
		sigMin = math.Min(sigMin, sig[i])
		sigMax = math.Max(sigMax, sig[i])
	}
	return
}
