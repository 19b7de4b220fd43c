// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
)

// BarsInSeries computes the linear elastic solution of bars connected in series along
// a straight line. The first node is fixed and the last node is either displaced or loaded.
//
//    o----[0]----o----[1]----o  ...  o----[n-1]----o  → uEnd or P
//    x0          x1          x2                    xn
//
//    N     = uEnd / Σ Lᵢ/(E Aᵢ)      (or N = P)
//    εᵢ    = N / (E Aᵢ)
//    σᵢ    = N / Aᵢ
//    uₖ    = Σ_{i<k} εᵢ Lᵢ
//
type BarsInSeries struct {
	L []float64 // [nbars] lengths
	A []float64 // [nbars] cross-sectional areas; a single value is broadcast to all bars
	E float64   // Young's modulus
}

// BarsSolution holds the closed-form results
type BarsSolution struct {
	N   float64   // axial force; the same in all bars
	U   []float64 // [nbars+1] axial displacements of nodes
	Eps []float64 // [nbars] strains
	Sig []float64 // [nbars] stresses
}

// WithDisplacement computes the solution for a prescribed displacement of the last node
func (o BarsInSeries) WithDisplacement(uEnd float64) (sol *BarsSolution, err error) {
	err = o.check()
	if err != nil {
		return
	}
	var compliance float64
	for i, L := range o.L {
		compliance += L / (o.E * o.area(i))
	}
	return o.WithForce(uEnd / compliance)
}

// WithForce computes the solution for a force P applied at the last node
func (o BarsInSeries) WithForce(P float64) (sol *BarsSolution, err error) {
	err = o.check()
	if err != nil {
		return
	}
	n := len(o.L)
	sol = &BarsSolution{N: P, U: make([]float64, n+1), Eps: make([]float64, n), Sig: make([]float64, n)}
	for i, L := range o.L {
		A := o.area(i)
		sol.Sig[i] = P / A
		sol.Eps[i] = sol.Sig[i] / o.E
		sol.U[i+1] = sol.U[i] + sol.Eps[i]*L
	}
	return
}

func (o BarsInSeries) area(i int) float64 {
	if len(o.A) == 1 {
		return o.A[0]
	}
	return o.A[i]
}

func (o BarsInSeries) check() error {
	if len(o.L) < 1 {
		return chk.Err("at least one bar is required")
	}
	if len(o.A) != 1 && len(o.A) != len(o.L) {
		return chk.Err("number of areas must be 1 or %d; got %d", len(o.L), len(o.A))
	}
	if o.E <= 0 {
		return chk.Err("Young's modulus must be positive; got %v", o.E)
	}
	for i := range o.L {
		if o.L[i] <= 0 || o.area(i) <= 0 {
			return chk.Err("bar %d: length and area must be positive; got L=%v A=%v", i, o.L[i], o.area(i))
		}
	}
	return nil
}
