// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dd implements the data-driven solver for truss structures. The solver alternates
// between projections onto the set of states satisfying compatibility and equilibrium
// (two linear elastic problems) and projections onto the material data set (nearest samples)
// until the selected samples no longer change.
package dd

import (
	"math"
	"math/rand/v2"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tianyikillua/data-driven-truss/fem"
	"github.com/tianyikillua/data-driven-truss/mdl/dataset"
)

// Structure defines the linear elastic solver of the structure
type Structure interface {

	// Nlines returns the number of lines (elements)
	Nlines() int

	// Solve solves the linear elastic problem with prescribed displacements U, forces F and
	// initial stresses sig0. If assemble is false, the factorised system of a previous call is re-used
	Solve(A []float64, E float64, U, F fem.NodeVals, sig0 []float64, assemble bool) (u, eps, sig []float64, err error)

	// Integrate returns the sum of per-line values weighted by the size of lines
	Integrate(vals []float64) float64
}

// Solver implements the data-driven solver
type Solver struct {
	Truss   Structure    // structure
	Data    *dataset.Set // material data
	Seed    uint64       // seed for the random initial local states
	InitIdx []int        // initial sample index of each line; random if empty
	Verbose bool         // show iterations
}

// Result holds the converged solution
type Result struct {
	U       []float64 // [ny] displacements
	Eps     []float64 // [nlines] strains of the selected samples
	Sig     []float64 // [nlines] stresses of the selected samples
	EpsMech []float64 // [nlines] strains of the last mechanical state
	SigMech []float64 // [nlines] stresses of the last mechanical state
	Idx     []int     // [nlines] indices of the selected samples
	Dist    []float64 // [nlines] distances between mechanical states and samples
	Trace   []float64 // [nit] objective at each iteration
	Enum    float64   // numerical stiffness
	Nit     int       // number of iterations
}

// local holds the material state of all lines
type local struct {
	eps []float64
	sig []float64
	idx []int
}

// NewSolver returns a new data-driven solver
func NewSolver(truss Structure, seed uint64) *Solver {
	return &Solver{Truss: truss, Seed: seed}
}

// LoadMaterialData loads (strain, stress) samples. Previous samples are replaced
func (o *Solver) LoadMaterialData(rows [][]float64) (err error) {
	if o.Data == nil {
		o.Data, err = dataset.New(rows)
		return
	}
	return o.Data.Load(rows)
}

// Solve runs the data-driven iterations
//  Input:
//   A           -- cross-sectional areas; one value for all lines or one value per line
//   U           -- prescribed displacements
//   F           -- prescribed forces
//   nIterations -- maximum number of iterations; nIterations+1 iterations are performed at most
//   Enum        -- numerical stiffness; nil means the mean secant modulus of the samples
//  Output:
//   res -- results. If the local states do not stabilise, res is nil and err is a *NotConvergedError
func (o *Solver) Solve(A []float64, U, F fem.NodeVals, nIterations int, Enum *float64) (res *Result, err error) {

	// check
	if o.Truss == nil {
		return nil, chk.Err("structure is not set")
	}
	if o.Data == nil || o.Data.Ndata() < 1 {
		return nil, &InvalidDataError{Row: -1, Reason: "material data has not been loaded"}
	}
	if nIterations < 0 {
		return nil, chk.Err("maximum number of iterations must be non-negative; got %d", nIterations)
	}

	// numerical stiffness
	var E float64
	if Enum == nil {
		E, err = o.Data.SecantModulus()
		if err != nil {
			return
		}
	} else {
		E = *Enum
	}
	if !(E > 0) || math.IsInf(E, 0) {
		return nil, &DegenerateDataError{Reason: io.Sf("numerical stiffness must be positive and finite; got %v", E)}
	}
	sqE := math.Sqrt(E)

	// initial local states
	cur, err := o.initial()
	if err != nil {
		return
	}
	nl := len(cur.idx)

	// prescribed displacements of the second problem
	U0 := U.Zeroed()

	// message
	if o.Verbose {
		io.Pf("> data-driven solver: %d lines, %d samples, E = %g\n", nl, o.Data.Ndata(), E)
		io.Pf("%6s%23s%10s\n", "it", "objective", "changed")
	}

	// iterations
	trace := make([]float64, 0, nIterations+1)
	sig0 := make([]float64, nl)
	sig := make([]float64, nl)
	for it := 0; it <= nIterations; it++ {

		// compatible strains
		for i := 0; i < nl; i++ {
			sig0[i] = -E * cur.eps[i]
		}
		u, eps, _, err := o.Truss.Solve(A, E, U, nil, sig0, it == 0)
		if err != nil {
			return nil, err
		}

		// equilibrated stresses
		_, epsη, _, err := o.Truss.Solve(A, E, U0, F, cur.sig, false)
		if err != nil {
			return nil, err
		}
		for i := 0; i < nl; i++ {
			sig[i] = cur.sig[i] + E*epsη[i]
		}

		// projection onto material data
		matches, err := o.Data.Nearest(eps, sig, sqE)
		if err != nil {
			return nil, err
		}
		next := local{make([]float64, nl), make([]float64, nl), make([]int, nl)}
		dist := make([]float64, nl)
		nchanged := 0
		for i, m := range matches {
			next.eps[i], next.sig[i], next.idx[i] = m.Eps, m.Sig, m.Idx
			dist[i] = m.Dist
			if m.Idx != cur.idx[i] {
				nchanged++
			}
		}
		obj := o.Truss.Integrate(dist)
		trace = append(trace, obj)
		if o.Verbose {
			io.Pf("%6d%23.15e%10d\n", it+1, obj, nchanged)
		}

		// converged
		if nchanged == 0 {
			if o.Verbose {
				io.Pfgreen("> converged after %d iterations\n", it+1)
			}
			res = &Result{
				U:       u,
				Eps:     next.eps,
				Sig:     next.sig,
				EpsMech: eps,
				SigMech: append([]float64{}, sig...),
				Idx:     next.idx,
				Dist:    dist,
				Trace:   trace,
				Enum:    E,
				Nit:     it + 1,
			}
			return res, nil
		}
		cur = next
	}

	if o.Verbose {
		io.Pfred("> not converged after %d iterations\n", nIterations+1)
	}
	return nil, &NotConvergedError{NmaxIt: nIterations, Trace: trace}
}

// initial returns the initial local states
func (o *Solver) initial() (cur local, err error) {
	nl := o.Truss.Nlines()
	nd := o.Data.Ndata()
	cur = local{make([]float64, nl), make([]float64, nl), make([]int, nl)}
	if len(o.InitIdx) > 0 {
		if len(o.InitIdx) != nl {
			return cur, chk.Err("number of initial indices (%d) must be equal to the number of lines (%d)", len(o.InitIdx), nl)
		}
		for i, k := range o.InitIdx {
			if k < 0 || k >= nd {
				return cur, chk.Err("initial index %d of line %d is out of range [0, %d)", k, i, nd)
			}
			cur.idx[i] = k
		}
	} else {
		rnd := rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15))
		for i := range cur.idx {
			cur.idx[i] = rnd.IntN(nd)
		}
	}
	for i, k := range cur.idx {
		cur.eps[i], cur.sig[i] = o.Data.Pair(k)
	}
	return
}
