// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// LinSol factorises the augmented system once and solves for many right-hand sides
type LinSol struct {
	N     int    // dimension of system
	lu    mat.LU // factorisation
	ready bool   // factorisation is available
}

// Fact performs the factorisation of Kb
func (o *LinSol) Fact(Kb *mat.Dense) (err error) {
	o.ready = false
	o.N, _ = Kb.Dims()
	o.lu.Factorize(Kb)
	cond := o.lu.Cond()
	if math.IsInf(cond, 0) || math.IsNaN(cond) || cond > mat.ConditionTolerance {
		return chk.Err("global matrix is singular (condition number = %g); the structure may be a mechanism or lack supports", cond)
	}
	o.ready = true
	return
}

// Solve solves Kb・x = b
func (o *LinSol) Solve(x, b []float64) (err error) {
	if !o.ready {
		return chk.Err("linear solver has not been factorised")
	}
	if len(x) != o.N || len(b) != o.N {
		return chk.Err("vectors must have length %d; got len(x)=%d and len(b)=%d", o.N, len(x), len(b))
	}
	err = o.lu.SolveVecTo(mat.NewVecDense(o.N, x), false, mat.NewVecDense(o.N, b))
	if err != nil {
		return chk.Err("solve failed:\n%v", err)
	}
	return
}
