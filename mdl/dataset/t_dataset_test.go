// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_dataset01(tst *testing.T) {

	chk.PrintTitle("dataset01. load and secant modulus")

	o, err := New([][]float64{{0, 0}, {0.001, 210}, {-0.001, -210}})
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.Int(tst, "ndata", o.Ndata(), 3)
	chk.Int(tst, "version", o.Version(), 1)
	chk.Array(tst, "eps", 1e-17, o.Eps, []float64{0, 0.001, -0.001})
	chk.Array(tst, "sig", 1e-17, o.Sig, []float64{0, 210, -210})

	E, err := o.SecantModulus()
	if err != nil {
		tst.Errorf("SecantModulus failed:\n%v", err)
		return
	}
	io.Pforan("E = %v\n", E)
	chk.Float64(tst, "E", 1e-8, E, 210000)

	epsMin, epsMax, sigMin, sigMax := o.Bounds()
	chk.Array(tst, "bounds", 1e-17, []float64{epsMin, epsMax, sigMin, sigMax}, []float64{-0.001, 0.001, -210, 210})
}

func Test_dataset02(tst *testing.T) {

	chk.PrintTitle("dataset02. invalid rows")

	var o Set
	var ierr *InvalidDataError

	err := o.Load(nil)
	require.ErrorAs(tst, err, &ierr)
	chk.Int(tst, "row (empty)", ierr.Row, -1)

	err = o.Load([][]float64{{0, 0}, {1, 2, 3}})
	require.ErrorAs(tst, err, &ierr)
	chk.Int(tst, "row (arity)", ierr.Row, 1)

	err = o.Load([][]float64{{0.1}})
	require.ErrorAs(tst, err, &ierr)
	chk.Int(tst, "row (short)", ierr.Row, 0)

	err = o.Load([][]float64{{0, 0}, {1, 1}, {math.NaN(), 1}})
	require.ErrorAs(tst, err, &ierr)
	chk.Int(tst, "row (nan)", ierr.Row, 2)

	// failed loads keep nothing
	chk.Int(tst, "ndata", o.Ndata(), 0)
	chk.Int(tst, "version", o.Version(), 0)
}

func Test_dataset03(tst *testing.T) {

	chk.PrintTitle("dataset03. degenerate data")

	o, err := New([][]float64{{0, 0}, {0, 10}, {1e-9, -10}})
	require.NoError(tst, err)

	_, err = o.SecantModulus()
	var derr *DegenerateDataError
	require.ErrorAs(tst, err, &derr)
	io.Pforan("err = %v\n", err)
}

func Test_synth01(tst *testing.T) {

	chk.PrintTitle("synth01. synthetic datasets")

	lin := Synth{Law: "linear", E: 200, EpsM: 0.01, N: 5}
	rows, err := lin.Generate()
	require.NoError(tst, err)
	chk.Int(tst, "nrows", len(rows), 5)
	for i, row := range rows {
		chk.Float64(tst, io.Sf("sig%d", i), 1e-13, row[1], 200*row[0])
	}
	chk.Float64(tst, "eps0", 1e-17, rows[0][0], -0.01)
	chk.Float64(tst, "eps4", 1e-17, rows[4][0], 0.01)

	soft := Synth{Law: "soft", E: 100, E0: 0.5, EpsM: 1, N: 3}
	rows, err = soft.Generate()
	require.NoError(tst, err)
	chk.Float64(tst, "soft: sig(1)", 1e-13, rows[2][1], 100.0/3.0)
	chk.Float64(tst, "soft: sig(-1)", 1e-13, rows[0][1], -100.0/3.0)
	σ, err := soft.Stress(0.5)
	require.NoError(tst, err)
	chk.Float64(tst, "soft: sig(0.5)", 1e-13, σ, 25)

	// noise is reproducible
	noisy := Synth{Law: "linear", E: 1, EpsM: 1, N: 7, Noise: 0.1, Seed: 123}
	a, err := noisy.Generate()
	require.NoError(tst, err)
	b, err := noisy.Generate()
	require.NoError(tst, err)
	chk.Deep2(tst, "noisy", 1e-17, a, b)

	_, err = Synth{Law: "cubic", E: 1, EpsM: 1, N: 2}.Generate()
	require.Error(tst, err)
	_, err = Synth{Law: "soft", E: 1, EpsM: 1, N: 2}.Generate()
	require.Error(tst, err)
}
