// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
	"github.com/tianyikillua/data-driven-truss/dd"
)

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. PDF reports")

	// failed run
	sum := dd.NewSummary("staircase", "not converged", 1, 11, 1)
	sum.SetError(&dd.NotConvergedError{NmaxIt: 1, Trace: []float64{311.3, 150.3}})
	var buf bytes.Buffer
	err := Report(sum, &buf)
	require.NoError(tst, err)
	require.True(tst, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	// converged run with many lines
	n := RepMaxRow + 5
	res := &dd.Result{
		U:       make([]float64, 2*(n+1)),
		Eps:     make([]float64, n),
		Sig:     make([]float64, n),
		EpsMech: make([]float64, n),
		SigMech: make([]float64, n),
		Idx:     make([]int, n),
		Dist:    make([]float64, n),
		Trace:   []float64{1, 0},
		Enum:    1,
		Nit:     2,
	}
	sum = dd.NewSummary("long", "many lines", n, 3, 10)
	sum.SetResult(res, nil)
	fnpath, err := SaveReport(sum, tst.TempDir(), "long")
	require.NoError(tst, err)
	b, err := os.ReadFile(fnpath)
	require.NoError(tst, err)
	require.True(tst, bytes.HasPrefix(b, []byte("%PDF")))
}
