// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truss

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func Test_rod01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rod01. inclined rod")

	o, err := NewRod(0, 1, 2, []float64{1, 1}, []float64{4, 5})
	if err != nil {
		tst.Errorf("NewRod failed:\n%v", err)
		return
	}
	o.SetPrms(100, 2)
	chk.Float64(tst, "L", 1e-15, o.L, 5)
	chk.Ints(tst, "umap", o.Umap, []int{2, 3, 4, 5})
	chk.Array(tst, "centroid", 1e-15, o.Centroid(), []float64{2.5, 3})

	// stiffness is symmetric and has zero row sums (rigid translations)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			chk.Float64(tst, io.Sf("K%d%d-K%d%d", i, j, j, i), 1e-15, o.K[i][j], o.K[j][i])
		}
		chk.Float64(tst, io.Sf("ΣK%dx", i), 1e-13, o.K[i][0]+o.K[i][2], 0)
	}
	chk.Float64(tst, "K00", 1e-13, o.K[0][0], 40*0.36)

	// strain: stretching along the axis and rigid rotation
	u := make([]float64, 6)
	u[4], u[5] = 0.3, 0.4
	chk.Float64(tst, "eps", 1e-15, o.CalcEps(u), 0.1)
	chk.Float64(tst, "sig", 1e-13, o.CalcSig(u, 5), 15)
	u[4], u[5] = -0.4*1e-6, 0.3*1e-6
	chk.Float64(tst, "eps rotation", 1e-15, o.CalcEps(u), 0)

	// global assembly and initial stress
	Kb := mat.NewDense(6, 6, nil)
	o.AddToKb(Kb)
	chk.Float64(tst, "Kb22", 1e-13, Kb.At(2, 2), o.K[0][0])
	chk.Float64(tst, "Kb00", 1e-15, Kb.At(0, 0), 0)
	fb := make([]float64, 6)
	o.AddToRhs(fb, 10)
	chk.Array(tst, "fb", 1e-13, fb, []float64{0, 0, 12, 16, -12, -16})

	// errors
	_, err = NewRod(1, 0, 1, []float64{0, 0}, []float64{0, 0})
	if err == nil {
		tst.Errorf("coincident vertices should fail")
	}
	_, err = NewRod(1, 0, 1, []float64{0, 0, 0}, []float64{1, 0, 0})
	if err == nil {
		tst.Errorf("3D rods should fail")
	}
}
