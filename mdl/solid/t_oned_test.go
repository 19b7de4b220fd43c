// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/require"
)

func Test_oned01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("oned01. 1D models and consistent moduli")

	require.Equal(tst, []string{"linear", "soft"}, Names())
	_, err := New("plastic")
	if err == nil {
		tst.Errorf("unknown model should fail")
	}

	for _, name := range Names() {
		model, err := New(name)
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		err = model.Init(model.GetPrms())
		if err != nil {
			tst.Errorf("Init failed:\n%v", err)
			return
		}

		// check D with finite differences
		var s OnedState
		εold := 0.0
		for _, ε := range utl.LinSpace(-2e-3, 2e-3, 9) {
			err = model.Update(&s, ε, ε-εold)
			if err != nil {
				tst.Errorf("Update failed:\n%v", err)
				return
			}
			εold = ε
			D, _ := model.CalcD(&s, false)
			h := 1e-8
			var sa, sb OnedState
			model.Update(&sa, ε+h, ε+h)
			model.Update(&sb, ε-h, ε-h)
			Dnum := (sa.Sig - sb.Sig) / (2 * h)
			io.Pforan("%6s: ε=%10.6f σ=%12.6f D=%12.3f Dnum=%12.3f\n", name, ε, s.Sig, D, Dnum)
			// soft: |ε| has a kink at ε=0 where Dnum = E/(1+h/e0)
			chk.Float64(tst, io.Sf("%s: D @ %g", name, ε), 1e-4*math.Abs(D), D, Dnum)
		}
	}

	// soft law value
	model, _ := New("soft")
	err = model.Init(Prms{&Prm{N: "E", V: 200}, &Prm{N: "e0", V: 1}})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	var s OnedState
	model.Update(&s, 1, 1)
	chk.Float64(tst, "σ(1)", 1e-15, s.Sig, 100)
	err = model.Init(Prms{&Prm{N: "E", V: -1}})
	if err == nil {
		tst.Errorf("negative parameters should fail")
	}
}
