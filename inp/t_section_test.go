// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. typical cross-sections")

	for _, c := range []struct {
		sec Section
		A   float64
	}{
		{Section{Type: "area", A: 3.5}, 3.5},
		{Section{Type: "rectangle", Wid: 4, Hei: 6}, 24},
		{Section{Type: "I-beam", Wid: 4, Hei: 6, Tf: 0.5, Tw: 0.3}, 5.5},
		{Section{Type: "circle", R: 1}, math.Pi},
		{Section{Type: "tube", R: 2, T: 1}, 3 * math.Pi},
	} {
		A, err := c.sec.Area()
		if err != nil {
			tst.Errorf("%s: Area failed:\n%v", c.sec.Type, err)
			continue
		}
		io.Pforan("%10s: A = %v\n", c.sec.Type, A)
		chk.Float64(tst, c.sec.Type, 1e-14, A, c.A)
	}

	for i, sec := range []Section{
		{Type: "hexagon", Wid: 1},
		{Type: "rectangle", Wid: 0, Hei: 1},
		{Type: "I-beam", Wid: 4, Hei: 6, Tf: 3, Tw: 0.3},
		{Type: "tube", R: 1, T: 1},
	} {
		_, err := sec.Area()
		if err == nil {
			tst.Errorf("case %d should fail", i)
		}
	}
}
