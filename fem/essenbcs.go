// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// EssentialBc holds information about essential bounday conditions such as constrained nodes.
// Lagrange multipliers are used to implement the constraints.
//  In general, essential bcs / constraints are defined by means of:
//
//      A・u = c
//
//  The resulting Kb matrix will then have the following form:
//      _       _
//     |  K  At  | / u \   / f \
//     |         | |   | = |   |
//     |_ A   0 _| \ λ /   \ c /
//         Kb        x       fb
//
type EssentialBc struct {
	Key   string    // key such as 'ux', 'uy'
	Node  int       // node id
	Eqs   []int     // equations numbers
	ValsA []float64 // values for matrix A
	C     float64   // prescribed value; i.e. the "c" in A・u = c
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential bcs / constraints.
// Each constraint will have a unique Lagrange multiplier index.
type EssentialBcs struct {
	Bcs EbcArray // active essential bcs / constraints
}

// axis keys
var ukeys = []string{"ux", "uy"}

// Init builds single-point constraints from prescribed displacements
func (o *EssentialBcs) Init(U NodeVals) {
	o.Bcs = make([]*EssentialBc, 0)
	for _, node := range U.Nodes() {
		for i, v := range U[node] {
			if v == nil {
				continue // free
			}
			o.set_eqs(ukeys[i], node, []int{2*node + i}, []float64{1}, *v)
		}
	}
	sort.Sort(o.Bcs)
}

// Nlam returns the number of Lagrange multipliers
func (o *EssentialBcs) Nlam() int { return len(o.Bcs) }

// Key returns a signature of the constrained equations; it does not depend on prescribed values
func (o *EssentialBcs) Key() string {
	var sb strings.Builder
	for _, bc := range o.Bcs {
		for _, eq := range bc.Eqs {
			sb.WriteString(io.Sf("%d,", eq))
		}
		sb.WriteString(";")
	}
	return sb.String()
}

// AddToKb puts A and tr(A) into the augmented matrix, multiplied by the scaling factor s
func (o *EssentialBcs) AddToKb(Kb *mat.Dense, ny int, s float64) {
	for i, bc := range o.Bcs {
		for j, eq := range bc.Eqs {
			Kb.Set(ny+i, eq, s*bc.ValsA[j])
			Kb.Set(eq, ny+i, s*bc.ValsA[j])
		}
	}
}

// AddToRhs sets the "c" values into the augmented fb vector, multiplied by the scaling factor s
func (o *EssentialBcs) AddToRhs(fb []float64, ny int, s float64) {
	for i, bc := range o.Bcs {
		fb[ny+i] = s * bc.C
	}
}

// List returns a simple list logging bcs
func (o *EssentialBcs) List() (l string) {
	l = "\n==================================================\n"
	l += io.Sf("%8s%8s%8s%25s\n", "node", "eq", "key", "value")
	l += "--------------------------------------------------\n"
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8d%8s%25.13f\n", bc.Node, bc.Eqs[0], bc.Key, bc.C)
	}
	l += "==================================================\n"
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// set_eqs sets/replace constraint and equations
func (o *EssentialBcs) set_eqs(key string, node int, eqs []int, valsA []float64, c float64) {

	// replace existent
	for _, eq := range eqs {
		for _, bc := range o.Bcs {
			for _, eqOld := range bc.Eqs {
				if eqOld == eq {
					bc.Key, bc.Node, bc.Eqs, bc.ValsA, bc.C = key, node, eqs, valsA, c
					return
				}
			}
		}
	}

	// add new
	o.Bcs = append(o.Bcs, &EssentialBc{key, node, eqs, valsA, c})
}

// functions to implement Sort interface
func (o EbcArray) Len() int      { return len(o) }
func (o EbcArray) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool {
	sort.Ints(o[i].Eqs)
	sort.Ints(o[j].Eqs)
	return o[i].Eqs[0] < o[j].Eqs[0]
}
