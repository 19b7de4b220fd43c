// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// NodeVals maps node ids to per-axis values {x, y}. A nil entry means that the corresponding
// axis is not prescribed: free displacement or no applied force
//  Example: NodeVals{0: {V(0), V(0)}, 2: {V(1), nil}}
type NodeVals map[int][]*float64

// V returns a pointer to a copy of x; convenient to build NodeVals literals
func V(x float64) *float64 { return &x }

// Zeroed returns a copy where every prescribed value is replaced by zero and free axes remain free
func (o NodeVals) Zeroed() (res NodeVals) {
	res = make(NodeVals, len(o))
	for node, vals := range o {
		res[node] = make([]*float64, len(vals))
		for i, v := range vals {
			if v != nil {
				res[node][i] = V(0)
			}
		}
	}
	return
}

// Nodes returns the sorted node ids
func (o NodeVals) Nodes() (nodes []int) {
	nodes = make([]int, 0, len(o))
	for node := range o {
		nodes = append(nodes, node)
	}
	sort.Ints(nodes)
	return
}

// check checks node ids and number of axes
func (o NodeVals) check(what string, nnodes, ndim int) (err error) {
	for _, node := range o.Nodes() {
		if node < 0 || node >= nnodes {
			return chk.Err("%s: node %d does not exist; number of nodes = %d", what, node, nnodes)
		}
		if len(o[node]) > ndim {
			return chk.Err("%s: node %d has %d values but the space dimension is %d", what, node, len(o[node]), ndim)
		}
	}
	return
}
