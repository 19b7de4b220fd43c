// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "gonum.org/v1/gonum/spatial/kdtree"

// point is a rescaled (strain, stress) sample. Idx is the sample index; -1 for queries
type point struct {
	X   [2]float64
	Idx int
}

// Compare returns the signed distance of p from the plane passing through c and
// perpendicular to the dimension d
func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(point)
	return p.X[d] - q.X[d]
}

// Dims returns the number of dimensions
func (p point) Dims() int { return 2 }

// Distance returns the squared Euclidean distance between c and p
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	dx := p.X[0] - q.X[0]
	dy := p.X[1] - q.X[1]
	return dx*dx + dy*dy
}

// points implements kdtree.Interface
type points []point

func (p points) Index(i int) kdtree.Comparable         { return p[i] }
func (p points) Len() int                              { return len(p) }
func (p points) Pivot(d kdtree.Dim) int                { return plane{points: p, Dim: d}.Pivot() }
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane implements kdtree.SortSlicer along one dimension
type plane struct {
	kdtree.Dim
	points
}

func (p plane) Less(i, j int) bool { return p.points[i].X[p.Dim] < p.points[j].X[p.Dim] }
func (p plane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
func (p plane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }
