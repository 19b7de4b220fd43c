// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package truss implements the 2-node rod element of truss structures
package truss

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Rod represents a structural rod element (for axial loads only) with 2 nodes only and
// simply implemented with constant stiffness matrix; i.e. no numerical integration is needed
type Rod struct {

	// basic data
	Id    int         // element id
	Verts []int       // the two vertices (nodes)
	X     [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Nu    int         // total number of unknowns == 2 * nsn
	Ndim  int         // space dimension

	// parameters and properties
	E float64 // Young's modulus
	A float64 // cross-sectional area
	L float64 // length of rod

	// vectors and matrices
	T [][]float64 // [2][nu] transformation matrix: system aligned to rod => element system
	K [][]float64 // [nu][nu] element K matrix

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// scratchpad
	ua []float64 // [2] local axial displacements
}

// NewRod allocates a new rod connecting vertices a and b with coordinates xa and xb
func NewRod(id, a, b int, xa, xb []float64) (o *Rod, err error) {

	// check
	if len(xa) != 2 || len(xb) != 2 {
		return nil, chk.Err("rod %d: only 2D rods are available; got coordinates %v and %v", id, xa, xb)
	}

	// basic data
	o = new(Rod)
	o.Id = id
	o.Verts = []int{a, b}
	o.Ndim = 2
	o.Nu = o.Ndim * 2
	o.X = [][]float64{
		{xa[0], xb[0]},
		{xa[1], xb[1]},
	}

	// vectors and matrices
	o.T = utl.Alloc(2, o.Nu)
	o.K = utl.Alloc(o.Nu, o.Nu)
	o.ua = make([]float64, 2)

	// geometry
	dx := o.X[0][1] - o.X[0][0]
	dy := o.X[1][1] - o.X[1][0]
	o.L = math.Sqrt(dx*dx + dy*dy)
	if o.L < 1e-14 {
		return nil, chk.Err("rod %d: vertices %d and %d coincide", id, a, b)
	}

	// global-to-local transformation matrix
	c := dx / o.L
	s := dy / o.L
	o.T[0][0] = c
	o.T[0][1] = s
	o.T[1][2] = c
	o.T[1][3] = s

	// equations
	o.Umap = []int{2 * a, 2*a + 1, 2 * b, 2*b + 1}
	return
}

// SetPrms sets Young's modulus and cross-sectional area and re-computes the stiffness matrix
func (o *Rod) SetPrms(E, A float64) {
	o.E, o.A = E, A
	c := o.T[0][0]
	s := o.T[0][1]
	α := o.E * o.A / o.L
	o.K[0][0] = +α * c * c
	o.K[0][1] = +α * c * s
	o.K[0][2] = -α * c * c
	o.K[0][3] = -α * c * s
	o.K[1][0] = +α * c * s
	o.K[1][1] = +α * s * s
	o.K[1][2] = -α * c * s
	o.K[1][3] = -α * s * s
	o.K[2][0] = -α * c * c
	o.K[2][1] = -α * c * s
	o.K[2][2] = +α * c * c
	o.K[2][3] = +α * c * s
	o.K[3][0] = -α * c * s
	o.K[3][1] = -α * s * s
	o.K[3][2] = +α * c * s
	o.K[3][3] = +α * s * s
}

// AddToKb adds element K to global matrix Kb
func (o *Rod) AddToKb(Kb *mat.Dense) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Set(I, J, Kb.At(I, J)+o.K[i][j])
		}
	}
}

// AddToRhs adds the nodal forces equivalent to the initial (eigen) stress σ0 to fb, i.e.
//  fb -= A・L・Bᵀ σ0   with   B = [-c, -s, c, s] / L
func (o *Rod) AddToRhs(fb []float64, σ0 float64) {
	c := o.T[0][0]
	s := o.T[0][1]
	f := o.A * σ0
	fb[o.Umap[0]] += f * c
	fb[o.Umap[1]] += f * s
	fb[o.Umap[2]] -= f * c
	fb[o.Umap[3]] -= f * s
}

// CalcEps computes the axial strain for given global displacements
func (o *Rod) CalcEps(u []float64) float64 {
	for i := 0; i < 2; i++ {
		o.ua[i] = 0
		for j, J := range o.Umap {
			o.ua[i] += o.T[i][j] * u[J]
		}
	}
	return (o.ua[1] - o.ua[0]) / o.L
}

// CalcSig computes the axial stress for given global displacements and initial stress
func (o *Rod) CalcSig(u []float64, σ0 float64) float64 {
	return o.E*o.CalcEps(u) + σ0
}

// Centroid returns the coordinates of the middle of the rod
func (o *Rod) Centroid() (x []float64) {
	x = make([]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		x[i] = (o.X[i][0] + o.X[i][1]) / 2.0
	}
	return
}
