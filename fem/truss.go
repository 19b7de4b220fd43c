// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the linear elastic solver for truss structures
package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tianyikillua/data-driven-truss/ele/truss"
	"github.com/tianyikillua/data-driven-truss/inp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Truss holds the finite element discretisation of a 2D truss structure
type Truss struct {

	// data
	Msh     *inp.Mesh    // the mesh
	Rods    []*truss.Rod // one rod per cell
	Ndim    int          // space dimension
	Nnodes  int          // number of nodes
	Ny      int          // number of displacement equations
	ShowMsg bool         // show messages

	// essential boundary conditions
	EssenBcs EssentialBcs // constraints

	// global matrices and vectors
	Kb     *mat.Dense // augmented Jacobian matrix
	Fb     []float64  // augmented right-hand side
	Wb     []float64  // augmented solution: [u, λ/s]
	LinSol LinSol     // linear solver

	// state of the assembled system
	assembled bool      // Kb has been assembled and factorised
	ebcKey    string    // signature of constrained equations of the assembled system
	eAsm      float64   // Young's modulus used in assembly
	aAsm      []float64 // areas used in assembly
	scale     float64   // scaling of constraint equations

	// results of last solution
	Lam []float64 // [nλ] Lagrange multipliers == minus reactions
}

// NewTruss returns a new truss structure
func NewTruss(msh *inp.Mesh) (o *Truss, err error) {
	o = new(Truss)
	o.Msh = msh
	o.Ndim = msh.Ndim
	o.Nnodes = len(msh.Verts)
	o.Ny = o.Ndim * o.Nnodes
	o.Rods = make([]*truss.Rod, len(msh.Cells))
	for i, c := range msh.Cells {
		a, b := c.Verts[0], c.Verts[1]
		o.Rods[i], err = truss.NewRod(c.Id, a, b, msh.Verts[a].C, msh.Verts[b].C)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Nlines returns the number of lines (rods)
func (o *Truss) Nlines() int { return len(o.Rods) }

// Lengths returns the length of each rod
func (o *Truss) Lengths() (L []float64) {
	L = make([]float64, len(o.Rods))
	for i, r := range o.Rods {
		L[i] = r.L
	}
	return
}

// Integrate returns the length-weighted sum of one value per line
func (o *Truss) Integrate(vals []float64) float64 {
	if len(vals) != len(o.Rods) {
		chk.Panic("Integrate: number of values (%d) must be equal to the number of lines (%d)", len(vals), len(o.Rods))
	}
	return floats.Dot(vals, o.Lengths())
}

// Solve solves the linear elastic problem with initial stress:
//
//  K u = F - Σ A L Bᵀ σ0   with   u = U on prescribed axes
//
//  Input:
//   A        -- cross-sectional areas; one value for all lines or one value per line
//   E        -- Young's modulus
//   U        -- prescribed displacements; nil entries are free
//   F        -- prescribed forces; nil entries are not loaded
//   sig0     -- [nlines] initial stresses; nil means zero
//   assemble -- assemble and factorise the global matrix. If false, the system factorised by a
//               previous call is reused; the same A, E and constrained axes are then required
//  Output:
//   u   -- [ny] nodal displacements: [ux0, uy0, ux1, uy1, ...]
//   eps -- [nlines] axial strains
//   sig -- [nlines] axial stresses: E eps + sig0
func (o *Truss) Solve(A []float64, E float64, U, F NodeVals, sig0 []float64, assemble bool) (u, eps, sig []float64, err error) {

	// check
	nl := len(o.Rods)
	area, err := o.areas(A)
	if err != nil {
		return
	}
	if !(E > 0) || math.IsInf(E, 0) {
		err = chk.Err("Young's modulus must be positive and finite; got %v", E)
		return
	}
	if sig0 != nil && len(sig0) != nl {
		err = chk.Err("number of initial stresses (%d) must be equal to the number of lines (%d)", len(sig0), nl)
		return
	}
	err = U.check("prescribed displacements", o.Nnodes, o.Ndim)
	if err != nil {
		return
	}
	err = F.check("prescribed forces", o.Nnodes, o.Ndim)
	if err != nil {
		return
	}

	// essential boundary conditions
	o.EssenBcs.Init(U)
	nλ := o.EssenBcs.Nlam()
	if o.ShowMsg && assemble {
		io.Pf("%v", o.EssenBcs.List())
	}

	// assemble and factorise Jacobian matrix just once
	if assemble {
		err = o.assemble(area, E)
		if err != nil {
			return
		}
	} else {
		if !o.assembled {
			err = chk.Err("global matrix has not been assembled yet; call Solve with assemble=true first")
			return
		}
		if o.EssenBcs.Key() != o.ebcKey {
			err = chk.Err("constrained axes differ from those of the assembled system; call Solve with assemble=true")
			return
		}
		if E != o.eAsm || !floats.Equal(area, o.aAsm) {
			err = chk.Err("modulus or areas differ from those of the assembled system; call Solve with assemble=true")
			return
		}
	}

	// right-hand side
	for i := range o.Fb {
		o.Fb[i] = 0
	}
	for _, node := range F.Nodes() {
		for i, v := range F[node] {
			if v != nil {
				o.Fb[node*o.Ndim+i] += *v
			}
		}
	}
	if sig0 != nil {
		for i, r := range o.Rods {
			r.AddToRhs(o.Fb, sig0[i])
		}
	}
	o.EssenBcs.AddToRhs(o.Fb, o.Ny, o.scale)

	// solve for wb
	err = o.LinSol.Solve(o.Wb, o.Fb)
	if err != nil {
		return
	}

	// results
	u = make([]float64, o.Ny)
	copy(u, o.Wb[:o.Ny])
	o.Lam = make([]float64, nλ)
	for i := 0; i < nλ; i++ {
		o.Lam[i] = o.scale * o.Wb[o.Ny+i]
	}
	eps = make([]float64, nl)
	sig = make([]float64, nl)
	for i, r := range o.Rods {
		σ0 := 0.0
		if sig0 != nil {
			σ0 = sig0[i]
		}
		eps[i] = r.CalcEps(u)
		sig[i] = r.CalcSig(u, σ0)
	}
	return
}

// Reactions returns the reaction forces at prescribed axes computed by the last call to Solve
func (o *Truss) Reactions() (R NodeVals) {
	R = make(NodeVals)
	for i, bc := range o.EssenBcs.Bcs {
		if i >= len(o.Lam) {
			break
		}
		if _, ok := R[bc.Node]; !ok {
			R[bc.Node] = make([]*float64, o.Ndim)
		}
		R[bc.Node][bc.Eqs[0]-bc.Node*o.Ndim] = V(-o.Lam[i])
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// areas returns one area per line
func (o *Truss) areas(A []float64) (area []float64, err error) {
	nl := len(o.Rods)
	switch len(A) {
	case 1:
		area = make([]float64, nl)
		for i := range area {
			area[i] = A[0]
		}
	case nl:
		area = make([]float64, nl)
		copy(area, A)
	default:
		return nil, chk.Err("number of areas must be 1 or equal to the number of lines (%d); got %d", nl, len(A))
	}
	for i, a := range area {
		if !(a > 0) || math.IsInf(a, 0) {
			return nil, chk.Err("area of line %d must be positive and finite; got %v", i, a)
		}
	}
	return
}

// assemble assembles and factorises the augmented matrix
func (o *Truss) assemble(area []float64, E float64) (err error) {
	o.assembled = false
	nλ := o.EssenBcs.Nlam()
	n := o.Ny + nλ
	o.Kb = mat.NewDense(n, n, nil)
	o.Fb = make([]float64, n)
	o.Wb = make([]float64, n)
	for i, r := range o.Rods {
		r.SetPrms(E, area[i])
		r.AddToKb(o.Kb)
	}

	// scale constraint equations with the largest stiffness coefficient
	o.scale = 1
	for i := 0; i < o.Ny; i++ {
		o.scale = math.Max(o.scale, math.Abs(o.Kb.At(i, i)))
	}
	o.EssenBcs.AddToKb(o.Kb, o.Ny, o.scale)

	// factorisation
	err = o.LinSol.Fact(o.Kb)
	if err != nil {
		return
	}
	o.assembled = true
	o.ebcKey = o.EssenBcs.Key()
	o.eAsm = E
	o.aAsm = area
	return
}
