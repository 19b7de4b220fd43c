// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dd

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tianyikillua/data-driven-truss/fem"
	"github.com/tianyikillua/data-driven-truss/inp"
)

// Main holds all data for a data-driven simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Truss   *fem.Truss      // structure
	Solver  *Solver         // data-driven solver
	Summary *Summary        // summary of last run
	Result  *Result         // results of last successful run
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim, .yaml) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple solutions
//   verbose     -- show messages
func NewMain(simfilepath, alias string, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, alias)
	if err != nil {
		return nil, err
	}

	// structure
	o.Truss, err = fem.NewTruss(o.Sim.Mesh)
	if err != nil {
		return nil, chk.Err("cannot allocate truss:\n%v", err)
	}
	o.Truss.ShowMsg = verbose && o.Sim.Data.ListBcs

	// material data
	rows, err := inp.ReadMatData(o.Sim.MatDataPath())
	if err != nil {
		return nil, err
	}

	// solver
	o.Solver = NewSolver(o.Truss, o.Sim.Solver.Seed)
	o.Solver.InitIdx = o.Sim.Solver.InitIdx
	o.Solver.Verbose = verbose && o.Sim.Solver.Verbose
	err = o.Solver.LoadMaterialData(rows)
	if err != nil {
		return nil, err
	}

	// message
	if o.ShowMsg {
		io.Pf("> Simulation file read: %d nodes, %d lines, %d samples\n", o.Truss.Nnodes, o.Truss.Nlines(), o.Solver.Data.Ndata())
	}
	return
}

// Run runs the data-driven solver and saves the summary. Summaries are saved for failed runs as well
func (o *Main) Run() (err error) {

	// input
	var Enum *float64
	if o.Sim.Solver.Enum > 0 {
		Enum = &o.Sim.Solver.Enum
	}
	U := fem.NodeVals(o.Sim.PrescribedU())
	F := fem.NodeVals(o.Sim.PrescribedF())

	// run
	cputime := time.Now()
	o.Result = nil
	o.Summary = NewSummary(o.Sim.Key, o.Sim.Data.Desc, o.Truss.Nlines(), o.Solver.Data.Ndata(), o.Sim.Solver.NmaxIt)
	res, err := o.Solver.Solve(o.Sim.Areas, U, F, o.Sim.Solver.NmaxIt, Enum)
	if err != nil {
		o.Summary.SetError(err)
	} else {
		o.Result = res

		// the last linear solution equilibrates the mechanical stresses
		o.Summary.SetResult(res, o.Truss.Reactions())
	}

	// save summary
	_, serr := o.Summary.Save(o.Sim.DirOut, o.Sim.Key)
	if serr != nil && err == nil {
		err = serr
	}

	// message
	if o.ShowMsg {
		if err == nil {
			io.PfGreen("> Success\n")
		} else {
			io.PfRed("> Failed\n")
		}
		io.Pf("> CPU time = %v\n", time.Since(cputime))
	}
	return
}

// RunLinear solves the linear elastic problem with Young's modulus E. The numerical stiffness
// of the simulation file or the secant modulus of the data is used if E is not positive
func (o *Main) RunLinear(E float64) (u, eps, sig []float64, err error) {
	if E <= 0 {
		E = o.Sim.Solver.Enum
	}
	if E <= 0 {
		E, err = o.Solver.Data.SecantModulus()
		if err != nil {
			return
		}
	}
	U := fem.NodeVals(o.Sim.PrescribedU())
	F := fem.NodeVals(o.Sim.PrescribedF())
	return o.Truss.Solve(o.Sim.Areas, E, U, F, nil, true)
}
