// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
	"github.com/tianyikillua/data-driven-truss/fem"
)

// Summary records the results of one data-driven simulation
type Summary struct {
	RunId     string       `json:"runid"`     // unique identifier of this run
	Key       string       `json:"key"`       // simulation key
	Desc      string       `json:"desc"`      // description of simulation
	Date      time.Time    `json:"date"`      // date of run
	CpuTime   float64      `json:"cputime"`   // elapsed time [s]
	Nlines    int          `json:"nlines"`    // number of lines
	Ndata     int          `json:"ndata"`     // number of samples
	Enum      float64      `json:"enum"`      // numerical stiffness
	NmaxIt    int          `json:"nmaxit"`    // max number of iterations
	Converged bool         `json:"converged"` // the local states stabilised
	Nit       int          `json:"nit"`       // number of iterations
	Message   string       `json:"message"`   // error message if not successful
	Trace     []float64    `json:"trace"`     // objective at each iteration
	U         []float64    `json:"u"`         // displacements
	Eps       []float64    `json:"eps"`       // strains of selected samples
	Sig       []float64    `json:"sig"`       // stresses of selected samples
	EpsMech   []float64    `json:"epsmech"`   // strains of mechanical states
	SigMech   []float64    `json:"sigmech"`   // stresses of mechanical states
	Idx       []int        `json:"idx"`       // indices of selected samples
	Dist      []float64    `json:"dist"`      // distances to selected samples
	Reactions fem.NodeVals `json:"reactions"` // reactions at prescribed axes

	start time.Time
}

// NewSummary returns a new summary and starts the clock
func NewSummary(key, desc string, nlines, ndata, nmaxit int) (o *Summary) {
	o = new(Summary)
	o.RunId = uuid.NewString()
	o.Key = key
	o.Desc = desc
	o.Nlines = nlines
	o.Ndata = ndata
	o.NmaxIt = nmaxit
	o.start = time.Now()
	o.Date = o.start
	return
}

// SetResult records a converged solution
func (o *Summary) SetResult(res *Result, reactions fem.NodeVals) {
	o.CpuTime = time.Since(o.start).Seconds()
	o.Converged = true
	o.Nit = res.Nit
	o.Enum = res.Enum
	o.Trace = res.Trace
	o.U = res.U
	o.Eps = res.Eps
	o.Sig = res.Sig
	o.EpsMech = res.EpsMech
	o.SigMech = res.SigMech
	o.Idx = res.Idx
	o.Dist = res.Dist
	o.Reactions = reactions
}

// SetError records a failure. The trace of non-converged runs is kept
func (o *Summary) SetError(err error) {
	o.CpuTime = time.Since(o.start).Seconds()
	o.Converged = false
	o.Message = err.Error()
	var nc *NotConvergedError
	if errors.As(err, &nc) {
		o.Trace = nc.Trace
		o.Nit = len(nc.Trace)
	}
}

// Save saves summary to <dirout>/<key>-summary.json
func (o *Summary) Save(dirout, key string) (fnpath string, err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", chk.Err("cannot marshal summary:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fnpath = filepath.Join(dirout, io.Sf("%s-summary.json", key))
	err = os.WriteFile(fnpath, b, 0644)
	if err != nil {
		return "", chk.Err("cannot write summary file %q:\n%v", fnpath, err)
	}
	return
}

// ReadSummary reads a summary file
func ReadSummary(fnpath string) (o *Summary, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read summary file %q:\n%v", fnpath, err)
	}
	o = new(Summary)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal summary file %q:\n%v", fnpath, err)
	}
	return
}
