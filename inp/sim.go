// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`                           // description of simulation
	Matfile string `json:"matfile" yaml:"matfile" validate:"required"` // material data file path (.dat, .txt, .csv, .json or .xlsx)
	Mshfile string `json:"mshfile" yaml:"mshfile"`                     // mesh file path; used if "mesh" is not given
	DirOut  string `json:"dirout" yaml:"dirout"`                       // directory for output; e.g. /tmp/ddtruss
	Pdf     bool   `json:"pdf" yaml:"pdf"`                             // also write a PDF report
	ListBcs bool   `json:"listbcs" yaml:"listbcs"`                     // list boundary conditions
}

// NodeBc holds prescribed displacements at a node
type NodeBc struct {
	Node int       `json:"node" yaml:"node" validate:"gte=0"`                        // node (vertex) id
	Keys []string  `json:"keys" yaml:"keys" validate:"min=1,max=2,dive,oneof=ux uy"` // e.g. ["ux", "uy"]
	Vals []float64 `json:"vals" yaml:"vals"`                                         // values corresponding to keys
}

// NodeLoad holds prescribed forces at a node
type NodeLoad struct {
	Node int       `json:"node" yaml:"node" validate:"gte=0"`                        // node (vertex) id
	Keys []string  `json:"keys" yaml:"keys" validate:"min=1,max=2,dive,oneof=fx fy"` // e.g. ["fx", "fy"]
	Vals []float64 `json:"vals" yaml:"vals"`                                         // values corresponding to keys
}

// SolverData holds data-driven solver data
type SolverData struct {
	NmaxIt  int     `json:"nmaxit" yaml:"nmaxit" validate:"gte=0"`        // max number of iterations
	Enum    float64 `json:"enum" yaml:"enum" validate:"gte=0"`            // numerical stiffness; 0 means use mean secant modulus of data
	Seed    uint64  `json:"seed" yaml:"seed"`                             // seed for the initial local states
	InitIdx []int   `json:"initidx" yaml:"initidx" validate:"dive,gte=0"` // initial sample index for each line; random if empty
	Verbose bool    `json:"verbose" yaml:"verbose"`                       // show iterations
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data" yaml:"data"`                                                  // stores global simulation data
	Mesh      *Mesh       `json:"mesh" yaml:"mesh"`                                                  // truss mesh; alternatively given in Data.Mshfile
	Areas     []float64   `json:"areas" yaml:"areas" validate:"required_without=Sections,dive,gt=0"` // cross-sectional areas: one for all lines or one per line
	Sections  []*Section  `json:"sections" yaml:"sections" validate:"dive,required"`                 // cross-sections of lines, by cell tag; used if "areas" is not given
	NodeBcs   []*NodeBc   `json:"nodebcs" yaml:"nodebcs" validate:"dive,required"`                   // prescribed displacements
	NodeLoads []*NodeLoad `json:"nodeloads" yaml:"nodeloads" validate:"dive,required"`               // prescribed forces
	Solver    SolverData  `json:"solver" yaml:"solver"`                                              // data-driven solver data

	// derived
	DirIn  string `json:"-" yaml:"-"` // directory of .sim file
	DirOut string `json:"-" yaml:"-"` // directory to save results
	Key    string `json:"-" yaml:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
}

// validate checks struct tags
var validate = validator.New()

// ReadSim reads all simulation data from a .sim (JSON) or .yaml file
func ReadSim(simfilepath, alias string) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o.Solver.SetDefault()

	// decode
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	o.DirIn = os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "ddtruss", fnkey)
	}

	// mesh
	if o.Mesh == nil {
		if o.Data.Mshfile == "" {
			return nil, chk.Err("ReadSim: either \"mesh\" or \"data.mshfile\" must be given")
		}
		o.Mesh, err = ReadMsh(o.DirIn, o.Data.Mshfile)
		if err != nil {
			return nil, chk.Err("ReadSim: cannot read mesh file:\n%v", err)
		}
	} else {
		err = o.Mesh.Init()
		if err != nil {
			return nil, chk.Err("ReadSim: mesh is invalid:\n%v", err)
		}
	}

	// check
	err = o.Check()
	if err != nil {
		return nil, chk.Err("ReadSim: %q is invalid:\n%v", simfilepath, err)
	}
	return
}

// Check validates input values
func (o *Simulation) Check() (err error) {
	err = validate.Struct(o)
	if err != nil {
		return
	}
	nlines := len(o.Mesh.Cells)
	if len(o.Areas) == 0 {
		o.Areas, err = o.sectionAreas()
		if err != nil {
			return
		}
	}
	if len(o.Areas) != 1 && len(o.Areas) != nlines {
		return chk.Err("number of areas must be 1 or equal to the number of lines (%d); got %d", nlines, len(o.Areas))
	}
	nverts := len(o.Mesh.Verts)
	for _, bc := range o.NodeBcs {
		if bc.Node >= nverts {
			return chk.Err("nodebcs: node %d does not exist", bc.Node)
		}
		if len(bc.Keys) != len(bc.Vals) {
			return chk.Err("nodebcs: node %d: number of keys (%d) and values (%d) must be equal", bc.Node, len(bc.Keys), len(bc.Vals))
		}
	}
	for _, ld := range o.NodeLoads {
		if ld.Node >= nverts {
			return chk.Err("nodeloads: node %d does not exist", ld.Node)
		}
		if len(ld.Keys) != len(ld.Vals) {
			return chk.Err("nodeloads: node %d: number of keys (%d) and values (%d) must be equal", ld.Node, len(ld.Keys), len(ld.Vals))
		}
	}
	if len(o.Solver.InitIdx) > 0 && len(o.Solver.InitIdx) != nlines {
		return chk.Err("solver.initidx must have one index per line (%d); got %d", nlines, len(o.Solver.InitIdx))
	}
	return
}

// PrescribedU returns the map of prescribed displacements: node => {ux, uy}; nil means free
func (o *Simulation) PrescribedU() map[int][]*float64 {
	kv := make([]nodeKeyVals, len(o.NodeBcs))
	for i, bc := range o.NodeBcs {
		kv[i] = nodeKeyVals{bc.Node, bc.Keys, bc.Vals}
	}
	return nodeMap(kv, "ux", "uy")
}

// PrescribedF returns the map of prescribed forces: node => {fx, fy}; nil means no force
func (o *Simulation) PrescribedF() map[int][]*float64 {
	kv := make([]nodeKeyVals, len(o.NodeLoads))
	for i, ld := range o.NodeLoads {
		kv[i] = nodeKeyVals{ld.Node, ld.Keys, ld.Vals}
	}
	return nodeMap(kv, "fx", "fy")
}

// MatDataPath returns the path to the material data file
func (o *Simulation) MatDataPath() string {
	if filepath.IsAbs(o.Data.Matfile) {
		return o.Data.Matfile
	}
	return filepath.Join(o.DirIn, o.Data.Matfile)
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault set defaults values
func (o *SolverData) SetDefault() {
	o.NmaxIt = 100
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// sectionAreas computes the area of each line from the section with the same cell tag
func (o *Simulation) sectionAreas() (areas []float64, err error) {
	tag2area := make(map[int]float64)
	for _, sec := range o.Sections {
		if _, ok := tag2area[sec.Tag]; ok {
			return nil, chk.Err("sections: tag %d is defined more than once", sec.Tag)
		}
		tag2area[sec.Tag], err = sec.Area()
		if err != nil {
			return
		}
	}
	areas = make([]float64, len(o.Mesh.Cells))
	for i, c := range o.Mesh.Cells {
		A, ok := tag2area[c.Tag]
		if !ok {
			return nil, chk.Err("sections: cell %d has tag %d but there is no section with this tag", c.Id, c.Tag)
		}
		areas[i] = A
	}
	return
}

// nodeKeyVals holds keys and values at a node
type nodeKeyVals struct {
	node int
	keys []string
	vals []float64
}

// nodeMap converts keys/values into per-axis values
func nodeMap(kv []nodeKeyVals, xkey, ykey string) (res map[int][]*float64) {
	res = make(map[int][]*float64)
	for _, d := range kv {
		axes, ok := res[d.node]
		if !ok {
			axes = make([]*float64, 2)
			res[d.node] = axes
		}
		for j, key := range d.keys {
			v := d.vals[j]
			switch key {
			case xkey:
				axes[0] = &v
			case ykey:
				axes[1] = &v
			}
		}
	}
	return
}
