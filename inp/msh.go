// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id" yaml:"id"`   // id
	Tag int       `json:"tag" yaml:"tag"` // tag
	C   []float64 `json:"c" yaml:"c"`     // coordinates (size==2)
}

// Cell holds cell data. For trusses, cells are lines (rods) connecting two vertices
type Cell struct {
	Id    int   `json:"id" yaml:"id"`       // id
	Tag   int   `json:"tag" yaml:"tag"`     // tag
	Verts []int `json:"verts" yaml:"verts"` // vertices
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts" yaml:"verts"` // vertices
	Cells []*Cell `json:"cells" yaml:"cells"` // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell // cell tag => set of cells
}

// ReadMsh reads a mesh for FE analyses
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := os.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.Init()
	if err != nil {
		return nil, chk.Err("mesh file %q is invalid:\n%v", o.FnamePath, err)
	}
	return
}

// Init checks the mesh and computes derived data
func (o *Mesh) Init() (err error) {

	// check
	if len(o.Verts) < 2 {
		return chk.Err("at least 2 vertices are required; got %d", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("at least 1 cell is required")
	}

	// vertex related derived data
	o.Ndim = 2
	o.Xmin, o.Xmax = math.Inf(1), math.Inf(-1)
	o.Ymin, o.Ymax = math.Inf(1), math.Inf(-1)
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id
		if v == nil {
			return chk.Err("vertex %d is missing", i)
		}
		if v.Id != i {
			return chk.Err("vertices ids must coincide with order in \"verts\" list. %d != %d", v.Id, i)
		}

		// ndim
		if len(v.C) != 2 {
			return chk.Err("vertex %d: only 2D meshes are available; got %d coordinates", v.Id, len(v.C))
		}

		// tags
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}

		// limits
		o.Xmin = math.Min(o.Xmin, v.C[0])
		o.Xmax = math.Max(o.Xmax, v.C[0])
		o.Ymin = math.Min(o.Ymin, v.C[1])
		o.Ymax = math.Max(o.Ymax, v.C[1])
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {

		// check id
		if c == nil {
			return chk.Err("cell %d is missing", i)
		}
		if c.Id != i {
			return chk.Err("cells ids must coincide with order in \"cells\" list. %d != %d", c.Id, i)
		}

		// check connectivity
		if len(c.Verts) != 2 {
			return chk.Err("cell %d: truss lines must have 2 vertices; got %d", c.Id, len(c.Verts))
		}
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d: vertex %d does not exist", c.Id, v)
			}
		}
		if c.Verts[0] == c.Verts[1] {
			return chk.Err("cell %d: vertices must be different; got %v", c.Id, c.Verts)
		}

		// tags
		if c.Tag < 0 {
			o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		}
	}
	return
}

// NewMesh returns a new mesh with given coordinates [nverts][2] and connectivity [ncells][2]
func NewMesh(coords [][]float64, lines [][]int) (o *Mesh, err error) {
	o = new(Mesh)
	o.Verts = make([]*Vert, len(coords))
	for i, x := range coords {
		o.Verts[i] = &Vert{Id: i, C: x}
	}
	o.Cells = make([]*Cell, len(lines))
	for i, l := range lines {
		o.Cells[i] = &Cell{Id: i, Verts: l}
	}
	err = o.Init()
	if err != nil {
		return nil, err
	}
	return
}
