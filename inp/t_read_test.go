// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. read mesh")

	msh, err := ReadMsh("data", "twobars.msh")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pfcyan("lims = [%g, %g, %g, %g]\n", msh.Xmin, msh.Xmax, msh.Ymin, msh.Ymax)
	chk.Int(tst, "ndim", msh.Ndim, 2)
	chk.Float64(tst, "xmin", 1e-17, msh.Xmin, 0)
	chk.Float64(tst, "xmax", 1e-17, msh.Xmax, 2000)
	chk.Float64(tst, "ymin", 1e-17, msh.Ymin, 0)
	chk.Float64(tst, "ymax", 1e-17, msh.Ymax, 0)
	chk.Int(tst, "nverts", len(msh.Verts), 3)
	chk.Int(tst, "ncells", len(msh.Cells), 2)
	chk.Ints(tst, "cell 1", msh.Cells[1].Verts, []int{1, 2})
	chk.Int(tst, "verts with tag -1", len(msh.VertTag2verts[-1]), 1)
	chk.Int(tst, "verts with tag -2", len(msh.VertTag2verts[-2]), 1)
	chk.Int(tst, "cells with tag -1", len(msh.CellTag2cells[-1]), 2)
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. invalid meshes")

	_, err := ReadMsh("data", "notfound.msh")
	require.Error(tst, err)

	for i, m := range []struct {
		coords [][]float64
		lines  [][]int
	}{
		{[][]float64{{0, 0}}, [][]int{{0, 0}}},
		{[][]float64{{0, 0}, {1, 0}}, nil},
		{[][]float64{{0, 0}, {1, 0}}, [][]int{{0, 0}}},
		{[][]float64{{0, 0}, {1, 0}}, [][]int{{0, 2}}},
		{[][]float64{{0, 0}, {1, 0}}, [][]int{{0, 1, 1}}},
		{[][]float64{{0, 0, 0}, {1, 0, 0}}, [][]int{{0, 1}}},
	} {
		_, err = NewMesh(m.coords, m.lines)
		if err == nil {
			tst.Errorf("case %d should fail", i)
		}
	}

	msh, err := NewMesh([][]float64{{0, 0}, {1, 2}}, [][]int{{1, 0}})
	require.NoError(tst, err)
	chk.Float64(tst, "ymax", 1e-17, msh.Ymax, 2)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read JSON simulation file")

	sim, err := ReadSim("data/twobars.sim", "")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if chk.Verbose {
		sim.GetInfo(os.Stdout)
	}
	require.Equal(tst, "twobars", sim.Key)
	require.Equal(tst, "/tmp/ddtruss/twobars", sim.DirOut)
	require.Equal(tst, filepath.Join("data", "bars.dat"), sim.MatDataPath())
	chk.Int(tst, "nlines", len(sim.Mesh.Cells), 2)
	chk.Array(tst, "areas", 1e-17, sim.Areas, []float64{1})
	chk.Int(tst, "nmaxit", sim.Solver.NmaxIt, 100)
	chk.Float64(tst, "enum", 1e-17, sim.Solver.Enum, 840000)
	if sim.Solver.Seed != 1234 {
		tst.Errorf("seed is incorrect: %d", sim.Solver.Seed)
	}

	U := sim.PrescribedU()
	chk.Int(tst, "len(U)", len(U), 3)
	chk.Float64(tst, "ux2", 1e-17, *U[2][0], 1)
	chk.Float64(tst, "uy2", 1e-17, *U[2][1], 0)
	chk.Int(tst, "len(F)", len(sim.PrescribedF()), 0)

	// alias
	sim, err = ReadSim("data/twobars.sim", "b")
	require.NoError(tst, err)
	require.Equal(tst, "twobars-b", sim.Key)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. read YAML simulation file with mesh file")

	sim, err := ReadSim("data/twobars.yaml", "")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	require.Equal(tst, filepath.Join(os.TempDir(), "ddtruss", "twobars"), sim.DirOut)
	require.Equal(tst, filepath.Join("data", "bars.csv"), sim.MatDataPath())
	chk.Int(tst, "nverts", len(sim.Mesh.Verts), 3)
	chk.Array(tst, "areas", 1e-17, sim.Areas, []float64{1, 1})
	chk.Int(tst, "nmaxit", sim.Solver.NmaxIt, 20)
	chk.Ints(tst, "initidx", sim.Solver.InitIdx, []int{0, 2})
	if !sim.Solver.Verbose {
		tst.Errorf("verbose flag must be true")
	}

	F := sim.PrescribedF()
	chk.Int(tst, "len(F)", len(F), 1)
	if F[1][0] != nil {
		tst.Errorf("fx1 must not be prescribed")
	}
	chk.Float64(tst, "fy1", 1e-17, *F[1][1], -10)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. areas from cross-sections")

	sim, err := ReadSim("data/sections.sim", "")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "areas", 1e-12, sim.Areas, []float64{100 * math.Pi, 100 * math.Pi, 200})
	chk.Int(tst, "len(U)", len(sim.PrescribedU()), 2)
	if sim.PrescribedU()[1][0] != nil {
		tst.Errorf("ux1 must be free")
	}
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. invalid simulation files")

	mesh := `"mesh":{"verts":[{"id":0,"c":[0,0]},{"id":1,"c":[1,0]}],"cells":[{"id":0,"verts":[0,1]}]}`
	bcs := `"nodebcs":[{"node":0,"keys":["ux","uy"],"vals":[0,0]}]`
	dir := tst.TempDir()
	for i, content := range []string{
		`{` + mesh + `,"areas":[1],` + bcs + `}`,                                                        // no matfile
		`{"data":{"matfile":"a.dat"},"areas":[1],` + bcs + `}`,                                          // no mesh
		`{"data":{"matfile":"a.dat"},` + mesh + `,` + bcs + `}`,                                         // no areas
		`{"data":{"matfile":"a.dat"},` + mesh + `,"areas":[1,1],` + bcs + `}`,                           // wrong number of areas
		`{"data":{"matfile":"a.dat"},` + mesh + `,"areas":[-1],` + bcs + `}`,                            // negative area
		`{"data":{"matfile":"a.dat"},` + mesh + `,"areas":[1],"nodebcs":[{"node":5,"keys":["ux"],"vals":[0]}]}`, // wrong node
		`{"data":{"matfile":"a.dat"},` + mesh + `,"areas":[1],"nodebcs":[{"node":0,"keys":["uz"],"vals":[0]}]}`, // wrong key
		`{"data":{"matfile":"a.dat"},` + mesh + `,"areas":[1],"nodebcs":[{"node":0,"keys":["ux"],"vals":[]}]}`,  // wrong vals
		`{"data":{"matfile":"a.dat"},` + mesh + `,"areas":[1],` + bcs + `,"nodeloads":[{"node":1,"keys":["ux"],"vals":[1]}]}`,
		`{"data":{"matfile":"a.dat"},` + mesh + `,"areas":[1],` + bcs + `,"solver":{"initidx":[0,1]}}`,
		`{"data":{"matfile":"a.dat"},` + mesh + `,"areas":[1],` + bcs + `,"solver":{"nmaxit":-1}}`,
		`{"data":{"matfile":"a.dat"},` + mesh + `,"sections":[{"tag":-1,"type":"circle","r":1}],` + bcs + `}`,  // no section with tag 0
		`{"data":{"matfile":"a.dat"},` + mesh + `,"sections":[{"tag":0,"type":"square","r":1}],` + bcs + `}`,   // wrong type
		`{"data":{"matfile":"a.dat"},` + mesh + `,"sections":[{"tag":0,"type":"circle","r":1},{"tag":0,"type":"circle","r":2}],` + bcs + `}`,
		`{"data":{"matfile":"a.dat"},`,
	} {
		fn := filepath.Join(dir, io.Sf("wrong%02d.sim", i))
		err := os.WriteFile(fn, []byte(content), 0644)
		require.NoError(tst, err)
		_, err = ReadSim(fn, "")
		if err == nil {
			tst.Errorf("case %d should fail", i)
			continue
		}
		io.Pforan("%d: %v\n", i, err)
	}
	_, err := ReadSim(filepath.Join(dir, "notfound.sim"), "")
	require.Error(tst, err)
}
