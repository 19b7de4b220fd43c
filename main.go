// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/tianyikillua/data-driven-truss/dd"
	"github.com/tianyikillua/data-driven-truss/inp"
	"github.com/tianyikillua/data-driven-truss/mdl/dataset"
	"github.com/tianyikillua/data-driven-truss/out"
)

var rootCmd = &cobra.Command{
	Use:   "ddtruss",
	Short: "Data-driven solver for truss structures",
	Long: `ddtruss finds the equilibrium state of 2D truss structures that is closest to a set of
measured (strain, stress) samples, without any constitutive model.`,
	SilenceUsage: true,
}

var solveCmd = &cobra.Command{
	Use:   "solve <file.sim>",
	Short: "Run the data-driven solver",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

var linearCmd = &cobra.Command{
	Use:   "linear <file.sim>",
	Short: "Solve the same problem with a linear elastic material",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinear,
}

var genCmd = &cobra.Command{
	Use:   "gen <out.dat>",
	Short: "Generate a synthetic material dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runGen,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show messages")

	solveCmd.Flags().Int("nmaxit", -1, "max number of iterations; overrides the simulation file")
	solveCmd.Flags().Float64("enum", 0, "numerical stiffness; overrides the simulation file")
	solveCmd.Flags().Int64("seed", -1, "seed for the initial local states; overrides the simulation file")
	solveCmd.Flags().Bool("pdf", false, "also write a PDF report")
	solveCmd.Flags().String("alias", "", "word appended to the simulation key")

	linearCmd.Flags().Float64("E", 0, "Young's modulus; 0 means numerical stiffness or secant modulus of data")

	genCmd.Flags().String("law", "linear", "material law: linear or soft")
	genCmd.Flags().Float64("E", 210000, "Young's modulus")
	genCmd.Flags().Float64("e0", 1e-3, "soft law: reference strain")
	genCmd.Flags().Int("n", 101, "number of samples")
	genCmd.Flags().Float64("emax", 2e-3, "max absolute strain")
	genCmd.Flags().Float64("noise", 0, "standard deviation of stress noise relative to E*emax")
	genCmd.Flags().Uint64("seed", 0, "seed for the noise")

	rootCmd.AddCommand(solveCmd, linearCmd, genCmd)
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) (err error) {

	// read input parameters
	verbose, _ := cmd.Flags().GetBool("verbose")
	nmaxit, _ := cmd.Flags().GetInt("nmaxit")
	enum, _ := cmd.Flags().GetFloat64("enum")
	seed, _ := cmd.Flags().GetInt64("seed")
	pdf, _ := cmd.Flags().GetBool("pdf")
	alias, _ := cmd.Flags().GetString("alias")

	// message
	if verbose {
		io.PfWhite("\nddtruss -- data-driven solver for truss structures\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation file", "fnamepath", args[0],
			"max number of iterations", "nmaxit", nmaxit,
			"numerical stiffness", "enum", enum,
			"seed", "seed", seed,
			"write PDF report", "pdf", pdf,
		))
	}

	// analysis data
	analysis, err := dd.NewMain(args[0], alias, verbose)
	if err != nil {
		return
	}
	if nmaxit >= 0 {
		analysis.Sim.Solver.NmaxIt = nmaxit
	}
	if enum > 0 {
		analysis.Sim.Solver.Enum = enum
	}
	if seed >= 0 {
		analysis.Solver.Seed = uint64(seed)
	}
	analysis.Solver.Verbose = verbose

	// run simulation
	err = analysis.Run()
	var nc *dd.NotConvergedError
	if errors.As(err, &nc) {
		io.Pfred("objective at each iteration:\n")
		for i, v := range nc.Trace {
			io.Pf("%6d%23.15e\n", i+1, v)
		}
	}

	// report
	if pdf || analysis.Sim.Data.Pdf {
		fnpath, perr := out.SaveReport(analysis.Summary, analysis.Sim.DirOut, analysis.Sim.Key)
		if perr != nil && err == nil {
			err = perr
		}
		if perr == nil && verbose {
			io.Pf("> Report saved to %s\n", fnpath)
		}
	}
	if err != nil {
		return
	}

	// results
	io.Pf("%6s%8s%23s%23s%23s\n", "line", "sample", "eps", "sig", "dist")
	for i, idx := range analysis.Result.Idx {
		io.Pf("%6d%8d%23.15e%23.15e%23.15e\n", i, idx, analysis.Result.Eps[i], analysis.Result.Sig[i], analysis.Result.Dist[i])
	}
	io.Pfgreen("converged after %d iterations; summary saved in %s\n", analysis.Result.Nit, analysis.Sim.DirOut)
	return
}

func runLinear(cmd *cobra.Command, args []string) (err error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	E, _ := cmd.Flags().GetFloat64("E")
	analysis, err := dd.NewMain(args[0], "linear", verbose)
	if err != nil {
		return
	}
	u, eps, sig, err := analysis.RunLinear(E)
	if err != nil {
		return
	}
	io.Pf("%6s%23s%23s\n", "node", "ux", "uy")
	for i := 0; i < len(u)/2; i++ {
		io.Pf("%6d%23.15e%23.15e\n", i, u[2*i], u[2*i+1])
	}
	io.Pf("%6s%23s%23s\n", "line", "eps", "sig")
	for i := range eps {
		io.Pf("%6d%23.15e%23.15e\n", i, eps[i], sig[i])
	}
	return
}

func runGen(cmd *cobra.Command, args []string) (err error) {
	var syn dataset.Synth
	syn.Law, _ = cmd.Flags().GetString("law")
	syn.E, _ = cmd.Flags().GetFloat64("E")
	syn.E0, _ = cmd.Flags().GetFloat64("e0")
	syn.N, _ = cmd.Flags().GetInt("n")
	syn.EpsM, _ = cmd.Flags().GetFloat64("emax")
	syn.Noise, _ = cmd.Flags().GetFloat64("noise")
	syn.Seed, _ = cmd.Flags().GetUint64("seed")
	rows, err := syn.Generate()
	if err != nil {
		return
	}
	err = inp.WriteMatData(args[0], rows)
	if err != nil {
		return
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		io.Pf("> %d samples written to %s\n", len(rows), args[0])
	}
	return
}
