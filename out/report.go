// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of data-driven truss simulations
package out

import (
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/phpdave11/gofpdf"
	"github.com/tianyikillua/data-driven-truss/dd"
)

// table settings
var (
	RepFont   = "Helvetica" // font family
	RepRowH   = 5.0         // height of table rows [mm]
	RepColW   = 27.0        // width of table columns [mm]
	RepMaxRow = 200         // max number of rows in tables
)

// Report writes a PDF report of the summary to w
func Report(o *dd.Summary, w goio.Writer) (err error) {

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// header
	pdf.SetFont(RepFont, "B", 16)
	pdf.Cell(0, 10, "Data-driven truss solution")
	pdf.Ln(12)
	pdf.SetFont(RepFont, "", 10)
	for _, l := range [][2]string{
		{"run", o.RunId},
		{"key", o.Key},
		{"description", o.Desc},
		{"date", o.Date.Format("2006-01-02 15:04:05")},
		{"lines", io.Sf("%d", o.Nlines)},
		{"samples", io.Sf("%d", o.Ndata)},
		{"E num", io.Sf("%g", o.Enum)},
		{"iterations", io.Sf("%d (max %d)", o.Nit, o.NmaxIt+1)},
		{"status", status(o)},
		{"cpu time", io.Sf("%.3f s", o.CpuTime)},
	} {
		pdf.CellFormat(30, RepRowH+1, l[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, RepRowH+1, l[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// local states
	if len(o.Idx) > 0 {
		heading(pdf, "Local states")
		table(pdf, []string{"line", "sample", "eps", "sig", "eps mech", "sig mech", "distance"}, len(o.Idx), func(i int) []string {
			return []string{
				io.Sf("%d", i),
				io.Sf("%d", o.Idx[i]),
				io.Sf("%.6e", o.Eps[i]),
				io.Sf("%.6e", o.Sig[i]),
				io.Sf("%.6e", o.EpsMech[i]),
				io.Sf("%.6e", o.SigMech[i]),
				io.Sf("%.6e", o.Dist[i]),
			}
		})
		pdf.Ln(4)
	}

	// displacements
	if len(o.U) > 0 {
		heading(pdf, "Displacements")
		table(pdf, []string{"node", "ux", "uy"}, len(o.U)/2, func(i int) []string {
			return []string{io.Sf("%d", i), io.Sf("%.6e", o.U[2*i]), io.Sf("%.6e", o.U[2*i+1])}
		})
		pdf.Ln(4)
	}

	// trace
	heading(pdf, "Iterations")
	table(pdf, []string{"iteration", "objective"}, len(o.Trace), func(i int) []string {
		return []string{io.Sf("%d", i+1), io.Sf("%.10e", o.Trace[i])}
	})

	err = pdf.Output(w)
	if err != nil {
		return chk.Err("cannot generate PDF report:\n%v", err)
	}
	return
}

// SaveReport saves the PDF report to <dirout>/<key>-report.pdf
func SaveReport(o *dd.Summary, dirout, key string) (fnpath string, err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fnpath = filepath.Join(dirout, io.Sf("%s-report.pdf", key))
	f, err := os.Create(fnpath)
	if err != nil {
		return "", chk.Err("cannot create report file %q:\n%v", fnpath, err)
	}
	defer f.Close()
	err = Report(o, f)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func status(o *dd.Summary) string {
	if o.Converged {
		return "converged"
	}
	if o.Message != "" {
		return "failed: " + o.Message
	}
	return "failed"
}

func heading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(RepFont, "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

// table draws a table with header and nrows rows given by row(i)
func table(pdf *gofpdf.Fpdf, header []string, nrows int, row func(i int) []string) {
	pdf.SetFont(RepFont, "B", 9)
	for _, h := range header {
		pdf.CellFormat(RepColW, RepRowH+1, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(RepFont, "", 9)
	n := nrows
	if n > RepMaxRow {
		n = RepMaxRow
	}
	for i := 0; i < n; i++ {
		for _, c := range row(i) {
			pdf.CellFormat(RepColW, RepRowH, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if nrows > n {
		pdf.SetFont(RepFont, "I", 9)
		pdf.Cell(0, RepRowH, io.Sf("... %d more rows", nrows-n))
		pdf.Ln(-1)
	}
}
