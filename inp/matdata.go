// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tianyikillua/data-driven-truss/mdl/dataset"
	"github.com/xuri/excelize/v2"
)

// ReadMatData reads measured (strain, stress) pairs from file. Formats depend on the extension:
//  .xlsx            -- first sheet of an Excel workbook; one sample per row
//  .json            -- array of [strain, stress] arrays
//  other (.dat ...) -- text table; columns separated by spaces, tabs, commas or semicolons
//  In tables and workbooks, a first row that is not numeric is taken as a header. Lines
//  starting with '#' are ignored. The arity of rows is not checked here; see dataset.Set.Load
func ReadMatData(fnpath string) (rows [][]float64, err error) {
	switch strings.ToLower(filepath.Ext(fnpath)) {
	case ".xlsx", ".xlsm":
		rows, err = readMatXlsx(fnpath)
	case ".json":
		rows, err = readMatJSON(fnpath)
	default:
		rows, err = readMatTable(fnpath)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &dataset.InvalidDataError{Row: -1, Reason: io.Sf("file %q has no samples", fnpath)}
	}
	return
}

// WriteMatData writes (strain, stress) pairs as a text table with header
func WriteMatData(fnpath string, rows [][]float64) (err error) {
	var sb strings.Builder
	sb.WriteString(io.Sf("%23s %23s\n", "eps", "sig"))
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(io.Sf("%23.15e", v))
		}
		sb.WriteString("\n")
	}
	if dir := filepath.Dir(fnpath); dir != "" {
		err = os.MkdirAll(dir, 0777)
		if err != nil {
			return chk.Err("cannot create directory %q:\n%v", dir, err)
		}
	}
	return os.WriteFile(fnpath, []byte(sb.String()), 0644)
}

// readMatTable reads a text table
func readMatTable(fnpath string) (rows [][]float64, err error) {
	f, err := os.Open(fnpath)
	if err != nil {
		return nil, chk.Err("cannot open material data file %q:\n%v", fnpath, err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ',' || r == ';'
		})
		row, perr := parseRow(fields)
		if perr != nil {
			if first {
				first = false
				continue // header
			}
			return nil, &dataset.InvalidDataError{Row: len(rows), Reason: perr.Error()}
		}
		first = false
		rows = append(rows, row)
	}
	if err = scanner.Err(); err != nil {
		return nil, chk.Err("cannot read material data file %q:\n%v", fnpath, err)
	}
	return
}

// readMatXlsx reads the first sheet of an Excel workbook
func readMatXlsx(fnpath string) (rows [][]float64, err error) {
	f, err := excelize.OpenFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot open workbook %q:\n%v", fnpath, err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, chk.Err("cannot read sheet %q of workbook %q:\n%v", sheet, fnpath, err)
	}
	for i, rec := range cells {
		fields := make([]string, 0, len(rec))
		for _, c := range rec {
			if c = strings.TrimSpace(c); c != "" {
				fields = append(fields, c)
			}
		}
		if len(fields) == 0 {
			continue
		}
		row, perr := parseRow(fields)
		if perr != nil {
			if i == 0 {
				continue // header
			}
			return nil, &dataset.InvalidDataError{Row: len(rows), Reason: io.Sf("sheet %q, row %d: %v", sheet, i+1, perr)}
		}
		rows = append(rows, row)
	}
	return
}

// readMatJSON reads an array of [strain, stress] arrays
func readMatJSON(fnpath string) (rows [][]float64, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read material data file %q:\n%v", fnpath, err)
	}
	err = json.Unmarshal(b, &rows)
	if err != nil {
		return nil, &dataset.InvalidDataError{Row: -1, Reason: io.Sf("cannot unmarshal %q: %v", fnpath, err)}
	}
	return
}

// parseRow converts fields to numbers
func parseRow(fields []string) (row []float64, err error) {
	row = make([]float64, len(fields))
	for j, s := range fields {
		row[j], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, chk.Err("field %d (%q) is not a number", j, s)
		}
	}
	return
}
