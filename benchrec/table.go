// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"github.com/aclements/go-gg/table"
)

// Table returns d as a go-gg table with one column per entry of Header.
//
// Measurement columns (Time(ns), Comparisons and ArrayAccess) are
// []float64 so that aggregates over them are not truncated; ArraySize
// is []int, InputType is []string and HasMajority is []bool.
func (d *Dataset) Table() *table.Table {
	n := len(d.Records)
	var (
		sizes    = make([]int, n)
		types    = make([]string, n)
		majority = make([]bool, n)
		times    = make([]float64, n)
		cmps     = make([]float64, n)
		access   = make([]float64, n)
	)
	for i, r := range d.Records {
		sizes[i] = r.ArraySize
		types[i] = r.InputType
		majority[i] = r.HasMajority
		times[i] = r.TimeNs
		cmps[i] = float64(r.Comparisons)
		access[i] = float64(r.ArrayAccess)
	}
	return new(table.Builder).
		Add(ColArraySize, sizes).
		Add(ColInputType, types).
		Add(ColHasMajority, majority).
		Add(ColTime, times).
		Add(ColComparisons, cmps).
		Add(ColArrayAccess, access).
		Done()
}

// AddTimePerElement appends the derived TimePerElement column,
// Time(ns) / ArraySize, to every table of g.
func AddTimePerElement(g table.Grouping) table.Grouping {
	return table.MapCols(g, func(ns []float64, size []int, out []float64) {
		for i := range out {
			out[i] = ns[i] / float64(size[i])
		}
	}, ColTime, ColArraySize)(ColTimePerElement)
}
