// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"encoding/csv"
	"io"
	"strconv"
)

// FormatCSV writes s to w as a sequence of CSV blocks, one per
// section of the summary, separated by empty lines.
//
// Numbers are written at full precision.
func FormatCSV(w io.Writer, s *Summary) error {
	cw := csv.NewWriter(w)
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	cw.Write([]string{"Total benchmark runs", strconv.Itoa(s.Count)})
	cw.Write([]string{"Correlation coefficient", f(s.Correlation)})

	blank(cw)
	cw.Write([]string{"ArraySize", "N", "mean", "std", "min", "max"})
	for _, st := range s.BySize {
		cw.Write([]string{strconv.Itoa(st.ArraySize), strconv.Itoa(st.N), f(st.Mean), f(st.StdDev), f(st.Min), f(st.Max)})
	}

	blank(cw)
	cw.Write([]string{"InputType", "N", "mean", "std"})
	for _, st := range s.ByType {
		cw.Write([]string{st.InputType, strconv.Itoa(st.N), f(st.Mean), f(st.StdDev)})
	}

	blank(cw)
	cw.Write([]string{"ArraySize", "TimePerElement"})
	for _, e := range s.Efficiency {
		cw.Write([]string{strconv.Itoa(e.ArraySize), f(e.MeanTimePerElement)})
	}

	cw.Flush()
	return cw.Error()
}

// blank ends the current CSV block with an empty line.
func blank(cw *csv.Writer) {
	cw.Write([]string{""})
}
