// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bmvote/bmperf/internal/texttab"
)

// FormatText writes the console rendering of s to w.
//
// Times are in nanoseconds rounded to two decimals. The correlation
// coefficient is rounded to four.
func FormatText(w io.Writer, s *Summary) error {
	ew := &errWriter{w: w}
	ew.printf("=== STATISTICAL SUMMARY ===\n")
	ew.printf("Total benchmark runs: %d\n", s.Count)
	ew.printf("Array sizes tested: %v\n", s.Sizes)

	ew.printf("\nAverage Time by Array Size:\n")
	var tab texttab.Table
	tab.Row().Cell("ArraySize").Cell("N", texttab.Right).
		Cell("mean", texttab.Right).Cell("std", texttab.Right).
		Cell("min", texttab.Right).Cell("max", texttab.Right)
	for _, st := range s.BySize {
		tab.Row().Cell(strconv.Itoa(st.ArraySize)).
			Cell(strconv.Itoa(st.N), texttab.Right).
			Cell(fmt2(st.Mean), texttab.Right).
			Cell(fmt2(st.StdDev), texttab.Right).
			Cell(fmt2(st.Min), texttab.Right).
			Cell(fmt2(st.Max), texttab.Right)
	}
	ew.table(&tab)

	ew.printf("\nAverage Time by Input Distribution:\n")
	tab = texttab.Table{}
	tab.Row().Cell("InputType").Cell("N", texttab.Right).
		Cell("mean", texttab.Right).Cell("std", texttab.Right)
	for _, st := range s.ByType {
		tab.Row().Cell(st.InputType).
			Cell(strconv.Itoa(st.N), texttab.Right).
			Cell(fmt2(st.Mean), texttab.Right).
			Cell(fmt2(st.StdDev), texttab.Right)
	}
	ew.table(&tab)

	ew.printf("\nComplexity Analysis (Time vs Size correlation):\n")
	ew.printf("Correlation coefficient: %.4f\n", s.Correlation)

	ew.printf("\nEfficiency Metrics:\n")
	ew.printf("Average time per element (ns):\n")
	tab = texttab.Table{}
	tab.Row().Cell("ArraySize").Cell("TimePerElement", texttab.Right)
	for _, e := range s.Efficiency {
		tab.Row().Cell(strconv.Itoa(e.ArraySize)).
			Cell(fmt2(e.MeanTimePerElement), texttab.Right)
	}
	ew.table(&tab)

	if len(s.Warnings) > 0 {
		ew.printf("\n")
		for _, warn := range s.Warnings {
			ew.printf("warning: %v\n", warn)
		}
	}
	return ew.err
}

func fmt2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// errWriter remembers the first write error and turns later writes
// into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) table(t *texttab.Table) {
	if ew.err != nil {
		return
	}
	ew.err = t.Format(ew.w)
}
