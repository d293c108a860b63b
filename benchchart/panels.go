// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders charts of majority-vote benchmark
// results.
//
// Building the data of a chart is separate from drawing it:
// PerformancePanels and TheoryCurves compute what will be plotted,
// and WritePerformance and WriteTheory draw it to a PNG file.
package benchchart

import (
	"fmt"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot/plotter"

	"github.com/bmvote/bmperf/benchrec"
)

// ReferenceSize is the array size whose time distribution is shown in
// the Distribution panel.
const ReferenceSize = 10000

// A Series is one labeled curve of mean values by array size, in
// ascending order of array size.
type Series struct {
	Label string
	XYs   plotter.XYs
}

// A BoxGroup is the set of raw values summarized by one box of a box
// plot.
type BoxGroup struct {
	Label  string
	Values plotter.Values
}

// Panels holds the data of the four panels of the performance chart.
type Panels struct {
	// TimeVsSize has one series of mean Time(ns) per input type,
	// in order of first appearance. It is drawn on log-log axes.
	TimeVsSize []Series

	// Comparisons has one series of mean Comparisons for each of
	// the RANDOM, SORTED and WORST_CASE input types that occur.
	Comparisons []Series

	// Access has one series of mean ArrayAccess for inputs with
	// and without a majority element.
	Access []Series

	// Distribution has one group of Time(ns) values per input
	// type at ReferenceSize. It is empty if no record has that
	// size.
	Distribution []BoxGroup
}

// comparisonTypes are the input types of the Comparisons panel, in
// legend order.
var comparisonTypes = []string{benchrec.Random, benchrec.Sorted, benchrec.WorstCase}

// PerformancePanels computes the data of the performance chart of ds.
func PerformancePanels(ds *benchrec.Dataset) *Panels {
	p := new(Panels)
	tab := ds.Table()

	for _, c := range meanCurves(tab, benchrec.ColInputType, benchrec.ColTime) {
		p.TimeVsSize = append(p.TimeVsSize, Series{c.key.(string), c.xys})
	}

	byType := make(map[string]plotter.XYs)
	for _, c := range meanCurves(tab, benchrec.ColInputType, benchrec.ColComparisons) {
		byType[c.key.(string)] = c.xys
	}
	for _, typ := range comparisonTypes {
		xys := byType[typ]
		if len(xys) == 0 {
			continue
		}
		p.Comparisons = append(p.Comparisons, Series{typ, xys})
	}

	byMajority := make(map[bool]plotter.XYs)
	for _, c := range meanCurves(tab, benchrec.ColHasMajority, benchrec.ColArrayAccess) {
		byMajority[c.key.(bool)] = c.xys
	}
	for _, m := range []bool{true, false} {
		xys := byMajority[m]
		if len(xys) == 0 {
			continue
		}
		p.Access = append(p.Access, Series{fmt.Sprintf("Has Majority: %t", m), xys})
	}

	ref := ds.Filter(func(r *benchrec.Record) bool { return r.ArraySize == ReferenceSize })
	if ref.Len() == 0 {
		return p
	}
	g := table.GroupBy(ref.Table(), benchrec.ColInputType)
	for _, gid := range g.Tables() {
		ns := g.Table(gid).MustColumn(benchrec.ColTime).([]float64)
		p.Distribution = append(p.Distribution, BoxGroup{
			Label:  gid.Label().(string),
			Values: append(plotter.Values(nil), ns...),
		})
	}
	return p
}

type curve struct {
	key interface{}
	xys plotter.XYs
}

// meanCurves groups t by column by and returns, for each group in
// order of first appearance, the mean of column y at each array size.
func meanCurves(t *table.Table, by, y string) []curve {
	const size = benchrec.ColArraySize
	g := ggstat.Agg(size)(ggstat.AggMean(y)).F(table.GroupBy(t, by))
	g = table.SortBy(g, size)

	var out []curve
	for _, gid := range g.Tables() {
		sub := g.Table(gid)
		xs := sub.MustColumn(size).([]int)
		ys := sub.MustColumn("mean " + y).([]float64)
		xys := make(plotter.XYs, len(xs))
		for i := range xs {
			xys[i].X, xys[i].Y = float64(xs[i]), ys[i]
		}
		out = append(out, curve{gid.Label(), xys})
	}
	return out
}
