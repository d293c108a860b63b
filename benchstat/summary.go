// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat computes descriptive statistics over majority-vote
// benchmark records.
//
// Summarize groups the records by array size and by input type and
// reports the spread of the measured time within each group, the
// correlation between array size and time, and the mean time spent per
// array element. All statistics are independent of record order.
package benchstat

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/bmvote/bmperf/benchrec"
)

// A Summary is the statistical summary of a Dataset.
type Summary struct {
	// Count is the number of records.
	Count int

	// Sizes are the distinct array sizes, ascending.
	Sizes []int

	// BySize summarizes Time(ns) per array size, ascending by
	// size.
	BySize []SizeStats

	// ByType summarizes Time(ns) per input type, ordered by
	// input type name.
	ByType []TypeStats

	// Correlation is the Pearson correlation coefficient of
	// ArraySize and Time(ns) over all records. It is NaN if
	// either is constant.
	Correlation float64

	// Efficiency is the mean TimePerElement per array size,
	// ascending by size.
	Efficiency []SizeEfficiency

	// Warnings lists conditions in the input that make some of
	// the statistics above meaningless. They don't prevent the
	// summary, but should be shown to the user with it.
	Warnings []error
}

// SizeStats summarizes the measured time of the records of one array
// size.
type SizeStats struct {
	ArraySize int
	N         int

	// Mean, StdDev, Min and Max are over Time(ns). StdDev is the
	// sample standard deviation; it is 0 for a single record.
	Mean, StdDev, Min, Max float64
}

// TypeStats summarizes the measured time of the records of one input
// type.
type TypeStats struct {
	InputType    string
	N            int
	Mean, StdDev float64
}

// SizeEfficiency is the mean time per element at one array size.
type SizeEfficiency struct {
	ArraySize          int
	MeanTimePerElement float64
}

// Column names produced by the aggregations below.
const (
	colCount = "count"
)

func colMean(col string) string   { return "mean " + col }
func colStdDev(col string) string { return "stddev " + col }
func colMin(col string) string    { return "min " + col }
func colMax(col string) string    { return "max " + col }

// Summarize computes the Summary of ds. ds must not be empty.
func Summarize(ds *benchrec.Dataset) *Summary {
	const (
		size = benchrec.ColArraySize
		typ  = benchrec.ColInputType
		ns   = benchrec.ColTime
		tpe  = benchrec.ColTimePerElement
	)

	s := &Summary{Count: ds.Len(), Sizes: ds.Sizes()}
	tab := benchrec.AddTimePerElement(ds.Table())

	// Per array size.
	bySize := aggregate(tab, size,
		ggstat.AggCount(colCount),
		ggstat.AggMean(ns, tpe),
		aggStdDev(ns),
		ggstat.AggMin(ns),
		ggstat.AggMax(ns),
	)
	var (
		sizes  = bySize.MustColumn(size).([]int)
		counts = bySize.MustColumn(colCount).([]int)
		means  = bySize.MustColumn(colMean(ns)).([]float64)
		sds    = bySize.MustColumn(colStdDev(ns)).([]float64)
		mins   = bySize.MustColumn(colMin(ns)).([]float64)
		maxs   = bySize.MustColumn(colMax(ns)).([]float64)
		tpes   = bySize.MustColumn(colMean(tpe)).([]float64)
	)
	for i, n := range sizes {
		s.BySize = append(s.BySize, SizeStats{
			ArraySize: n,
			N:         counts[i],
			Mean:      means[i],
			StdDev:    sds[i],
			Min:       mins[i],
			Max:       maxs[i],
		})
		s.Efficiency = append(s.Efficiency, SizeEfficiency{n, tpes[i]})
		if n == 0 {
			s.Warnings = append(s.Warnings, fmt.Errorf("%d record(s) with ArraySize 0; their TimePerElement is undefined", counts[i]))
		}
	}

	// Per input type.
	byType := aggregate(tab, typ,
		ggstat.AggCount(colCount),
		ggstat.AggMean(ns),
		aggStdDev(ns),
	)
	types := byType.MustColumn(typ).([]string)
	counts = byType.MustColumn(colCount).([]int)
	means = byType.MustColumn(colMean(ns)).([]float64)
	sds = byType.MustColumn(colStdDev(ns)).([]float64)
	for i, t := range types {
		s.ByType = append(s.ByType, TypeStats{
			InputType: t,
			N:         counts[i],
			Mean:      means[i],
			StdDev:    sds[i],
		})
	}

	s.Correlation = Correlation(ds)
	return s
}

// aggregate groups t by column x, applies aggs to each group and
// returns the resulting table with one row per distinct x, sorted by
// x.
func aggregate(t table.Grouping, x string, aggs ...ggstat.Aggregator) *table.Table {
	g := ggstat.Agg(x)(aggs...).F(t)
	return table.Flatten(table.SortBy(g, x))
}

// aggStdDev returns an aggregate function that computes the sample
// standard deviation of each of cols. The resulting columns will be
// named "stddev <col>" and have type []float64.
func aggStdDev(cols ...string) ggstat.Aggregator {
	return func(input table.Grouping, b *table.Builder) {
		for _, col := range cols {
			sds := make([]float64, 0, len(input.Tables()))
			var xs []float64
			for _, gid := range input.Tables() {
				slice.Convert(&xs, input.Table(gid).MustColumn(col))
				if len(xs) < 2 {
					sds = append(sds, 0)
					continue
				}
				sds = append(sds, stats.StdDev(xs))
			}
			b.Add(colStdDev(col), sds)
		}
	}
}

// Correlation returns the Pearson correlation coefficient between
// ArraySize and Time(ns) over the records of ds.
func Correlation(ds *benchrec.Dataset) float64 {
	xs := make([]float64, ds.Len())
	ys := make([]float64, ds.Len())
	for i, r := range ds.Records {
		xs[i] = float64(r.ArraySize)
		ys[i] = r.TimeNs
	}
	return stat.Correlation(xs, ys, nil)
}
