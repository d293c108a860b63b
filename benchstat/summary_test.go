// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/stat"

	"github.com/bmvote/bmperf/benchrec"
)

const sample = `ArraySize,InputType,HasMajority,Time(ns),Comparisons,ArrayAccess
1000,RANDOM,true,9000,999,1000
100,RANDOM,true,1000,99,100
100,SORTED,false,800,99,100
1000,WORST_CASE,false,11000,999,1000
`

func read(t *testing.T, data string) *benchrec.Dataset {
	t.Helper()
	ds, err := benchrec.Read(strings.NewReader(data), "test.csv")
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

var approx = cmpopts.EquateApprox(1e-12, 1e-9)

func TestSummarize(t *testing.T) {
	s := Summarize(read(t, sample))
	want := &Summary{
		Count: 4,
		Sizes: []int{100, 1000},
		BySize: []SizeStats{
			{ArraySize: 100, N: 2, Mean: 900, StdDev: math.Sqrt(20000), Min: 800, Max: 1000},
			{ArraySize: 1000, N: 2, Mean: 10000, StdDev: math.Sqrt(2e6), Min: 9000, Max: 11000},
		},
		ByType: []TypeStats{
			{InputType: "RANDOM", N: 2, Mean: 5000, StdDev: math.Sqrt(32e6)},
			{InputType: "SORTED", N: 1, Mean: 800, StdDev: 0},
			{InputType: "WORST_CASE", N: 1, Mean: 11000, StdDev: 0},
		},
		Correlation: 8190000 / math.Sqrt(810000*84830000),
		Efficiency: []SizeEfficiency{
			{ArraySize: 100, MeanTimePerElement: 9},
			{ArraySize: 1000, MeanTimePerElement: 10},
		},
	}
	if diff := cmp.Diff(want, s, approx); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

// synthetic returns a dataset with several records for every
// combination of size and input type, with pseudo-random times.
func synthetic(seed int64) *benchrec.Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := &benchrec.Dataset{Path: "synthetic"}
	for _, n := range []int{10000, 100, 1000} {
		for _, typ := range []string{benchrec.WorstCase, benchrec.Random, benchrec.Sorted} {
			for rep := 0; rep < 5; rep++ {
				ds.Records = append(ds.Records, benchrec.Record{
					ArraySize:   n,
					InputType:   typ,
					HasMajority: rep%2 == 0,
					TimeNs:      float64(n) * (5 + 10*rng.Float64()),
					Comparisons: int64(n - 1),
					ArrayAccess: int64(n),
				})
			}
		}
	}
	return ds
}

func TestSummarizeMatchesDirect(t *testing.T) {
	ds := synthetic(1)
	s := Summarize(ds)

	if s.Count != len(ds.Records) {
		t.Errorf("Count = %d, want %d", s.Count, len(ds.Records))
	}

	bySize := make(map[int][]float64)
	tpe := make(map[int][]float64)
	for _, r := range ds.Records {
		bySize[r.ArraySize] = append(bySize[r.ArraySize], r.TimeNs)
		tpe[r.ArraySize] = append(tpe[r.ArraySize], r.TimeNs/float64(r.ArraySize))
	}
	var want []SizeStats
	var wantEff []SizeEfficiency
	for _, n := range []int{100, 1000, 10000} {
		xs := bySize[n]
		lo, hi := xs[0], xs[0]
		for _, x := range xs {
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
		mean, sd := stat.MeanStdDev(xs, nil)
		want = append(want, SizeStats{ArraySize: n, N: len(xs), Mean: mean, StdDev: sd, Min: lo, Max: hi})
		wantEff = append(wantEff, SizeEfficiency{ArraySize: n, MeanTimePerElement: stat.Mean(tpe[n], nil)})
	}
	if diff := cmp.Diff(want, s.BySize, approx); diff != "" {
		t.Errorf("BySize mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantEff, s.Efficiency, approx); diff != "" {
		t.Errorf("Efficiency mismatch (-want +got):\n%s", diff)
	}

	var types []string
	for _, st := range s.ByType {
		types = append(types, st.InputType)
	}
	if !sort.StringsAreSorted(types) || len(types) != 3 {
		t.Errorf("ByType input types = %v, want the 3 types in order", types)
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	ds := synthetic(2)
	want := Summarize(ds)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5; i++ {
		shuffled := &benchrec.Dataset{Path: ds.Path, Records: append([]benchrec.Record(nil), ds.Records...)}
		rng.Shuffle(len(shuffled.Records), func(i, j int) {
			shuffled.Records[i], shuffled.Records[j] = shuffled.Records[j], shuffled.Records[i]
		})
		if diff := cmp.Diff(want, Summarize(shuffled), approx); diff != "" {
			t.Fatalf("Summarize depends on record order (-want +got):\n%s", diff)
		}
	}
}

func TestCorrelationSymmetric(t *testing.T) {
	ds := synthetic(4)
	var xs, ys []float64
	for _, r := range ds.Records {
		xs = append(xs, float64(r.ArraySize))
		ys = append(ys, r.TimeNs)
	}
	got := Correlation(ds)
	if rev := stat.Correlation(ys, xs, nil); math.Abs(got-rev) > 1e-12 {
		t.Errorf("corr(size, time) = %v, corr(time, size) = %v", got, rev)
	}
	if got <= 0.5 || got > 1 {
		t.Errorf("corr(size, time) = %v, want strongly positive", got)
	}
}

func TestSummarizeSingleRecord(t *testing.T) {
	s := Summarize(read(t, "ArraySize,InputType,HasMajority,Time(ns),Comparisons,ArrayAccess\n100,RANDOM,true,1000,99,100\n"))
	if s.BySize[0].StdDev != 0 || s.ByType[0].StdDev != 0 {
		t.Errorf("single record StdDev = %v/%v, want 0", s.BySize[0].StdDev, s.ByType[0].StdDev)
	}
	if !math.IsNaN(s.Correlation) {
		t.Errorf("single record Correlation = %v, want NaN", s.Correlation)
	}
}

func TestSummarizeZeroSize(t *testing.T) {
	s := Summarize(read(t, `ArraySize,InputType,HasMajority,Time(ns),Comparisons,ArrayAccess
0,RANDOM,false,10,0,0
10,RANDOM,true,100,9,10
`))
	if got := s.Efficiency[0].MeanTimePerElement; !math.IsInf(got, 1) {
		t.Errorf("TimePerElement at size 0 = %v, want +Inf", got)
	}
	if got := s.Efficiency[1].MeanTimePerElement; got != 10 {
		t.Errorf("TimePerElement at size 10 = %v, want 10", got)
	}
	if len(s.Warnings) != 1 || !strings.Contains(s.Warnings[0].Error(), "ArraySize 0") {
		t.Errorf("Warnings = %v, want one about ArraySize 0", s.Warnings)
	}
}
