// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"gonum.org/v1/plot/plotter"

	"github.com/bmvote/bmperf/benchrec"
)

// TheoryScale is the number of nanoseconds per element of the
// theoretical linear cost curve.
const TheoryScale = 100

// Theory holds the data of the theoretical validation chart.
//
// Both curves have one point per distinct array size of the RANDOM
// records, in ascending order of size, so that point i of Theoretical
// and point i of Actual describe the same size.
type Theory struct {
	// Theoretical is n*TheoryScale at each size n.
	Theoretical plotter.XYs

	// Actual is the mean Time(ns) at each size n.
	Actual plotter.XYs
}

// TheoryCurves computes the theoretical and measured cost of the
// RANDOM records of ds. If there are none, both curves are empty.
func TheoryCurves(ds *benchrec.Dataset) *Theory {
	th := new(Theory)
	random := ds.Filter(func(r *benchrec.Record) bool { return r.InputType == benchrec.Random })
	if random.Len() == 0 {
		return th
	}
	for _, c := range meanCurves(random.Table(), benchrec.ColInputType, benchrec.ColTime) {
		th.Actual = c.xys
	}
	th.Theoretical = make(plotter.XYs, len(th.Actual))
	for i, pt := range th.Actual {
		th.Theoretical[i].X = pt.X
		th.Theoretical[i].Y = pt.X * TheoryScale
	}
	return th
}
