// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"math"
)

// A Scaler is a function that scales and formats a duration in
// nanoseconds. All durations within a given table column are formatted
// using the same scaler, so that the units are consistent down the
// column.
type Scaler func(ns float64) string

// timeUnits lists the units a Scaler may pick, largest first.
var timeUnits = []struct {
	suffix string
	ns     float64
}{
	{"s", 1e9},
	{"ms", 1e6},
	{"µs", 1e3},
	{"ns", 1},
}

// NewTimeScaler returns a Scaler appropriate for formatting durations
// of the same magnitude as ns, which is usually the largest of them.
// It keeps three significant digits at the magnitude of ns.
func NewTimeScaler(ns float64) Scaler {
	unit := timeUnits[len(timeUnits)-1]
	for _, u := range timeUnits {
		if ns >= 0.995*u.ns {
			unit = u
			break
		}
	}
	var prec int
	switch x := ns / unit.ns; {
	case x >= 99.5:
		prec = 0
	case x >= 9.95:
		prec = 1
	default:
		prec = 2
	}
	return func(ns float64) string {
		return fmt.Sprintf("%.*f%s", prec, ns/unit.ns, unit.suffix)
	}
}

// columnScaler returns a Scaler for the column of values in xs.
func columnScaler(xs []float64) Scaler {
	var hi float64
	for _, x := range xs {
		if x > hi && !math.IsInf(x, 0) {
			hi = x
		}
	}
	return NewTimeScaler(hi)
}
