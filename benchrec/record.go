// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrec reads and writes the CSV results produced by the
// Boyer-Moore majority-vote benchmark harness.
//
// Each row of the file is one benchmark run. The file must begin with
// a header naming at least the columns in Header; column order is
// free and unknown columns are ignored.
//
// To read a file, either call Load, or construct a Reader with
// NewReader and iterate with Scan. Unlike many CSV consumers, Reader
// validates every cell as it is read: a malformed value stops the scan
// with a *SyntaxError that names the offending line and column.
package benchrec

import "fmt"

// Input types written by the benchmark harness. The set is open; these
// are the ones the report treats specially.
const (
	Random    = "RANDOM"
	Sorted    = "SORTED"
	WorstCase = "WORST_CASE"
)

// Column names. They must match the header exactly, units included.
const (
	ColArraySize      = "ArraySize"
	ColInputType      = "InputType"
	ColHasMajority    = "HasMajority"
	ColTime           = "Time(ns)"
	ColComparisons    = "Comparisons"
	ColArrayAccess    = "ArrayAccess"
	ColTimePerElement = "TimePerElement"
)

// Header is the list of required columns, in canonical order.
var Header = []string{
	ColArraySize,
	ColInputType,
	ColHasMajority,
	ColTime,
	ColComparisons,
	ColArrayAccess,
}

// A Record is a single benchmark run.
type Record struct {
	// ArraySize is the length of the input array.
	ArraySize int

	// InputType describes how the input was generated, for
	// example Random or WorstCase.
	InputType string

	// HasMajority reports whether the input has an element that
	// occurs more than ArraySize/2 times.
	HasMajority bool

	// TimeNs is the measured duration in nanoseconds.
	TimeNs float64

	// Comparisons and ArrayAccess count element comparisons and
	// array reads/writes performed by the run.
	Comparisons int64
	ArrayAccess int64
}

// TimePerElement returns TimeNs / ArraySize.
//
// There is no guard for ArraySize == 0: the result is +Inf, or NaN if
// TimeNs is also 0, following IEEE 754 division.
func (r *Record) TimePerElement() float64 {
	return r.TimeNs / float64(r.ArraySize)
}

func (r *Record) String() string {
	return fmt.Sprintf("%s/n=%d/majority=%t %v ns %d cmp %d acc",
		r.InputType, r.ArraySize, r.HasMajority, r.TimeNs, r.Comparisons, r.ArrayAccess)
}
