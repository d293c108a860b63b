// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseAll(t *testing.T, data string) ([]Record, error) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var out []Record
	for r.Scan() {
		out = append(out, *r.Record())
	}
	return out, r.Err()
}

func TestReader(t *testing.T) {
	const data = `ArraySize,InputType,HasMajority,Time(ns),Comparisons,ArrayAccess
100,RANDOM,true,1500,99,100
1000,SORTED,False,12000.5,999,1000

10000,WORST_CASE,FALSE,130000,9999,10000
`
	got, err := parseAll(t, data)
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{
		{100, Random, true, 1500, 99, 100},
		{1000, Sorted, false, 12000.5, 999, 1000},
		{10000, WorstCase, false, 130000, 9999, 10000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderColumnOrder(t *testing.T) {
	// Columns may come in any order, extra columns are ignored,
	// and a byte order mark on the header is tolerated.
	const data = "\ufeffAlgorithm,Time(ns), ArrayAccess,Comparisons,HasMajority,InputType,ArraySize\n" +
		"BoyerMoore,250,20,19,1,RANDOM,10\n"
	got, err := parseAll(t, data)
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{{10, Random, true, 250, 19, 20}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderErrors(t *testing.T) {
	const hdr = "ArraySize,InputType,HasMajority,Time(ns),Comparisons,ArrayAccess\n"
	for _, test := range []struct {
		name string
		data string
		line int
		msg  string
	}{
		{"empty", "", 1, "missing header"},
		{"missing column", "ArraySize,InputType,HasMajority,Time,Comparisons\n1,RANDOM,true,1,1,1\n",
			1, "missing required column(s) Time(ns), ArrayAccess"},
		{"bad size", hdr + "1,RANDOM,true,1,1,1\nx,RANDOM,true,1,1,1\n",
			3, `column ArraySize: invalid integer "x"`},
		{"negative size", hdr + "-5,RANDOM,true,1,1,1\n",
			2, `column ArraySize: negative size "-5"`},
		{"bad bool", hdr + "1,RANDOM,maybe,1,1,1\n",
			2, `column HasMajority: invalid boolean "maybe"`},
		{"negative time", hdr + "1,RANDOM,true,-1,1,1\n",
			2, `column Time(ns): negative duration "-1"`},
		{"nan time", hdr + "1,RANDOM,true,NaN,1,1\n",
			2, `column Time(ns): invalid number "NaN"`},
		{"fractional count", hdr + "1,RANDOM,true,1,1.5,1\n",
			2, `column Comparisons: invalid integer "1.5"`},
		{"negative count", hdr + "1,RANDOM,true,1,1,-1\n",
			2, `column ArrayAccess: negative count "-1"`},
		{"empty type", hdr + "1,,true,1,1,1\n",
			2, `column InputType: empty input type ""`},
		{"short row", hdr + "1,RANDOM,true\n",
			2, "expected at least 4 fields, got 3"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseAll(t, test.data)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("want *SyntaxError, got %v", err)
			}
			want := &SyntaxError{"test", test.line, test.msg}
			if diff := cmp.Diff(want, se); diff != "" {
				t.Errorf("error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReaderStopsAtFirstError(t *testing.T) {
	const data = "ArraySize,InputType,HasMajority,Time(ns),Comparisons,ArrayAccess\n" +
		"1,RANDOM,true,1,1,1\n" +
		"bad,RANDOM,true,1,1,1\n" +
		"2,RANDOM,true,1,1,1\n"
	r := NewReader(strings.NewReader(data), "test")
	n := 0
	for r.Scan() {
		n++
	}
	if n != 1 {
		t.Errorf("scanned %d records before error, want 1", n)
	}
	if r.Err() == nil {
		t.Fatal("want error, got nil")
	}
	if r.Scan() {
		t.Error("Scan after error returned true")
	}
}
