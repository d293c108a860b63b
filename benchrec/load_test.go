// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `ArraySize,InputType,HasMajority,Time(ns),Comparisons,ArrayAccess
1000,RANDOM,true,9000,999,1000
100,RANDOM,true,1000,99,100
100,SORTED,false,800,99,100
1000,WORST_CASE,false,11000,999,1000
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_results.csv")
	if err := os.WriteFile(path, []byte(sample), 0o666); err != nil {
		t.Fatal(err)
	}
	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Len() != 4 {
		t.Errorf("Len() = %d, want 4", ds.Len())
	}
	if ds.Path != path {
		t.Errorf("Path = %q, want %q", ds.Path, path)
	}
	if diff := cmp.Diff([]int{1000, 100}, ds.UniqueSizes()); diff != "" {
		t.Errorf("UniqueSizes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{100, 1000}, ds.Sizes()); diff != "" {
		t.Errorf("Sizes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{Random, Sorted, WorstCase}, ds.InputTypes()); diff != "" {
		t.Errorf("InputTypes mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_results.csv")
	ds, err := Load(path)
	if ds != nil {
		t.Errorf("want nil Dataset, got %v", ds)
	}
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("want ErrMissingInput, got %v", err)
	}
	var me *MissingInputError
	if !errors.As(err, &me) || me.Path != path {
		t.Fatalf("want *MissingInputError for %s, got %#v", path, err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name %s", err, path)
	}
}

func TestReadNoRecords(t *testing.T) {
	_, err := Read(strings.NewReader(strings.Join(Header, ",")+"\n"), "hdr.csv")
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("want ErrNoRecords, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	ds, err := Read(strings.NewReader(sample), "x.csv")
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := ds.Describe(&buf); err != nil {
		t.Fatal(err)
	}
	want := `Data loaded successfully:
Total records: 4
Array sizes: [1000 100]
Distributions: [RANDOM SORTED WORST_CASE]
`
	if got := buf.String(); got != want {
		t.Errorf("want:\n%sgot:\n%s", want, got)
	}
}

func TestFilter(t *testing.T) {
	ds, err := Read(strings.NewReader(sample), "x.csv")
	if err != nil {
		t.Fatal(err)
	}
	random := ds.Filter(func(r *Record) bool { return r.InputType == Random })
	if random.Len() != 2 {
		t.Fatalf("got %d RANDOM records, want 2", random.Len())
	}
	random.Records[0].TimeNs = -1
	if ds.Records[0].TimeNs == -1 {
		t.Error("Filter result shares storage with its source")
	}
}

func TestTimePerElement(t *testing.T) {
	for _, test := range []struct {
		size int
		ns   float64
		want float64
	}{
		{100, 1500, 15},
		{3, 1, 1.0 / 3},
		{1000000, 0, 0},
		{0, 10, math.Inf(1)},
	} {
		r := Record{ArraySize: test.size, TimeNs: test.ns}
		if got := r.TimePerElement(); got != test.want {
			t.Errorf("TimePerElement(%v ns / %d) = %v, want %v", test.ns, test.size, got, test.want)
		}
	}

	// 0/0 has no value.
	r := Record{ArraySize: 0, TimeNs: 0}
	if got := r.TimePerElement(); !math.IsNaN(got) {
		t.Errorf("TimePerElement(0/0) = %v, want NaN", got)
	}
}
