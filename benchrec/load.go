// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
)

// ErrMissingInput matches any *MissingInputError via errors.Is.
var ErrMissingInput = errors.New("benchmark results not found")

// ErrNoRecords is returned by Load and Read for input that has a
// header but no data rows.
var ErrNoRecords = errors.New("no benchmark records")

// A MissingInputError reports that the benchmark results file does not
// exist. It is not a failure of the report as such: the benchmarks
// simply have not been run yet.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("Error: %s not found. Run benchmarks first.", e.Path)
}

func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// A Dataset is the immutable set of records loaded from one file.
type Dataset struct {
	// Path is the file the records were read from.
	Path string

	// Records are the benchmark runs in file order. Nothing in
	// this module depends on that order.
	Records []Record
}

// Load reads the benchmark results file at path.
//
// If the file does not exist, Load returns a *MissingInputError and a
// nil Dataset.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read reads all benchmark records from r. name is used in error
// messages.
func Read(r io.Reader, name string) (*Dataset, error) {
	ds := &Dataset{Path: name}
	rr := NewReader(r, name)
	for rr.Scan() {
		ds.Records = append(ds.Records, *rr.Record())
	}
	if err := rr.Err(); err != nil {
		return nil, err
	}
	if len(ds.Records) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoRecords)
	}
	return ds, nil
}

// Len returns the number of records in d.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Filter returns a Dataset containing the records of d for which keep
// returns true. The result shares no storage with d.
func (d *Dataset) Filter(keep func(r *Record) bool) *Dataset {
	out := &Dataset{Path: d.Path}
	for i := range d.Records {
		if keep(&d.Records[i]) {
			out.Records = append(out.Records, d.Records[i])
		}
	}
	return out
}

// UniqueSizes returns the distinct array sizes of d in order of first
// appearance.
func (d *Dataset) UniqueSizes() []int {
	seen := make(map[int]bool)
	var sizes []int
	for _, r := range d.Records {
		if !seen[r.ArraySize] {
			seen[r.ArraySize] = true
			sizes = append(sizes, r.ArraySize)
		}
	}
	return sizes
}

// Sizes returns the distinct array sizes of d in ascending order.
func (d *Dataset) Sizes() []int {
	sizes := d.UniqueSizes()
	sort.Ints(sizes)
	return sizes
}

// InputTypes returns the distinct input types of d in order of first
// appearance.
func (d *Dataset) InputTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, r := range d.Records {
		if !seen[r.InputType] {
			seen[r.InputType] = true
			types = append(types, r.InputType)
		}
	}
	return types
}

// Describe writes a short description of d to w: the record count and
// the distinct array sizes and input types.
func (d *Dataset) Describe(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Data loaded successfully:\nTotal records: %d\nArray sizes: %v\nDistributions: %v\n",
		d.Len(), d.UniqueSizes(), d.InputTypes())
	return err
}
