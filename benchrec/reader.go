// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Reader reads benchmark records from CSV.
//
// Its API is modeled on bufio.Scanner. The Reader retains ownership
// of the Record returned by Record; a caller should copy anything it
// needs to retain.
type Reader struct {
	cr       *csv.Reader
	fileName string
	err      error

	// cols maps each entry of Header to its field index in the
	// input. It is nil until the header has been read.
	cols []int
	line int
	rec  Record
}

// A SyntaxError represents a malformed line of a benchmark results
// file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// Field indexes into Header.
const (
	colArraySize = iota
	colInputType
	colHasMajority
	colTime
	colComparisons
	colArrayAccess
	numCols
)

// NewReader constructs a reader of benchmark CSV from r. fileName is
// used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &Reader{cr: cr, fileName: fileName}
}

func (r *Reader) newSyntaxError(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, fmt.Sprintf(format, args...)}
}

// Scan advances the reader to the next record and reports whether a
// record was read. The caller should use the Record method to get the
// record. If Scan reaches EOF, finds a malformed line, or hits an I/O
// error, it returns false, in which case the caller should use the
// Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for {
		fields, err := r.cr.Read()
		if err == io.EOF {
			if r.cols == nil {
				r.line = 1
				r.err = r.newSyntaxError("missing header")
			}
			return false
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				r.err = &SyntaxError{r.fileName, pe.Line, pe.Err.Error()}
			} else {
				r.err = err
			}
			return false
		}
		r.line, _ = r.cr.FieldPos(0)

		if r.cols == nil {
			r.err = r.parseHeader(fields)
			if r.err != nil {
				return false
			}
			continue
		}
		if err := r.parseRecord(fields); err != nil {
			r.err = err
			return false
		}
		return true
	}
}

// Record returns the record that was just read by Scan. It is only
// valid until the next call to Scan.
func (r *Reader) Record() *Record {
	return &r.rec
}

// Err returns the first error encountered by Scan, or nil if Scan
// reached the end of the input cleanly.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) parseHeader(fields []string) error {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if i == 0 {
			// Spreadsheets like to prepend a byte order mark.
			f = strings.TrimPrefix(f, "\ufeff")
		}
		f = strings.TrimSpace(f)
		if _, ok := index[f]; !ok {
			index[f] = i
		}
	}

	var missing []string
	cols := make([]int, len(Header))
	for i, name := range Header {
		j, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[i] = j
	}
	if len(missing) > 0 {
		return r.newSyntaxError("missing required column(s) %s", strings.Join(missing, ", "))
	}
	r.cols = cols
	return nil
}

func (r *Reader) parseRecord(fields []string) error {
	field := func(col int) (string, error) {
		i := r.cols[col]
		if i >= len(fields) {
			return "", r.newSyntaxError("expected at least %d fields, got %d", i+1, len(fields))
		}
		return strings.TrimSpace(fields[i]), nil
	}
	bad := func(col int, val string, why string) error {
		return r.newSyntaxError("column %s: %s %q", Header[col], why, val)
	}

	var vals [numCols]string
	for col := range vals {
		v, err := field(col)
		if err != nil {
			return err
		}
		vals[col] = v
	}

	size, err := strconv.Atoi(vals[colArraySize])
	if err != nil {
		return bad(colArraySize, vals[colArraySize], "invalid integer")
	}
	if size < 0 {
		return bad(colArraySize, vals[colArraySize], "negative size")
	}

	if vals[colInputType] == "" {
		return bad(colInputType, vals[colInputType], "empty input type")
	}

	majority, err := strconv.ParseBool(vals[colHasMajority])
	if err != nil {
		return bad(colHasMajority, vals[colHasMajority], "invalid boolean")
	}

	ns, err := strconv.ParseFloat(vals[colTime], 64)
	if err != nil || math.IsNaN(ns) || math.IsInf(ns, 0) {
		return bad(colTime, vals[colTime], "invalid number")
	}
	if ns < 0 {
		return bad(colTime, vals[colTime], "negative duration")
	}

	counts := [2]int64{}
	for i, col := range []int{colComparisons, colArrayAccess} {
		n, err := strconv.ParseInt(vals[col], 10, 64)
		if err != nil {
			return bad(col, vals[col], "invalid integer")
		}
		if n < 0 {
			return bad(col, vals[col], "negative count")
		}
		counts[i] = n
	}

	r.rec = Record{
		ArraySize:   size,
		InputType:   vals[colInputType],
		HasMajority: majority,
		TimeNs:      ns,
		Comparisons: counts[0],
		ArrayAccess: counts[1],
	}
	return nil
}
