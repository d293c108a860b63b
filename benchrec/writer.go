// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"encoding/csv"
	"io"
	"strconv"
)

// A Writer writes benchmark records as CSV in the format read by
// Reader.
type Writer struct {
	cw      *csv.Writer
	derived bool
	first   bool
	row     []string
}

// NewWriter returns a writer that writes records to w. If derived is
// true, each row carries an extra TimePerElement column.
func NewWriter(w io.Writer, derived bool) *Writer {
	return &Writer{cw: csv.NewWriter(w), derived: derived, first: true}
}

// Write writes rec to w, preceded by the header if this is the first
// record. Output is buffered; call Flush when done.
func (w *Writer) Write(rec *Record) error {
	if w.first {
		hdr := append([]string(nil), Header...)
		if w.derived {
			hdr = append(hdr, ColTimePerElement)
		}
		if err := w.cw.Write(hdr); err != nil {
			return err
		}
		w.first = false
	}

	w.row = append(w.row[:0],
		strconv.Itoa(rec.ArraySize),
		rec.InputType,
		strconv.FormatBool(rec.HasMajority),
		formatFloat(rec.TimeNs),
		strconv.FormatInt(rec.Comparisons, 10),
		strconv.FormatInt(rec.ArrayAccess, 10),
	)
	if w.derived {
		w.row = append(w.row, formatFloat(rec.TimePerElement()))
	}
	return w.cw.Write(w.row)
}

// Flush writes any buffered data to the underlying io.Writer and
// reports any error that occurred during a previous Write or Flush.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
