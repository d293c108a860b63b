// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Row and Cell return the Table so callers can chain them to build up
// a row at once:
//
//	tab.Row().Cell("name").Cell("mean", Right)
type Table struct {
	rows [][]cell
	cols int

	// Sep separates adjacent columns. If empty, two spaces are used.
	Sep string
}

type cell struct {
	value string
	align align
}

// CellOption modifies a cell as it is added.
type CellOption func(c *cell)

var (
	Left   CellOption = func(c *cell) { c.align = alignLeft }
	Center CellOption = func(c *cell) { c.align = alignCenter }
	Right  CellOption = func(c *cell) { c.align = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	case alignCenter:
		l := n / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", n-l)
	case alignRight:
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell to the end of the current row. If no row has been
// started, Cell starts one.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	r := &t.rows[len(t.rows)-1]
	*r = append(*r, c)
	if len(*r) > t.cols {
		t.cols = len(*r)
	}
	return t
}

// Cellf is like Cell, but formats its value with fmt.Sprintf.
func (t *Table) Cellf(opt CellOption, format string, args ...interface{}) *Table {
	return t.Cell(fmt.Sprintf(format, args...), opt)
}

// Format lays out table t and writes it to w.
//
// Trailing padding is never written, so the last cell of each row
// ends its line.
func (t *Table) Format(w io.Writer) error {
	sep := t.Sep
	if sep == "" {
		sep = "  "
	}

	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c.value); n > ws[i] {
				ws[i] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for i, c := range row {
			if i > 0 {
				line.WriteString(sep)
			}
			line.WriteString(c.align.pad(c.value, ws[i]))
		}
		s := strings.TrimRight(line.String(), " ")
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
