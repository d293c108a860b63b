// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		got := a.pad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 6, "abc   ")
	check("abc", alignCenter, 6, " abc  ")
	check("abc", alignCenter, 7, "  abc  ")
	check("abc", alignRight, 6, "   abc")
	check("µs", alignRight, 4, "  µs")
	check("toolong", alignRight, 3, "toolong")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var got strings.Builder
		if err := tab.Format(&got); err != nil {
			t.Fatal(err)
		}
		if want != got.String() {
			t.Errorf("want:\n%sgot:\n%s", want, got.String())
		}
		tab = Table{}
	}

	// Basic layout, with no trailing spaces.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("f")
	check("a     b  c\nlong  e  f\n")

	// Right-aligned numbers.
	tab.Row().Cell("ArraySize").Cell("mean", Right)
	tab.Row().Cell("100", Right).Cellf(Right, "%.2f", 1234.5)
	tab.Row().Cell("10000", Right).Cellf(Right, "%.2f", 5.0)
	check("ArraySize     mean\n      100  1234.50\n    10000     5.00\n")

	// Ragged rows and a custom separator.
	tab.Sep = " | "
	tab.Row().Cell("x").Cell("y")
	tab.Row().Cell("zz")
	check("x  | y\nzz\n")

	// Cell without Row starts a row.
	tab.Cell("solo")
	check("solo\n")
}
