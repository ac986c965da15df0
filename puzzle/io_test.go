// kenat.go - a web-based KenKen solver and puzzle library.
// Copyright (C) 2026 the kenat.go authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package puzzle

import (
	"strings"
	"testing"
)

func TestVstr(t *testing.T) {
	cases := []struct {
		val      int
		expected string
	}{
		{0, " "},
		{1, "1"},
		{9, "9"},
		{10, "A"},
		{15, "F"},
		{-1, "?"},
		{16, "?"},
	}
	for i, tc := range cases {
		if out := vstr(tc.val); out != tc.expected {
			t.Errorf("case %d: vstr(%d) = %q", i, tc.val, out)
		}
	}
}

func TestGridString(t *testing.T) {
	expected := "+---+---+\n" +
		"| 1 | 2 |\n" +
		"+---+---+\n" +
		"| 2 | 1 |\n" +
		"+---+---+\n"
	if out := GridString(2, []int{1, 2, 2, 1}); out != expected {
		t.Errorf("Grid:\n%s(expected)\n%s", out, expected)
	}
	// missing values render as blanks
	expected = "+---+---+\n" +
		"| 1 |   |\n" +
		"+---+---+\n" +
		"|   |   |\n" +
		"+---+---+\n"
	if out := GridString(2, []int{1}); out != expected {
		t.Errorf("Partial grid:\n%s(expected)\n%s", out, expected)
	}
}

func TestResultGridString(t *testing.T) {
	r := Result{Solved: true, Values: []int{1, 2, 2, 1}, Steps: 4}
	if out, direct := r.GridString(2), GridString(2, r.Values); out != direct {
		t.Errorf("Result grid differs from direct grid:\n%s\n%s", out, direct)
	}
}

func TestFrameStringColumns(t *testing.T) {
	summary := Summary{
		Size: 2,
		Cages: []CageSummary{
			{Cells: []int{1, 3}, Op: OpAdd, Target: 3},
			{Cells: []int{2, 4}, Op: OpAdd, Target: 3},
		},
	}
	p, e := New(&summary)
	if e != nil {
		t.Fatalf("Failed to create puzzle: %v", e)
	}
	expected := "┏━━━┳━━━┓\n" +
		"┃ 1 ┃ 2 ┃\n" +
		"┠───╂───┨\n" +
		"┃ 2 ┃ 1 ┃\n" +
		"┗━━━┻━━━┛\n"
	if out := p.FrameString([]int{1, 2, 2, 1}); out != expected {
		t.Errorf("Frame:\n%s(expected)\n%s", out, expected)
	}
}

func TestFrameStringRows(t *testing.T) {
	summary := Summary{
		Size: 2,
		Cages: []CageSummary{
			{Cells: []int{1, 2}, Op: OpAdd, Target: 3},
			{Cells: []int{3, 4}, Op: OpAdd, Target: 3},
		},
	}
	p, e := New(&summary)
	if e != nil {
		t.Fatalf("Failed to create puzzle: %v", e)
	}
	expected := "┏━━━┯━━━┓\n" +
		"┃ 1 │ 2 ┃\n" +
		"┣━━━┿━━━┫\n" +
		"┃ 2 │ 1 ┃\n" +
		"┗━━━┷━━━┛\n"
	if out := p.FrameString([]int{1, 2, 2, 1}); out != expected {
		t.Errorf("Frame:\n%s(expected)\n%s", out, expected)
	}
}

func TestFrameStringShape(t *testing.T) {
	p := rotationPuzzle(t)
	out := p.FrameString(rotationSolution)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2*p.Size()+1 {
		t.Fatalf("Frame has %d lines for size %d", len(lines), p.Size())
	}
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if len([]rune(line)) != width {
			t.Errorf("line %d has width %d (expected %d)", i, len([]rune(line)), width)
		}
	}
	// every solution value appears in its cell row
	for r := 0; r < p.Size(); r++ {
		row := lines[2*r+1]
		for c := 0; c < p.Size(); c++ {
			want := vstr(rotationSolution[r*p.Size()+c])
			if !strings.Contains(row, want) {
				t.Errorf("row %d does not show value %s: %q", r, want, row)
			}
		}
	}
}

func TestPuzzleStringEmpty(t *testing.T) {
	p := rotationPuzzle(t)
	out := p.String()
	if strings.ContainsAny(out, "123456789") {
		t.Errorf("Empty frame shows values:\n%s", out)
	}
	if out != p.FrameString(nil) {
		t.Errorf("String differs from the nil-values frame")
	}
}
