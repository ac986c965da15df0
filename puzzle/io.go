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
	"fmt"
	"strings"
)

/*

Print forms of puzzles and solutions

*/

var (
	valueStrings = []string{
		" ", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"A", "B", "C", "D", "E", "F",
	}
	nonValueString = "?"
)

func vstr(i int) string {
	if i >= 0 && i < len(valueStrings) {
		return valueStrings[i]
	}
	return nonValueString
}

// GridString returns a plain bordered grid of values, one row of
// the puzzle per grid row:
//
//	+---+---+
//	| 1 | 2 |
//	+---+---+
//	| 2 | 1 |
//	+---+---+
//
// Values of 0 render as blanks.
func GridString(size int, values []int) string {
	var b strings.Builder
	sep := strings.Repeat("+---", size) + "+\n"
	for r := 0; r < size; r++ {
		b.WriteString(sep)
		for c := 0; c < size; c++ {
			val := 0
			if i := r*size + c; i < len(values) {
				val = values[i]
			}
			fmt.Fprintf(&b, "| %s ", vstr(val))
		}
		b.WriteString("|\n")
	}
	b.WriteString(sep)
	return b.String()
}

// GridString renders a solved Result as a plain grid.
func (r Result) GridString(size int) string {
	return GridString(size, r.Values)
}

// FrameString returns the puzzle drawn with box-drawing
// characters, using heavy strokes along cage boundaries and
// light strokes inside cages.  The values fill the cells in
// reading order; pass nil to draw the empty grid.
func (p *Puzzle) FrameString(values []int) string {
	const cellsize = 3
	var b strings.Builder
	max := p.size - 1

	// cage id at a coordinate, with a sentinel outside the grid
	// so every border edge reads as a cage change
	cn := func(i, j int) int {
		if i >= 0 && i <= max && j >= 0 && j <= max {
			return p.cellCage[p.cellAt(i, j)]
		}
		return -1
	}
	cs := func(s string) string { return strings.Repeat(s, cellsize) }
	content := func(i, j int) string {
		val := 0
		if idx := i*p.size + j; idx < len(values) {
			val = values[idx]
		}
		return " " + vstr(val) + " "
	}

	// top border
	b.WriteString("┏")
	for j := 0; j < p.size; j++ {
		b.WriteString(cs("━"))
		if j < max {
			if cn(0, j) != cn(0, j+1) {
				b.WriteString("┳")
			} else {
				b.WriteString("┯")
			}
		} else {
			b.WriteString("┓\n")
		}
	}
	for i := 0; i < p.size; i++ {
		// the cell row
		b.WriteString("┃")
		for j := 0; j < p.size; j++ {
			b.WriteString(content(i, j))
			if cn(i, j) != cn(i, j+1) {
				b.WriteString("┃")
			} else {
				b.WriteString("│")
			}
		}
		b.WriteString("\n")
		if i < max {
			// the separator row below it
			if cn(i, 0) != cn(i+1, 0) {
				b.WriteString("┣")
			} else {
				b.WriteString("┠")
			}
			for j := 0; j < p.size; j++ {
				a, bb := cn(i, j), cn(i, j+1)
				c, d := cn(i+1, j), cn(i+1, j+1)
				if a != c {
					b.WriteString(cs("━"))
				} else {
					b.WriteString(cs("─"))
				}
				if j < max {
					b.WriteString(junction(a, bb, c, d))
				} else {
					if a != c {
						b.WriteString("┫\n")
					} else {
						b.WriteString("┨\n")
					}
				}
			}
		} else {
			// the bottom border
			b.WriteString("┗")
			for j := 0; j < p.size; j++ {
				b.WriteString(cs("━"))
				if j < max {
					if cn(i, j) != cn(i, j+1) {
						b.WriteString("┻")
					} else {
						b.WriteString("┷")
					}
				} else {
					b.WriteString("┛\n")
				}
			}
		}
	}
	return b.String()
}

// junction picks the crossing character for an interior corner,
// given the cage ids of the four surrounding cells (above-left,
// above-right, below-left, below-right).  Sides where the cages
// match are light, sides where they differ are heavy.
func junction(a, b, c, d int) string {
	switch {
	case a == b && b == c && c == d:
		return "┼"
	case a == b && c == d:
		return "┿"
	case a == c && b == d:
		return "╂"
	case a == b && b == c:
		return "╆"
	case a == b && b == d:
		return "╅"
	case a == c && c == d:
		return "╄"
	case b == c && c == d:
		return "╃"
	case a == b:
		return "╈"
	case a == c:
		return "╊"
	case b == d:
		return "╉"
	case c == d:
		return "╇"
	default:
		return "╋"
	}
}

// String gives the empty frame of the puzzle, which shows its
// size and cage layout.
func (p *Puzzle) String() string {
	return p.FrameString(nil)
}
