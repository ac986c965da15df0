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

/*

Constraint propagation

The propagator narrows the candidate store until a full pass
changes nothing (a fixpoint) or some cell runs out of candidates
(the puzzle is infeasible).  A pass has three parts: intersect
every cell's domain with its cage's achievable values, eliminate
the values of single-candidate cells from the rest of their row
and column, and eliminate the values of naked pairs - two cells
of a line sharing the same two-value domain - from the rest of
that line.  All three parts only remove values that no solution
can use, so propagation never loses the solution (and never
assigns anything; it only narrows).

*/

// reduce narrows the candidate store to its propagation
// fixpoint.  It returns false if some cell lost its last
// candidate, which proves the puzzle unsolvable; this is a
// normal solver outcome, not an error.
func (p *Puzzle) reduce(cs *candidates) bool {
	for {
		changed, ok := p.reducePass(cs)
		if !ok {
			return false
		}
		if !changed {
			return true
		}
	}
}

// reducePass makes one full propagation pass, reporting whether
// anything changed and whether all domains are still non-empty.
func (p *Puzzle) reducePass(cs *candidates) (changed, ok bool) {
	// cage achievability
	for ci := 1; ci < len(p.cages); ci++ {
		c := p.cages[ci]
		domains := make([]intset, len(c.cells))
		for i, idx := range c.cells {
			domains[i] = cs.domains[idx]
		}
		found, achievable := c.evaluate(domains)
		if !found {
			return changed, false
		}
		for i, idx := range c.cells {
			if cs.intersect(idx, achievable[i]) {
				changed = true
				if len(cs.domains[idx]) == 0 {
					return changed, false
				}
			}
		}
	}

	// row and column uniqueness
	for i := 0; i < p.size; i++ {
		for _, line := range [][]int{p.rowCells(i), p.colCells(i)} {
			ch, ok := cs.reduceLine(line)
			changed = changed || ch
			if !ok {
				return changed, false
			}
		}
	}
	return changed, true
}

// reduceLine applies the single-candidate and naked-pair
// eliminations to one row or column.
func (cs *candidates) reduceLine(line []int) (changed, ok bool) {
	// a cell down to one candidate claims that value
	for _, idx := range line {
		if len(cs.domains[idx]) != 1 {
			continue
		}
		val := cs.domains[idx][0]
		for _, other := range line {
			if other == idx {
				continue
			}
			if cs.remove(other, val) {
				changed = true
				if len(cs.domains[other]) == 0 {
					return changed, false
				}
			}
		}
	}
	// two cells sharing the same two candidates claim both
	for i, idx := range line {
		if len(cs.domains[idx]) != 2 {
			continue
		}
		for _, second := range line[i+1:] {
			if !cs.domains[idx].equal(cs.domains[second]) {
				continue
			}
			pair := newIntsetCopy(cs.domains[idx])
			for _, other := range line {
				if other == idx || other == second {
					continue
				}
				for _, val := range pair {
					if cs.remove(other, val) {
						changed = true
						if len(cs.domains[other]) == 0 {
							return changed, false
						}
					}
				}
			}
		}
	}
	return changed, true
}

// rowCells returns the cell indices of a 0-based row, in reading
// order.
func (p *Puzzle) rowCells(row int) []int {
	cells := make([]int, p.size)
	for c := 0; c < p.size; c++ {
		cells[c] = p.cellAt(row, c)
	}
	return cells
}

// colCells returns the cell indices of a 0-based column, top to
// bottom.
func (p *Puzzle) colCells(col int) []int {
	cells := make([]int, p.size)
	for r := 0; r < p.size; r++ {
		cells[r] = p.cellAt(r, col)
	}
	return cells
}
