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

KenKen puzzle solver

Solving happens in two phases.  First the propagator narrows the
candidate store to its fixpoint; this alone settles many cells
and can prove a puzzle unsolvable outright.  Then a depth-first
backtracking search explores the narrowed store:

1. Pick the unassigned cell with the fewest remaining candidates
   (ties broken by reading order, so step counts are
   reproducible).  If no cell is unassigned, the puzzle is
   solved.

2. Try the cell's candidate values in ascending order.  Every
   attempt counts one step, whether or not it survives.

3. An attempt must not duplicate a value in its row or column
   and must leave its cage able to reach its target (an exact
   check once the cage is full, a cheap bound check before
   that).

4. A surviving attempt is forward-checked: the value is removed
   from the domains of unassigned row and column mates, and the
   cage is re-evaluated so cage mates keep only values still
   achievable with the new assignment.  Every removal is logged
   on the trail; if some domain empties, the branch is dead.

5. Recurse.  On failure, the trail is rewound so the store is
   exactly as it was before the attempt, and the next value is
   tried.  When a cell's values are exhausted the search
   backtracks; when the root's values are exhausted the puzzle
   has no solution.

*/

// Solve finds the first solution of the puzzle in the
// deterministic search order, or determines that none exists.
// The step count in the Result is the number of assignment
// attempts made by the search; a puzzle settled by propagation
// alone still costs one step per cell.
func (p *Puzzle) Solve() Result {
	cs := newCandidates(p)
	if !p.reduce(cs) {
		return Result{Steps: 0}
	}
	assigned := make([]int, p.cellCount()+1) // 1-based indexing
	steps := 0
	cs.trail.start()
	if p.search(cs, assigned, p.cellCount(), &steps) {
		return Result{Solved: true, Values: assigned[1:], Steps: steps}
	}
	return Result{Steps: steps}
}

// search tries to complete the assignment over the current
// domains, leaving the store untouched (net of its own trail
// rewinding) when it fails.
func (p *Puzzle) search(cs *candidates, assigned []int, unassigned int, steps *int) bool {
	if unassigned == 0 {
		return true
	}

	// most-constrained cell first; reading order breaks ties
	pick, best := 0, p.size+1
	for i := 1; i <= p.cellCount(); i++ {
		if assigned[i] == 0 && len(cs.domains[i]) < best {
			pick, best = i, len(cs.domains[i])
		}
	}

	for _, val := range newIntsetCopy(cs.domains[pick]) {
		*steps++
		if !p.consistent(assigned, pick, val) {
			continue
		}
		mark := cs.trail.mark()
		assigned[pick] = val
		if p.forwardCheck(cs, assigned, pick, val) &&
			p.search(cs, assigned, unassigned-1, steps) {
			return true
		}
		assigned[pick] = 0
		cs.undo(mark)
	}
	return false
}

// consistent checks an attempted value against the already
// assigned cells: no duplicate in the row or column, and the
// cell's cage still able to reach its target.
func (p *Puzzle) consistent(assigned []int, idx, val int) bool {
	row, col := p.rowOf(idx), p.colOf(idx)
	for i := 0; i < p.size; i++ {
		if ri := p.cellAt(row, i); ri != idx && assigned[ri] == val {
			return false
		}
		if ci := p.cellAt(i, col); ci != idx && assigned[ci] == val {
			return false
		}
	}
	c := p.cages[p.cellCage[idx]]
	vals := make([]int, 0, len(c.cells))
	missing := 0
	for _, ci := range c.cells {
		switch {
		case ci == idx:
			vals = append(vals, val)
		case assigned[ci] != 0:
			vals = append(vals, assigned[ci])
		default:
			missing++
		}
	}
	return c.feasible(vals, missing, p.size)
}

// forwardCheck commits an assignment to the candidate store:
// the cell's own domain shrinks to the value, unassigned row and
// column mates lose the value, and the cell's cage is
// re-evaluated so unassigned cage mates keep only values that
// some completion of the cage can still use.  All removals are
// trail-logged for undo.  Returns false as soon as any domain
// empties.
func (p *Puzzle) forwardCheck(cs *candidates, assigned []int, idx, val int) bool {
	cs.intersect(idx, intset{val})

	row, col := p.rowOf(idx), p.colOf(idx)
	for i := 0; i < p.size; i++ {
		for _, peer := range [2]int{p.cellAt(row, i), p.cellAt(i, col)} {
			if peer == idx || assigned[peer] != 0 {
				continue
			}
			if cs.remove(peer, val) && len(cs.domains[peer]) == 0 {
				return false
			}
		}
	}

	c := p.cages[p.cellCage[idx]]
	if len(c.cells) == 1 {
		return true
	}
	domains := make([]intset, len(c.cells))
	open := false
	for i, ci := range c.cells {
		domains[i] = cs.domains[ci]
		if assigned[ci] == 0 {
			open = true
		}
	}
	if !open {
		// feasible() already checked the full cage exactly
		return true
	}
	found, achievable := c.evaluate(domains)
	if !found {
		return false
	}
	for i, ci := range c.cells {
		if assigned[ci] != 0 {
			continue
		}
		if cs.intersect(ci, achievable[i]) && len(cs.domains[ci]) == 0 {
			return false
		}
	}
	return true
}
