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

KenKen puzzle representation

*/

// A Puzzle is the immutable description of a KenKen grid: the
// side length, the cages, and the cage membership of every cell.
// Puzzles are built once by New and never mutated; all solving
// state lives in a candidate store created per solve.
type Puzzle struct {
	size     int
	cages    []*cage // 1-based indexing
	cellCage []int   // 1-based cell index -> cage index
}

// A cage is a set of cells that together must produce the cage's
// target value under its operation.  The cells are kept sorted
// in reading order; the operation semantics never depend on the
// cell order (Sub and Div sort the values themselves).
type cage struct {
	index  int
	op     Op
	target int
	cells  intset
}

// Size returns the side length of the puzzle.
func (p *Puzzle) Size() int {
	return p.size
}

// cellCount returns the number of cells in the puzzle.
func (p *Puzzle) cellCount() int {
	return p.size * p.size
}

// rowOf and colOf translate a 1-based cell index to 0-based grid
// coordinates.
func (p *Puzzle) rowOf(idx int) int { return (idx - 1) / p.size }
func (p *Puzzle) colOf(idx int) int { return (idx - 1) % p.size }

// cellAt translates 0-based grid coordinates to a 1-based cell
// index.
func (p *Puzzle) cellAt(row, col int) int { return row*p.size + col + 1 }

// Summary returns the serializable description of the puzzle.
// The return value does not share storage with the puzzle.
func (p *Puzzle) Summary() *Summary {
	cages := make([]CageSummary, len(p.cages)-1)
	for i := 1; i < len(p.cages); i++ {
		c := p.cages[i]
		cages[i-1] = CageSummary{
			Cells:  newIntsetCopy(c.cells),
			Op:     c.op,
			Target: c.target,
		}
	}
	return &Summary{Size: p.size, Cages: cages}
}

// State runs propagation on a fresh candidate store and reports
// the narrowed candidates of every cell.
func (p *Puzzle) State() State {
	cs := newCandidates(p)
	feasible := p.reduce(cs)
	st := State{Size: p.size, Infeasible: !feasible}
	st.Candidates = make([][]int, p.cellCount())
	for i := 1; i <= p.cellCount(); i++ {
		st.Candidates[i-1] = newIntsetCopy(cs.domains[i])
	}
	return st
}

/*

Puzzle construction

*/

// create validates a summary and assembles the puzzle.  The
// summary is the caller's contract: every violation is reported
// as an Error rather than being allowed to corrupt solver state
// later.
func create(summary *Summary) (*Puzzle, error) {
	size := summary.Size
	if size < 1 {
		return nil, rangeError(SizeAttribute, size, 1, maxSize)
	}
	if size > maxSize {
		return nil, rangeError(SizeAttribute, size, 1, maxSize)
	}
	count := size * size

	p := &Puzzle{
		size:     size,
		cages:    make([]*cage, len(summary.Cages)+1), // 1-based indexing
		cellCage: make([]int, count+1),                // 1-based indexing
	}
	for i, cs := range summary.Cages {
		ci := i + 1
		c := &cage{index: ci, op: cs.Op, target: cs.Target}
		if cs.Op < 0 || cs.Op >= MaxOp {
			return nil, cageError(ci, OperationAttribute, int(cs.Op), UnknownOperationCondition)
		}
		for _, idx := range cs.Cells {
			if idx < 1 || idx > count {
				return nil, cageError(ci, CellsAttribute, idx, CellOutOfRangeCondition)
			}
			if p.cellCage[idx] != 0 {
				return nil, cageError(ci, CellsAttribute, idx, OverlappingCagesCondition)
			}
			p.cellCage[idx] = ci
			c.cells.insert(idx)
		}
		if len(c.cells) == 0 {
			return nil, cageError(ci, CellsAttribute, 0, NoCageCellsCondition)
		}
		switch cs.Op {
		case OpConst:
			if len(c.cells) != 1 {
				return nil, cageError(ci, CellsAttribute, len(c.cells), WrongCellCountCondition)
			}
			if cs.Target < 1 || cs.Target > size {
				return nil, cageError(ci, TargetAttribute, cs.Target, TargetOutOfRangeCondition)
			}
		case OpSub, OpDiv:
			if len(c.cells) < 2 {
				return nil, cageError(ci, CellsAttribute, len(c.cells), WrongCellCountCondition)
			}
			if cs.Target < 1 {
				return nil, cageError(ci, TargetAttribute, cs.Target, TargetOutOfRangeCondition)
			}
		default:
			if cs.Target < 1 {
				return nil, cageError(ci, TargetAttribute, cs.Target, TargetOutOfRangeCondition)
			}
		}
		p.cages[ci] = c
	}
	for idx := 1; idx <= count; idx++ {
		if p.cellCage[idx] == 0 {
			return nil, Error{
				Scope:     CellScope,
				Structure: ScopeStructure,
				Condition: UncagedCellCondition,
				Values:    ErrorData{idx},
			}
		}
	}
	return p, nil
}

// maxSize is the largest supported side length.  Candidate sets
// and cage arithmetic all assume values of at most 15.
const maxSize = 15

/*

Candidate stores

*/

// A candidates store holds the per-cell domains of
// still-possible values.  It is the single mutable state of a
// solve: propagation narrows the domains permanently, and the
// search narrows them transiently, recording every removal on
// the trail so a failed branch can be restored exactly.
type candidates struct {
	puzzle  *Puzzle
	domains []intset // 1-based cell indexing
	trail   trail
}

// newCandidates creates a store with the full domain 1..N for
// every cell.
func newCandidates(p *Puzzle) *candidates {
	cs := &candidates{
		puzzle:  p,
		domains: make([]intset, p.cellCount()+1), // 1-based indexing
	}
	for i := 1; i <= p.cellCount(); i++ {
		cs.domains[i] = newIntsetRange(p.size)
	}
	return cs
}

// remove takes a value out of a cell's domain, logging the
// removal on the trail when recording.  It returns whether the
// value was present.
func (cs *candidates) remove(idx, val int) bool {
	if !cs.domains[idx].remove(val) {
		return false
	}
	cs.trail.log(idx, intset{val})
	return true
}

// intersect keeps only the values of keep in a cell's domain,
// logging the removals on the trail when recording.  It returns
// whether anything was removed.
func (cs *candidates) intersect(idx int, keep intset) bool {
	removed := cs.domains[idx].difference(keep)
	if len(removed) == 0 {
		return false
	}
	cs.domains[idx].subtract(removed)
	cs.trail.log(idx, removed)
	return true
}

// A trail records domain removals so they can be undone when a
// search branch fails.  Outside the search (during propagation)
// the trail is stopped and removals are permanent.
type trail struct {
	recording bool
	entries   []removal
}

// A removal remembers the values taken out of one cell's domain
// by a single narrowing operation.
type removal struct {
	index int
	vals  intset
}

// start turns on recording.
func (t *trail) start() {
	t.recording = true
}

// mark returns the current trail position, for a later undo.
func (t *trail) mark() int {
	return len(t.entries)
}

// log remembers a removal, if recording.
func (t *trail) log(idx int, vals intset) {
	if t.recording {
		t.entries = append(t.entries, removal{idx, vals})
	}
}

// undo restores all removals made since the given mark, leaving
// the domains exactly as they were when mark was taken.
func (cs *candidates) undo(mark int) {
	for i := len(cs.trail.entries) - 1; i >= mark; i-- {
		e := &cs.trail.entries[i]
		for _, v := range e.vals {
			cs.domains[e.index].insert(v)
		}
		*e = removal{} // release storage held in the entry
	}
	cs.trail.entries = cs.trail.entries[:mark]
}

/*

Integer sets

*/

// An intset is a set of small integers, represented as a sorted
// slice.  We use intsets both for candidate values and for cell
// indices.
type intset []int

// newIntsetRange: make an intset from a range of values, 1 to max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy: make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// has reports whether the set contains v.
func (ps intset) has(v int) bool {
	_, found := (&ps).find(v)
	return found
}

// insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}

// subtract removes the values of xs, returning whether anything
// was removed.
func (ps *intset) subtract(xs intset) bool {
	pend, xend := len(*ps), len(xs)
	pi, newend := 0, 0
	for xi := 0; pi < pend && xi < xend; {
		pv, xv := (*ps)[pi], xs[xi]
		switch {
		case pv == xv:
			pi++
			xi++
		case pv < xv:
			if newend != pi {
				(*ps)[newend] = pv
			}
			newend++
			pi++
		case pv > xv:
			xi++
		}
	}
	if newend == pi {
		// nothing was removed
		return false
	}
	// copy any remaining non-removed values
	newend += copy((*ps)[newend:], (*ps)[pi:])
	*ps = (*ps)[:newend]
	return true
}

// difference returns the values of ps that are not in xs,
// without modifying either set.
func (ps intset) difference(xs intset) intset {
	var out intset
	xi := 0
	for _, pv := range ps {
		for xi < len(xs) && xs[xi] < pv {
			xi++
		}
		if xi >= len(xs) || xs[xi] != pv {
			out = append(out, pv)
		}
	}
	return out
}

// equal reports whether two intsets hold the same values.
func (ps intset) equal(xs intset) bool {
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
