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

Cage constraint evaluation

A cage is satisfied by an assignment of one value per cell when
combining the values with the cage's operation produces the
target.  Add and Mul are commutative and allow repeated values
(row and column uniqueness is not a cage concern; the propagator
and the search enforce it separately).  Sub and Div are defined
canonically for two cells - |a-b| or the larger divided evenly
by the smaller - and generalize to more cells by folding the
values in descending order, requiring every intermediate result
to stay a positive integer.

Evaluation is a pure function over the per-cell candidate
domains: it enumerates the combinations of the domains, filtered
by the operation, and collects per cell the values that survive
in at least one satisfying combination.  The enumeration is
exponential in cage size, but cages are small by puzzle
construction (at most a handful of cells, values at most 15), so
simple pruning on partial sums and products keeps it cheap.

*/

// satisfied reports whether a complete combination of values,
// one per cage cell, meets the cage's operation and target.
func (c *cage) satisfied(vals []int) bool {
	switch c.op {
	case OpConst:
		return vals[0] == c.target
	case OpAdd:
		sum := 0
		for _, v := range vals {
			sum += v
		}
		return sum == c.target
	case OpMul:
		prod := 1
		for _, v := range vals {
			prod *= v
		}
		return prod == c.target
	case OpSub:
		acc, rest := foldStart(vals)
		for _, v := range rest {
			acc -= v
			if acc <= 0 {
				return false
			}
		}
		return acc == c.target
	case OpDiv:
		acc, rest := foldStart(vals)
		for _, v := range rest {
			if acc%v != 0 {
				return false
			}
			acc /= v
		}
		return acc == c.target
	}
	return false
}

// foldStart sorts a combination descending (without modifying
// the input) and splits off the leading value for a Sub/Div
// fold.
func foldStart(vals []int) (int, []int) {
	sorted := make([]int, len(vals))
	copy(sorted, vals)
	// insertion sort, descending; combinations are tiny
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] > sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted[0], sorted[1:]
}

// evaluate decides whether some combination over the given
// domains satisfies the cage, and collects per cell the subset
// of its domain that appears in at least one satisfying
// combination.  The domains and the returned sets are aligned
// with c.cells; the inputs are not modified.
func (c *cage) evaluate(domains []intset) (bool, []intset) {
	n := len(c.cells)
	achievable := make([]intset, n)
	combo := make([]int, n)
	found := false

	var descend func(pos, sum, prod int)
	descend = func(pos, sum, prod int) {
		if pos == n {
			if c.satisfied(combo) {
				found = true
				for i, v := range combo {
					achievable[i].insert(v)
				}
			}
			return
		}
		remaining := n - pos - 1
		for _, v := range domains[pos] {
			switch c.op {
			case OpAdd:
				// every remaining cell adds at least 1
				if sum+v+remaining > c.target {
					continue
				}
			case OpMul:
				// the partial product must divide the target
				if prod*v > c.target || c.target%(prod*v) != 0 {
					continue
				}
			}
			combo[pos] = v
			descend(pos+1, sum+v, prod*v)
		}
	}
	descend(0, 0, 1)
	return found, achievable
}

// feasible is the cheap search-time check: given the values of
// the cage's already-assigned cells (in any order), the number
// of still-unassigned cells, and the puzzle size, it reports
// whether the cage can still reach its target.  With no
// unassigned cells the check is exact; otherwise it is a bound
// check that only ever errs on the side of optimism.
func (c *cage) feasible(assigned []int, missing, max int) bool {
	if missing == 0 {
		return c.satisfied(assigned)
	}
	switch c.op {
	case OpAdd:
		sum := 0
		for _, v := range assigned {
			sum += v
		}
		return sum+missing <= c.target && sum+missing*max >= c.target
	case OpMul:
		prod := 1
		for _, v := range assigned {
			prod *= v
		}
		return prod <= c.target && c.target%prod == 0
	}
	// Sub and Div partials stay optimistic; their cages are
	// almost always two cells, so the exact check comes on the
	// very next assignment.
	return true
}
