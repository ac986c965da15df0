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
	"reflect"
	"testing"
)

func testCage(op Op, target, cells int) *cage {
	c := &cage{index: 1, op: op, target: target}
	for i := 1; i <= cells; i++ {
		c.cells.insert(i)
	}
	return c
}

func fullDomains(cells, max int) []intset {
	domains := make([]intset, cells)
	for i := range domains {
		domains[i] = newIntsetRange(max)
	}
	return domains
}

func TestCageSatisfied(t *testing.T) {
	cases := []struct {
		op       Op
		target   int
		vals     []int
		expected bool
	}{
		{OpConst, 3, []int{3}, true},
		{OpConst, 3, []int{2}, false},
		{OpAdd, 7, []int{3, 4}, true},
		{OpAdd, 7, []int{2, 2, 3}, true},
		{OpAdd, 7, []int{4, 4}, false},
		{OpMul, 36, []int{3, 3, 4}, true},
		{OpMul, 36, []int{2, 3, 4}, false},
		// Sub and Div never depend on the value order
		{OpSub, 3, []int{1, 4}, true},
		{OpSub, 3, []int{4, 1}, true},
		{OpSub, 3, []int{2, 4}, false},
		{OpSub, 3, []int{9, 3, 2, 1}, true},
		// an intermediate of 9-5-4 hits zero before the last value
		{OpSub, 1, []int{5, 9, 4, 1}, false},
		{OpDiv, 2, []int{2, 4}, true},
		{OpDiv, 2, []int{4, 2}, true},
		{OpDiv, 2, []int{3, 4}, false},
		{OpDiv, 1, []int{8, 4, 2}, true},
		// 8/3 leaves a remainder, whatever the order
		{OpDiv, 2, []int{3, 8}, false},
	}
	for i, tc := range cases {
		c := testCage(tc.op, tc.target, len(tc.vals))
		if out := c.satisfied(tc.vals); out != tc.expected {
			t.Errorf("case %d: %v %d over %v = %v", i, tc.op, tc.target, tc.vals, out)
		}
	}
}

func TestCageEvaluate(t *testing.T) {
	cases := []struct {
		op         Op
		target     int
		cells, max int
		expected   []intset
	}{
		{OpAdd, 7, 2, 4, []intset{{3, 4}, {3, 4}}},
		{OpAdd, 3, 2, 4, []intset{{1, 2}, {1, 2}}},
		{OpSub, 3, 2, 4, []intset{{1, 4}, {1, 4}}},
		{OpDiv, 2, 2, 4, []intset{{1, 2, 4}, {1, 2, 4}}},
		{OpMul, 36, 3, 4, []intset{{3, 4}, {3, 4}, {3, 4}}},
		{OpConst, 2, 1, 4, []intset{{2}}},
		{OpAdd, 6, 3, 4, []intset{{1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4}}},
	}
	for i, tc := range cases {
		c := testCage(tc.op, tc.target, tc.cells)
		found, achievable := c.evaluate(fullDomains(tc.cells, tc.max))
		if !found {
			t.Errorf("case %d: no satisfying combination found", i)
			continue
		}
		if !reflect.DeepEqual(achievable, tc.expected) {
			t.Errorf("case %d: achievable sets %v (expected %v)",
				i, achievable, tc.expected)
		}
	}
}

func TestCageEvaluateUnsatisfiable(t *testing.T) {
	cases := []*cage{
		testCage(OpAdd, 50, 3),
		testCage(OpMul, 7, 2),
		testCage(OpSub, 4, 2),
		testCage(OpDiv, 5, 2),
	}
	for i, c := range cases {
		found, _ := c.evaluate(fullDomains(len(c.cells), 4))
		if found {
			t.Errorf("case %d: %v %d reported satisfiable", i, c.op, c.target)
		}
	}
}

func TestCageEvaluateNarrowedDomains(t *testing.T) {
	// with one cell pinned to 4, an Add-7 pair forces the other to 3
	c := testCage(OpAdd, 7, 2)
	found, achievable := c.evaluate([]intset{{4}, {1, 2, 3, 4}})
	if !found {
		t.Fatalf("No satisfying combination found")
	}
	expected := []intset{{4}, {3}}
	if !reflect.DeepEqual(achievable, expected) {
		t.Errorf("Achievable sets %v (expected %v)", achievable, expected)
	}
}

func TestCageFeasible(t *testing.T) {
	cases := []struct {
		op       Op
		target   int
		cells    int
		assigned []int
		missing  int
		expected bool
	}{
		// complete cages are checked exactly
		{OpAdd, 7, 2, []int{3, 4}, 0, true},
		{OpAdd, 7, 2, []int{3, 3}, 0, false},
		{OpSub, 3, 2, []int{4, 1}, 0, true},
		// Add partials are bound checks
		{OpAdd, 7, 3, []int{1}, 2, true},
		{OpAdd, 7, 3, []int{6}, 2, false},  // overshoots with two cells to go
		{OpAdd, 12, 3, []int{1}, 2, false}, // cannot reach even with two 4s
		// Mul partials must divide the target; a divisor that no
		// in-range value can complete still passes the bound check
		{OpMul, 36, 3, []int{3}, 2, true},
		{OpMul, 36, 3, []int{2, 3}, 1, true},
		{OpMul, 36, 3, []int{4, 4}, 1, false},
		// Sub and Div partials stay optimistic
		{OpSub, 3, 2, []int{2}, 1, true},
		{OpDiv, 2, 2, []int{3}, 1, true},
	}
	for i, tc := range cases {
		c := testCage(tc.op, tc.target, tc.cells)
		if out := c.feasible(tc.assigned, tc.missing, 4); out != tc.expected {
			t.Errorf("case %d: %v %d with %v and %d missing = %v",
				i, tc.op, tc.target, tc.assigned, tc.missing, out)
		}
	}
}
