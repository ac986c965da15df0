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

// Package puzzle provides a model for KenKen puzzles and a
// solving engine for them.
//
// A KenKen puzzle is an N-by-N grid (N at most 15) partitioned
// into cages.  Each cage carries an arithmetic operation and a
// target value.  A solution fills every cell with a value
// between 1 and N so that each row and each column contains
// every value exactly once (a Latin square) and the values of
// each cage, combined with the cage's operation, produce the
// cage's target.
//
// Cells are designated by indices that start at 1 and increase
// left-to-right, top-to-bottom (English reading order).  Cages
// are designated by 1-based small-integer ids; the textual
// cage-letter encoding used by puzzle files is a concern of the
// reader in this package and never appears in the model.
//
// For each cell the solver maintains a set of candidate values
// the cell can still take.  Candidate sets are narrowed by
// constraint propagation over the cage and row/column rules, and
// the remaining search space is explored by a backtracking
// search that counts its assignment attempts.  A puzzle with no
// solution is a normal outcome, reported in the Result; only a
// malformed puzzle description produces an error.
package puzzle

import (
	"encoding/json"
	"fmt"
)

// An Op is the arithmetic operation of a cage.  OpConst marks a
// single-cell cage whose target is the cell's fixed value.
type Op int

// The recognized cage operations.
const (
	OpConst Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	MaxOp
)

// opSymbols maps operations to their symbols in puzzle files and
// JSON-encoded summaries.
var opSymbols = map[Op]string{
	OpConst: "=",
	OpAdd:   "+",
	OpSub:   "-",
	OpMul:   "*",
	OpDiv:   "/",
}

// OpFromSymbol returns the operation for a symbol, similar to a
// map lookup.
func OpFromSymbol(sym string) (Op, bool) {
	for op, s := range opSymbols {
		if s == sym {
			return op, true
		}
	}
	return MaxOp, false
}

// Ops implement Stringer
func (op Op) String() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("<op %d>", int(op))
}

// MarshalJSON encodes an Op as its symbol.
func (op Op) MarshalJSON() ([]byte, error) {
	s, ok := opSymbols[op]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown operation %d", int(op))
	}
	return json.Marshal(s)
}

// UnmarshalJSON decodes an Op from its symbol.
func (op *Op) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	o, ok := OpFromSymbol(s)
	if !ok {
		return fmt.Errorf("unknown operation symbol %q", s)
	}
	*op = o
	return nil
}

// A CageSummary describes one cage of a puzzle: the indices of
// its cells (in any order), its operation, and its target value.
type CageSummary struct {
	Cells  []int `json:"cells"`
	Op     Op    `json:"op"`
	Target int   `json:"target"`
}

// A Summary is the serializable description of a puzzle.  The
// cages must partition the cell indices 1 through Size*Size.
// Summaries are the interchange form of puzzles: they are what
// readers produce, what web clients post, and what the storage
// layer persists.
type Summary struct {
	Size  int           `json:"size"`
	Cages []CageSummary `json:"cages"`
}

// A Result is the outcome of solving a puzzle.  When Solved is
// true, Values holds the solution grid in reading order.  Steps
// counts the assignment attempts made by the search; it is
// deterministic for a given puzzle and is reported even when the
// puzzle has no solution.
type Result struct {
	Solved bool  `json:"solved"`
	Values []int `json:"values,omitempty"`
	Steps  int   `json:"steps"`
}

// A State reports what constraint propagation alone can deduce
// about a puzzle: the remaining candidate values of every cell,
// in reading order.  Infeasible is set when propagation proves
// the puzzle unsolvable.
type State struct {
	Size       int     `json:"size"`
	Infeasible bool    `json:"infeasible,omitempty"`
	Candidates [][]int `json:"candidates"`
}

// New returns the Puzzle described by a Summary, or an Error if
// the summary violates the puzzle model: a size out of range, a
// cell in no cage or in more than one cage, an unknown
// operation, a Const cage that is not a single cell with a
// target between 1 and the size, or a Sub/Div cage with fewer
// than two cells.
func New(summary *Summary) (*Puzzle, error) {
	if summary == nil {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: ScopeStructure,
			Condition: EmptyArgumentCondition,
		}
	}
	return create(summary)
}
