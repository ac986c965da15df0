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
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

/*

Textual puzzle format

A puzzle file has two parts.  The first part is the grid: one
line per row, one character per cell.  A digit opens a
single-cell Const cage holding that value; any other character
names a shared cage, with all cells bearing the same character
belonging to the same cage.  The second part, separated by a
blank line, defines one shared cage per line:

    abbc
    a2cc
    ddef
    4def

    a: 1-
    b: 3-
    c: 36*
    d: 7+
    e: 2/
    f: 2/

Each definition is the cage character, a colon and space, the
target value, and the operation symbol (+ - * /).  The cage
characters are pure surface syntax: the Summary built here
identifies cages by small-integer ids (digit cages first, in
reading order, then character cages in character order).

*/

// Read parses the textual puzzle format and returns the
// puzzle's Summary.  Problems with the text are reported as
// Error values; the returned Summary still needs New's model
// validation (Read checks only what the text format itself
// promises: line lengths, cage arity, defined targets).
func Read(r io.Reader) (*Summary, error) {
	scanner := bufio.NewScanner(r)

	// the grid part
	var rows []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			break
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, formatError(DefinitionAttribute, EmptyArgumentCondition, "")
	}
	size := len(rows[0])
	if size < 2 || size > maxSize {
		return nil, rangeError(SizeAttribute, size, 2, maxSize)
	}
	if len(rows) != size {
		return nil, formatError(SizeAttribute, GeneralCondition, size,
			"grid must have as many rows as columns")
	}

	// digit cages are created as they are seen; character cages
	// accumulate cells and get their definitions later
	var consts []CageSummary
	shared := make(map[byte]*CageSummary)
	for ri, row := range rows {
		if len(row) != size {
			return nil, formatError(LineAttribute, UnequalLineLengthCondition, row, size)
		}
		for ci := 0; ci < size; ci++ {
			idx := ri*size + ci + 1
			ch := row[ci]
			if ch >= '0' && ch <= '9' {
				consts = append(consts, CageSummary{
					Cells:  []int{idx},
					Op:     OpConst,
					Target: int(ch - '0'),
				})
				continue
			}
			cage := shared[ch]
			if cage == nil {
				cage = &CageSummary{Op: MaxOp}
				shared[ch] = cage
			}
			cage.Cells = append(cage.Cells, idx)
		}
	}

	// the cage definition part
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			break
		}
		parts := strings.SplitN(line, ": ", 2)
		if len(parts) != 2 || len(parts[0]) != 1 || len(parts[1]) < 2 {
			return nil, formatError(LineAttribute, GeneralCondition, line,
				"cage definitions look like 'a: 12+'")
		}
		cage := shared[parts[0][0]]
		if cage == nil {
			// a definition for an unused character is ignored,
			// matching the permissive reading of puzzle files
			// that define more cages than the grid uses
			continue
		}
		goal, err := strconv.Atoi(parts[1][:len(parts[1])-1])
		if err != nil {
			return nil, formatError(TargetAttribute, GeneralCondition,
				parts[1][:len(parts[1])-1], "not a number")
		}
		op, ok := OpFromSymbol(parts[1][len(parts[1])-1:])
		if !ok || op == OpConst {
			return nil, formatError(OperationAttribute, UnknownOperationCondition,
				parts[1][len(parts[1])-1:])
		}
		cage.Op = op
		cage.Target = goal
	}
	if err := scanner.Err(); err != nil {
		return nil, formatError(DefinitionAttribute, GeneralCondition, "", err.Error())
	}

	// check the shared cages and order them by character
	chars := make([]int, 0, len(shared))
	for ch := range shared {
		chars = append(chars, int(ch))
	}
	sort.Ints(chars)
	cages := consts
	for _, ch := range chars {
		cage := shared[byte(ch)]
		if cage.Op == MaxOp {
			return nil, formatError(DefinitionAttribute, MissingTargetCondition,
				string(rune(ch)))
		}
		switch cage.Op {
		case OpSub, OpDiv:
			if len(cage.Cells) != 2 {
				return nil, formatError(CellsAttribute, WrongCellCountCondition,
					string(rune(ch)), len(cage.Cells))
			}
		default:
			if len(cage.Cells) < 2 || len(cage.Cells) > maxSize {
				return nil, formatError(CellsAttribute, WrongCellCountCondition,
					string(rune(ch)), len(cage.Cells))
			}
		}
		cages = append(cages, *cage)
	}
	return &Summary{Size: size, Cages: cages}, nil
}

// ReadString parses a puzzle definition held in a string.
func ReadString(s string) (*Summary, error) {
	return Read(strings.NewReader(s))
}

// ReadFile parses the puzzle definition in the named file.
func ReadFile(name string) (*Summary, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
