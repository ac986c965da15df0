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

// Command-line solver for KenKen puzzle files.
//
// With one file argument, kenat prints the solved grid and the
// step count, or reports that the puzzle has no solution.  With
// more than one, it prints a one-line summary per file, so whole
// collections can be timed in one run.  A file that fails to
// parse is reported and skipped; the remaining files still get
// solved.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kendoku/kenat.go/puzzle"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run does all the work of main, parameterized for testing.
// The return value is the process exit code: 0 when every file
// parsed and solved, 1 otherwise.
func run(args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(errOut, "usage: kenat puzzle-file ...\n")
		return 1
	}
	if len(args) == 1 {
		return solveOne(args[0], out, errOut)
	}
	code := 0
	for _, name := range args {
		if solveLine(name, out, errOut) != 0 {
			code = 1
		}
	}
	return code
}

// solveOne solves a single puzzle file verbosely.
func solveOne(name string, out, errOut io.Writer) int {
	p, err := makePuzzle(name)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", name, err)
		return 1
	}
	start := time.Now()
	result := p.Solve()
	elapsed := time.Since(start)
	if !result.Solved {
		fmt.Fprint(out, p.FrameString(nil))
		fmt.Fprintf(out, "No solution (%d steps, %v).\n", result.Steps, elapsed)
		return 1
	}
	fmt.Fprint(out, p.FrameString(result.Values))
	fmt.Fprintf(out, "Solved in %d steps (%v).\n", result.Steps, elapsed)
	return 0
}

// solveLine solves one file of a batch, printing a single
// summary line.
func solveLine(name string, out, errOut io.Writer) int {
	p, err := makePuzzle(name)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", name, err)
		return 1
	}
	start := time.Now()
	result := p.Solve()
	elapsed := time.Since(start)
	if !result.Solved {
		fmt.Fprintf(out, "%-30s no solution %8d steps %12v\n", name, result.Steps, elapsed)
		return 1
	}
	fmt.Fprintf(out, "%-30s solved      %8d steps %12v\n", name, result.Steps, elapsed)
	return 0
}

// makePuzzle reads and validates one puzzle file.
func makePuzzle(name string) (*puzzle.Puzzle, error) {
	summary, err := puzzle.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return puzzle.New(summary)
}
