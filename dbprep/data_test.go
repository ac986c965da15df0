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

package dbprep

import (
	"testing"

	"github.com/kendoku/kenat.go/puzzle"
)

// The sample library must hold valid, solvable puzzles; this
// needs no database to check.
func TestSamplePuzzlesSolvable(t *testing.T) {
	seen := make(map[string]bool)
	for _, sample := range samplePuzzles {
		if seen[sample.name] {
			t.Errorf("Duplicate sample name %q", sample.name)
		}
		seen[sample.name] = true
		summary, err := puzzle.ReadString(sample.definition)
		if err != nil {
			t.Errorf("Sample %q does not parse: %v", sample.name, err)
			continue
		}
		p, err := puzzle.New(summary)
		if err != nil {
			t.Errorf("Sample %q is not a valid puzzle: %v", sample.name, err)
			continue
		}
		result := p.Solve()
		if !result.Solved {
			t.Errorf("Sample %q has no solution (%d steps)", sample.name, result.Steps)
		}
	}
}
