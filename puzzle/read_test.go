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
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadRotation(t *testing.T) {
	summary, e := ReadString(rotationText)
	if e != nil {
		t.Fatalf("Failed to read rotation puzzle: %v", e)
	}
	if !reflect.DeepEqual(*summary, rotationSummary) {
		t.Fatalf("Read summary mismatch:\n%+v\n%+v", *summary, rotationSummary)
	}
	// the summary passes model validation and solves
	p, e := New(summary)
	if e != nil {
		t.Fatalf("Read summary rejected by New: %v", e)
	}
	result := p.Solve()
	if !result.Solved || !reflect.DeepEqual(result.Values, rotationSolution) {
		t.Fatalf("Read puzzle solved wrong: %+v", result)
	}
}

func TestReadTolerance(t *testing.T) {
	// trailing whitespace, no final newline, definitions for
	// characters the grid never uses
	text := "ab  \n" +
		"ab\t\n" +
		"\n" +
		"a: 3+\n" +
		"b: 3+\n" +
		"z: 5+"
	summary, e := ReadString(text)
	if e != nil {
		t.Fatalf("Failed to read tolerant text: %v", e)
	}
	expected := Summary{
		Size: 2,
		Cages: []CageSummary{
			{Cells: []int{1, 3}, Op: OpAdd, Target: 3},
			{Cells: []int{2, 4}, Op: OpAdd, Target: 3},
		},
	}
	if !reflect.DeepEqual(*summary, expected) {
		t.Fatalf("Read summary mismatch:\n%+v\n%+v", *summary, expected)
	}
}

func TestReadErrorCases(t *testing.T) {
	cases := []struct {
		text      string
		condition ErrorCondition
	}{
		// no grid at all
		{"", EmptyArgumentCondition},
		{"\n\na: 3+\n", EmptyArgumentCondition},
		// one-cell grid is below the textual minimum
		{"1\n", TooSmallCondition},
		// more columns than rows
		{"aab\nabb\n\na: 3+\nb: 4+\n", GeneralCondition},
		// ragged rows
		{"ab\nabc\n\na: 3+\nb: 3+\n", UnequalLineLengthCondition},
		// grid characters with no definition
		{"ab\nab\n\na: 3+\n", MissingTargetCondition},
		// definition without the colon-space separator
		{"ab\nab\n\na 3+\nb: 3+\n", GeneralCondition},
		// target is not a number
		{"ab\nab\n\na: x+\nb: 3+\n", GeneralCondition},
		// unknown operation character
		{"ab\nab\n\na: 3%\nb: 3+\n", UnknownOperationCondition},
		// Const is not a legal cage definition
		{"ab\nab\n\na: 3=\nb: 3+\n", UnknownOperationCondition},
		// Sub cages take exactly two cells
		{"aab\naab\nccb\n\na: 3-\nb: 6+\nc: 3+\n", WrongCellCountCondition},
		// a lone character cell cannot make a two-or-more cage
		{"ab\ncb\n\na: 3+\nb: 3-\nc: 2+\n", WrongCellCountCondition},
	}
	for i, tc := range cases {
		_, e := ReadString(tc.text)
		if e == nil {
			t.Errorf("case %d: no error from %q", i, tc.text)
			continue
		}
		err, ok := e.(Error)
		if !ok {
			t.Errorf("case %d: error is not an Error: %v", i, e)
			continue
		}
		if err.Condition != tc.condition {
			t.Errorf("case %d: condition %v (expected %v): %v",
				i, err.Condition, tc.condition, err)
		}
		if len(err.Error()) == 0 {
			t.Errorf("case %d: error verbalizes to an empty string", i)
		}
	}
}

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "rotation.txt")
	if e := os.WriteFile(name, []byte(rotationText), 0644); e != nil {
		t.Fatalf("Failed to write puzzle file: %v", e)
	}
	summary, e := ReadFile(name)
	if e != nil {
		t.Fatalf("Failed to read puzzle file: %v", e)
	}
	if !reflect.DeepEqual(*summary, rotationSummary) {
		t.Fatalf("Read summary mismatch:\n%+v\n%+v", *summary, rotationSummary)
	}
	if _, e = ReadFile(filepath.Join(t.TempDir(), "no-such-file")); e == nil {
		t.Errorf("No error from a missing file")
	}
}

func TestReadDigitsOnly(t *testing.T) {
	// a grid of nothing but Const cages needs no definition part
	text := "12\n21\n"
	summary, e := Read(strings.NewReader(text))
	if e != nil {
		t.Fatalf("Failed to read digit grid: %v", e)
	}
	p, e := New(summary)
	if e != nil {
		t.Fatalf("Digit grid rejected by New: %v", e)
	}
	result := p.Solve()
	if !result.Solved || !reflect.DeepEqual(result.Values, []int{1, 2, 2, 1}) {
		t.Fatalf("Digit grid solved wrong: %+v", result)
	}
}
