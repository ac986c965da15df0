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
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx"

	"github.com/kendoku/kenat.go/puzzle"
)

/*

entries

*/

type dataFunction func(*pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample data into the database.  You should do
// this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample data from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/kenat?sslmode=disable"
	}

	// open the database, defer the close
	cfg, err := pgx.ParseURI(url)
	if err != nil {
		return err
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin()
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback()
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("%v failed: %v", fn, err)
		}
	}
	return nil
}

/*

sample puzzles

*/

// samplePuzzle pairs a library id with a definition in the
// textual puzzle format.
type samplePuzzle struct {
	name       string
	definition string
}

var samplePuzzles = []samplePuzzle{
	{"sample-1",
		"12\n" +
			"21\n"},
	{"sample-2",
		"aab\n" +
			"c3b\n" +
			"cdd\n" +
			"\n" +
			"a: 2*\n" +
			"b: 3/\n" +
			"c: 5+\n" +
			"d: 1-\n"},
	{"sample-3",
		"abbc\n" +
			"a2cc\n" +
			"ddef\n" +
			"4def\n" +
			"\n" +
			"a: 1-\n" +
			"b: 3-\n" +
			"c: 36*\n" +
			"d: 7+\n" +
			"e: 2/\n" +
			"f: 2/\n"},
	{"sample-4",
		"aabbc\n" +
			"ddeec\n" +
			"fgghh\n" +
			"fiijj\n" +
			"kkll4\n" +
			"\n" +
			"a: 2*\n" +
			"b: 7+\n" +
			"c: 5/\n" +
			"d: 1-\n" +
			"e: 9+\n" +
			"f: 12*\n" +
			"g: 20*\n" +
			"h: 2/\n" +
			"i: 4-\n" +
			"j: 5+\n" +
			"k: 5*\n" +
			"l: 1-\n"},
}

// insertSamples: validate and insert the sample puzzles.
func insertSamples(tx *pgx.Tx) error {
	for _, sample := range samplePuzzles {
		// the definitions must build real puzzles before anything
		// gets stored
		summary, err := puzzle.ReadString(sample.definition)
		if err != nil {
			return fmt.Errorf("Sample %q does not parse: %v", sample.name, err)
		}
		if _, err := puzzle.New(summary); err != nil {
			return fmt.Errorf("Sample %q is not a valid puzzle: %v", sample.name, err)
		}
		_, err = tx.Exec(
			"INSERT INTO puzzles (puzzleId, size, definition, created) "+
				"VALUES ($1, $2, $3, $4) ON CONFLICT (puzzleId) DO NOTHING",
			sample.name, int32(summary.Size), sample.definition, time.Now())
		if err != nil {
			return fmt.Errorf("Couldn't insert sample %q: %v", sample.name, err)
		}
	}
	return nil
}

// deleteSamples: remove the sample puzzles and their recorded
// solutions.
func deleteSamples(tx *pgx.Tx) error {
	for _, sample := range samplePuzzles {
		if _, err := tx.Exec(
			"DELETE FROM solutions WHERE puzzleId = $1", sample.name); err != nil {
			return fmt.Errorf("Couldn't delete solutions of sample %q: %v", sample.name, err)
		}
		if _, err := tx.Exec(
			"DELETE FROM puzzles WHERE puzzleId = $1", sample.name); err != nil {
			return fmt.Errorf("Couldn't delete sample %q: %v", sample.name, err)
		}
	}
	return nil
}
