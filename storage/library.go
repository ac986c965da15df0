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

package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx"

	"github.com/kendoku/kenat.go/puzzle"
)

/*

puzzle library

*/

// A PuzzleEntry is the stored form of a library puzzle: its id,
// its size, and its definition in the textual puzzle format.  It
// is JSON serializable so it can go into the cache as well as
// the database.
type PuzzleEntry struct {
	PuzzleId   string // unique name of the puzzle
	Size       int32  // side length
	Definition string // textual puzzle definition
}

// LoadEntry first checks the cache, then the database, for the
// entry with the given id.  If it loads from the database, it
// caches the result.  It returns nil when no store has the
// entry; storage failures panic.
func LoadEntry(id string) *PuzzleEntry {
	pe := &PuzzleEntry{PuzzleId: id}
	if pe.cacheLoad() {
		return pe
	}
	// cache miss, load from database and save to cache
	if !pe.databaseLoad() {
		return nil
	}
	pe.cacheInsert()
	return pe
}

// ListEntries returns the library entries ordered by id.  The
// list always comes from the database: it is the library's
// source of truth, and listing is rare.
func ListEntries() []*PuzzleEntry {
	var entries []*PuzzleEntry
	body := func(tx *pgx.Tx) error {
		rows, err := tx.Query(
			"SELECT puzzleId, size, definition FROM puzzles ORDER BY puzzleId")
		if err != nil {
			return fmt.Errorf("Failure listing puzzles: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			pe := &PuzzleEntry{}
			if err := rows.Scan(&pe.PuzzleId, &pe.Size, &pe.Definition); err != nil {
				return fmt.Errorf("Failure reading puzzle list: %v", err)
			}
			entries = append(entries, pe)
		}
		return rows.Err()
	}
	pgExecute(body)
	return entries
}

// InsertEntry saves a new library puzzle to the database and the
// cache.  Panics if there is already a saved entry with the same
// id.
func InsertEntry(pe *PuzzleEntry) {
	pe.databaseInsert()
	pe.cacheInsert()
}

// MakePuzzle builds the puzzle described by an entry.  Library
// definitions were validated on the way in, so a failure here
// means a corrupted store, which panics.
func (pe *PuzzleEntry) MakePuzzle() *puzzle.Puzzle {
	summary, e := puzzle.ReadString(pe.Definition)
	if e != nil {
		panic(fmt.Errorf("Failed to read stored puzzle %q: %v", pe.PuzzleId, e))
	}
	p, e := puzzle.New(summary)
	if e != nil {
		panic(fmt.Errorf("Failed to create stored puzzle %q: %v", pe.PuzzleId, e))
	}
	return p
}

// key: compute the cache key for a PuzzleEntry.
func (pe *PuzzleEntry) key() string {
	return "PID:" + pe.PuzzleId
}

// cacheLoad: load an already cached puzzle entry.  Returns
// whether the entry was found in the cache.
func (pe *PuzzleEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", pe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var spe *PuzzleEntry
	if err := json.Unmarshal(bytes, &spe); err != nil {
		panic(fmt.Errorf("Failed to unmarshal puzzle entry %q: %v", pe.PuzzleId, err))
	}
	if spe.PuzzleId != pe.PuzzleId {
		panic(fmt.Errorf("Cached puzzle entry (id: %q) found for puzzle %q!",
			spe.PuzzleId, pe.PuzzleId))
	}
	*pe = *spe
	return true
}

// cacheInsert: insert a puzzle entry into the cache.  Replaces
// any existing entry with the same id.
func (pe *PuzzleEntry) cacheInsert() {
	bytes, e := json.Marshal(pe)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal puzzle entry %q: %v", pe.PuzzleId, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", pe.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
}

// databaseLoad: load a puzzle entry from the database.  Returns
// whether a saved entry with the given id exists.
func (pe *PuzzleEntry) databaseLoad() bool {
	found := true
	body := func(tx *pgx.Tx) error {
		row := tx.QueryRow(
			"SELECT size, definition FROM puzzles WHERE puzzleId = $1", pe.PuzzleId)
		if err := row.Scan(&pe.Size, &pe.Definition); err != nil {
			if err == pgx.ErrNoRows {
				found = false
				return nil
			}
			return fmt.Errorf("Failure looking up puzzle %q: %v", pe.PuzzleId, err)
		}
		return nil
	}
	pgExecute(body)
	return found
}

// databaseInsert: insert a new puzzle entry into the database.
// Panics if there is already a saved entry with the given id.
func (pe *PuzzleEntry) databaseInsert() {
	body := func(tx *pgx.Tx) (err error) {
		_, err = tx.Exec(
			"INSERT INTO puzzles (puzzleId, size, definition, created) "+
				"VALUES ($1, $2, $3, $4)",
			pe.PuzzleId, pe.Size, pe.Definition, time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	pgExecute(body)
}
