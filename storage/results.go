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

solver results

Solving a library puzzle always produces the same Result, so
results are cached by puzzle id and recorded in the database for
posterity.  Results of ad-hoc puzzles posted to the service have
no id and are never stored.

*/

// LoadResult returns the cached result for a library puzzle, or
// nil when none has been stored yet.
func LoadResult(id string) *puzzle.Result {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", resultKey(id)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading result %q: %v", id, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return nil
	}
	var result *puzzle.Result
	if err := json.Unmarshal(bytes, &result); err != nil {
		panic(fmt.Errorf("Failed to unmarshal result %q: %v", id, err))
	}
	return result
}

// SaveResult caches a library puzzle's result and records it in
// the database.  Re-solving a puzzle overwrites the prior
// record; the result is the same either way.
func SaveResult(id string, result *puzzle.Result) {
	bytes, e := json.Marshal(result)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal result %q: %v", id, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", resultKey(id), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving result %q: %v", id, err)
		}
		return
	}
	rdExecute(body)
	dbBody := func(tx *pgx.Tx) (err error) {
		_, err = tx.Exec(
			"INSERT INTO solutions (puzzleId, solved, valueList, steps, created) "+
				"VALUES ($1, $2, $3, $4, $5) "+
				"ON CONFLICT (puzzleId) DO UPDATE "+
				"SET solved = $2, valueList = $3, steps = $4, created = $5",
			id, result.Solved, intList(result.Values), int32(result.Steps), time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving result %q: %v", id, err)
		}
		return
	}
	pgExecute(dbBody)
}

// resultKey: compute the cache key for a puzzle's result.
func resultKey(id string) string {
	return "RES:" + id
}

// intList widens result values for the database driver.
func intList(values []int) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}
