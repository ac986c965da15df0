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

// Prepare the kenat storage system: bring the database schema up
// to date and load the sample puzzle library.  Run this once
// before the first server start, or any time after changing the
// migrations.
package main

import (
	"log"

	"github.com/kendoku/kenat.go/dbprep"
)

func main() {
	log.Printf("Preparing data storage...")
	if err := dbprep.EnsureData(); err != nil {
		log.Fatalf("Couldn't prepare storage: %v", err)
	}
	version, err := dbprep.SchemaVersion()
	if err != nil {
		log.Fatalf("Couldn't read schema version: %v", err)
	}
	log.Printf("Database ready at schema version %d.", version)
}
