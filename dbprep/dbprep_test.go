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
	"os"
	"testing"

	"github.com/jackc/pgx"
)

// requireStores skips the test when the cache or the database is
// not reachable, so the suite can run without local services.
func requireStores(t *testing.T) {
	t.Helper()
	if err := ClearCache(); err != nil {
		t.Skipf("No cache available: %v", err)
	}
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/kenat?sslmode=disable"
	}
	cfg, err := pgx.ParseURI(url)
	if err != nil {
		t.Skipf("Bad database URL %q: %v", url, err)
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		t.Skipf("No database available: %v", err)
	}
	conn.Close()
}

func TestClearCache(t *testing.T) {
	requireStores(t)
	if err := ClearCache(); err != nil {
		t.Errorf("Couldn't clear cache: %v", err)
	}
}

func TestSchemaUpDown(t *testing.T) {
	requireStores(t)
	if err := SchemaUp(); err != nil {
		t.Errorf("Schema up failed: %v", err)
	}
	if err := SchemaDown(); err != nil {
		t.Errorf("Schema down failed: %v", err)
	}
}

func TestSchemaDoubleUp(t *testing.T) {
	requireStores(t)
	if err := SchemaUp(); err != nil {
		t.Errorf("Schema up failed: %v", err)
	}
	if err := SchemaUp(); err != nil {
		t.Errorf("Schema 2nd up failed: %v", err)
	}
	if err := SchemaDown(); err != nil {
		t.Errorf("Schema down failed: %v", err)
	}
}

func TestSchemaDoubleDown(t *testing.T) {
	requireStores(t)
	if err := SchemaUp(); err != nil {
		t.Errorf("Schema up failed: %v", err)
	}
	if err := SchemaDown(); err != nil {
		t.Errorf("Schema down failed: %v", err)
	}
	if err := SchemaDown(); err != nil {
		t.Errorf("Schema 2nd down failed: %v", err)
	}
}

func TestSchemaVersion(t *testing.T) {
	requireStores(t)
	if err := SchemaUp(); err != nil {
		t.Fatalf("Schema up failed: %v", err)
	}
	version, err := SchemaVersion()
	if err != nil {
		t.Errorf("Couldn't get schema version: %v", err)
	}
	if version == 0 {
		t.Errorf("Schema version is 0 after an up migration")
	}
	if err := SchemaDown(); err != nil {
		t.Fatalf("Schema down failed: %v", err)
	}
	if version, err = SchemaVersion(); err != nil {
		t.Errorf("Couldn't get schema version: %v", err)
	} else if version != 0 {
		t.Errorf("Schema version is %d after a down migration", version)
	}
}

func TestDataUpDown(t *testing.T) {
	requireStores(t)
	if err := SchemaUp(); err != nil {
		t.Errorf("Schema up failed: %v", err)
	}
	if err := DataUp(); err != nil {
		t.Errorf("Data up failed: %v", err)
	}
	if err := DataUp(); err != nil {
		t.Errorf("Data 2nd up failed: %v", err)
	}
	if err := DataDown(); err != nil {
		t.Errorf("Data down failed: %v", err)
	}
	if err := DataDown(); err != nil {
		t.Errorf("Data 2nd down failed: %v", err)
	}
	if err := SchemaDown(); err != nil {
		t.Errorf("Schema down failed: %v", err)
	}
}

func TestEnsureRemoveData(t *testing.T) {
	requireStores(t)
	if err := EnsureData(); err != nil {
		t.Errorf("Ensure data failed: %v", err)
	}
	if err := EnsureData(); err != nil {
		t.Errorf("Ensure data 2nd time failed: %v", err)
	}
	if err := RemoveData(); err != nil {
		t.Errorf("Remove data failed: %v", err)
	}
	if err := RemoveData(); err != nil {
		t.Errorf("Remove data 2nd time failed: %v", err)
	}
}

func TestReinitializeAll(t *testing.T) {
	requireStores(t)
	if err := ReinitializeAll(); err != nil {
		t.Errorf("Reinitialize failed: %v", err)
	}
	version, err := SchemaVersion()
	if err != nil {
		t.Errorf("Couldn't get schema version: %v", err)
	}
	if version == 0 {
		t.Errorf("Schema version is 0 after reinitialization")
	}
}
