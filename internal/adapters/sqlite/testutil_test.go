// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/croft/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// Foreign keys are enabled so the cascade behavior under test matches what
// the real connection does.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedGoat inserts a test goat and returns its id.
func seedGoat(t *testing.T, db *sql.DB, name, breed, gender string) int64 {
	t.Helper()
	if name == "" {
		name = "Daisy"
	}
	if breed == "" {
		breed = "Beetal"
	}
	if gender == "" {
		gender = "Female"
	}
	result, err := db.Exec(
		"INSERT INTO goats (breed, name, gender) VALUES (?, ?, ?)",
		breed, name, gender,
	)
	if err != nil {
		t.Fatalf("failed to seed goat: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedVaccine inserts a test vaccine and returns its id.
func seedVaccine(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	if name == "" {
		name = "CDT"
	}
	result, err := db.Exec("INSERT INTO vaccines (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("failed to seed vaccine: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedDisease inserts a test disease and returns its id.
func seedDisease(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	if name == "" {
		name = "FootRot"
	}
	result, err := db.Exec("INSERT INTO diseases (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("failed to seed disease: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// countRows counts rows in a table via a bare COUNT(*).
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
