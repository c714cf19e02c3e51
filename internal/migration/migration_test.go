package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReadMigrationFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"002_add_index.sql": {Data: []byte("CREATE INDEX idx_a ON a(x);")},
		"001_init.sql":      {Data: []byte("CREATE TABLE a (x INTEGER);")},
		"README.md":         {Data: []byte("not a migration")},
	}

	r := NewRunner(nil, fsys)
	migrations, err := r.ReadMigrationFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(migrations) != 2 {
		t.Fatalf("got %d migrations, want 2", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "init" {
		t.Errorf("first migration = %d/%s, want 1/init", migrations[0].Version, migrations[0].Name)
	}
	if migrations[1].Version != 2 || migrations[1].Name != "add_index" {
		t.Errorf("second migration = %d/%s, want 2/add_index", migrations[1].Version, migrations[1].Name)
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "no underscore", file: "001.sql"},
		{name: "non-numeric version", file: "abc_init.sql"},
		{name: "zero version", file: "000_init.sql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(nil, fstest.MapFS{tt.file: {Data: []byte("SELECT 1;")}})
			if _, err := r.ReadMigrationFiles(); err == nil {
				t.Errorf("filename %s accepted", tt.file)
			}
		})
	}
}

func TestReadMigrationFilesRejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"001_first.sql":  {Data: []byte("SELECT 1;")},
		"001_second.sql": {Data: []byte("SELECT 2;")},
	}
	r := NewRunner(nil, fsys)
	if _, err := r.ReadMigrationFiles(); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("duplicate versions accepted: %v", err)
	}
}

func TestApplyMigrations(t *testing.T) {
	db := testDB(t)
	fsys := fstest.MapFS{
		"001_init.sql":     {Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY);")},
		"002_add_name.sql": {Data: []byte("ALTER TABLE things ADD COLUMN name TEXT;")},
	}

	r := NewRunner(db, fsys)
	applied, err := r.ApplyMigrations(nil)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// The migrated schema is usable.
	if _, err := db.Exec("INSERT INTO things (id, name) VALUES ('a', 'b')"); err != nil {
		t.Errorf("migrated schema unusable: %v", err)
	}

	// A second run applies nothing.
	applied, err = r.ApplyMigrations(nil)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 0 {
		t.Errorf("second run applied = %d, want 0", applied)
	}
}

func TestApplyMigrationsRollsBackFailedMigration(t *testing.T) {
	db := testDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE things (id TEXT);")},
		"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
	}

	r := NewRunner(db, fsys)
	applied, err := r.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("broken migration applied without error")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1 (only the good migration)", applied)
	}

	version, verr := r.CurrentVersion()
	if verr != nil {
		t.Fatal(verr)
	}
	if version != 1 {
		t.Errorf("version = %d after failure, want 1", version)
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := testDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE things (id TEXT);")},
	}

	r := NewRunner(db, fsys)
	if _, err := r.ApplyMigrations(nil); err != nil {
		t.Fatal(err)
	}

	// Simulate a database touched by a newer build.
	if _, err := db.Exec("UPDATE schema_migrations SET version = 99"); err != nil {
		t.Fatal(err)
	}

	if err := r.ValidateVersion(); err == nil {
		t.Error("newer schema version accepted")
	}
}
