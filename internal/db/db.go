// Package db opens the generation history database.
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// StateDir is the per-workspace directory holding config and history.
	StateDir = ".ngfc"
	// FileName is the history database file inside StateDir.
	FileName = "history.db"
)

// PathFor returns the history database path for a workspace root.
func PathFor(root string) string {
	return filepath.Join(root, StateDir, FileName)
}

// Open opens (creating if needed) the database at path and brings its schema up to date.
// The special path ":memory:" opens a private in-memory database.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s directory", filepath.Dir(path))
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	// A second connection to :memory: would see an empty database.
	conn.SetMaxOpenConns(1)

	if err := RunMigrations(conn); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to initialize schema")
	}
	return conn, nil
}
