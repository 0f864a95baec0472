// Package storage keeps a SQLite catalog of analysis runs.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned when no run matches a lookup.
var ErrNotFound = errors.New("not found")

// DB wraps a sql.DB for the run catalog.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema. ":memory:" gives a private in-memory catalog.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open db")
	}
	// A single connection keeps ":memory:" databases shared and serializes
	// writers from the analysis goroutine.
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "apply schema")
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
