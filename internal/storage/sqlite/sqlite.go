// Package sqlite opens the local SQLite database used when no server
// database is configured
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

const pragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Open opens the database at path and checks it responds
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, herr.InvalidArgument("sqlite path is required")
	}

	db, err := sql.Open("sqlite", filepath.Clean(path)+pragmas)
	if err != nil {
		return nil, herr.Wrap(err, "open sqlite db").WithMeta("path", path)
	}
	// one writer keeps SQLITE_BUSY out of concurrent command handlers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, herr.WrapWithCode(err, herr.CodeUnavailable, "ping sqlite db").WithMeta("path", path)
	}

	return db, nil
}

// IsUniqueViolation reports whether err is a primary key or unique constraint
// failure
func IsUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
