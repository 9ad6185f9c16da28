// Package sqlite implements the repository ports on a local SQLite file.
// Every query is scoped by the verified caller identity; see the individual
// repositories for the role predicates.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if needed) the SQLite database at path. ":memory:" is
// supported for tests. Foreign keys are enforced.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		// Every pool connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// Migrate bootstraps the schema. Statements are idempotent; full migration
// tooling is out of scope.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL UNIQUE,
			first_name    TEXT NOT NULL,
			last_name     TEXT NOT NULL,
			phone         TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL,
			created_at    TIMESTAMP NOT NULL,
			updated_at    TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name       TEXT NOT NULL,
			last_name        TEXT NOT NULL,
			email            TEXT NOT NULL,
			phone            TEXT NOT NULL DEFAULT '',
			company_name     TEXT NOT NULL DEFAULT '',
			sales_contact_id INTEGER NOT NULL REFERENCES users(id),
			created_at       TIMESTAMP NOT NULL,
			updated_at       TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contracts (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			client_id        INTEGER NOT NULL REFERENCES clients(id),
			sales_contact_id INTEGER NOT NULL REFERENCES users(id),
			total_amount     REAL NOT NULL,
			amount_due       REAL NOT NULL,
			signed           INTEGER NOT NULL DEFAULT 0,
			created_at       TIMESTAMP NOT NULL,
			updated_at       TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			contract_id        INTEGER NOT NULL REFERENCES contracts(id),
			client_id          INTEGER NOT NULL REFERENCES clients(id),
			support_contact_id INTEGER REFERENCES users(id),
			name               TEXT NOT NULL,
			location           TEXT NOT NULL DEFAULT '',
			starts_at          TIMESTAMP NOT NULL,
			ends_at            TIMESTAMP NOT NULL,
			attendees          INTEGER NOT NULL DEFAULT 0,
			notes              TEXT NOT NULL DEFAULT '',
			created_at         TIMESTAMP NOT NULL,
			updated_at         TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
