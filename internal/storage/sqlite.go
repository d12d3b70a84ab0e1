package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteFileName = "sendit.db"

// SQLite keeps entries in the kv_store table of a local database file.
type SQLite struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLite opens (creating if needed) <dataPath>/sendit.db and migrates it.
func OpenSQLite(dataPath string) (*SQLite, error) {
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataPath, sqliteFileName)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps every statement on one SQLite handle.
	db.SetMaxOpenConns(1)

	migrations := NewMigrationManager(db)
	if err := migrations.Initialize(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrations.Up(); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Printf("SQLite database initialized at: %s", dbPath)
	return &SQLite{db: db, dbPath: dbPath}, nil
}

func (s *SQLite) DB() *sql.DB {
	return s.db
}

func (s *SQLite) Get(ctx context.Context, key string) (Entry, error) {
	var (
		value string
		e     Entry
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT value, revision FROM kv_store WHERE key = ?`, key,
	).Scan(&value, &e.Revision)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("failed to read %q: %w", key, err)
	}
	e.Value = []byte(value)
	return e, nil
}

func (s *SQLite) Put(ctx context.Context, key string, value []byte, expected int64) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if expected == 0 {
		res, err = s.db.ExecContext(ctx, `
			INSERT INTO kv_store (key, value, revision, created_at, updated_at)
			VALUES (?, ?, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO NOTHING
		`, key, string(value))
	} else {
		res, err = s.db.ExecContext(ctx, `
			UPDATE kv_store
			SET value = ?, revision = revision + 1, updated_at = CURRENT_TIMESTAMP
			WHERE key = ? AND revision = ?
		`, string(value), key, expected)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write %q: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to write %q: %w", key, err)
	}
	if n == 0 {
		return 0, ErrRevisionConflict
	}
	return expected + 1, nil
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
