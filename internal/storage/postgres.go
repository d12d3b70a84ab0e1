package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/sendit/internal/database"
	"github.com/jackc/pgx/v5"
)

// Postgres keeps entries in the kv_store table created by database.Migrate.
type Postgres struct {
	db *database.DB
}

func NewPostgres(db *database.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) (Entry, error) {
	var e Entry
	err := p.db.Pool.QueryRow(ctx, `
		SELECT value, revision FROM kv_store WHERE key = $1
	`, key).Scan(&e.Value, &e.Revision)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return e, nil
}

func (p *Postgres) Put(ctx context.Context, key string, value []byte, expected int64) (int64, error) {
	var (
		rev int64
		err error
	)
	if expected == 0 {
		err = p.db.Pool.QueryRow(ctx, `
			INSERT INTO kv_store (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING
			RETURNING revision
		`, key, value).Scan(&rev)
	} else {
		err = p.db.Pool.QueryRow(ctx, `
			UPDATE kv_store
			SET value = $1, revision = revision + 1, updated_at = NOW()
			WHERE key = $2 AND revision = $3
			RETURNING revision
		`, value, key, expected).Scan(&rev)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrRevisionConflict
		}
		return 0, fmt.Errorf("failed to write %q: %w", key, err)
	}
	return rev, nil
}

// Close is a no-op; the pool belongs to the caller.
func (p *Postgres) Close() error {
	return nil
}
