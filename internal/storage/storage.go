// Package storage holds the key-value backends the library blob is persisted in.
//
// Every backend tracks a revision per key and writes with compare-and-set, so a
// writer holding a stale revision fails with ErrRevisionConflict instead of
// silently overwriting a newer blob.
package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("storage: key not found")
	ErrRevisionConflict = errors.New("storage: revision conflict")
)

// Entry is a stored value and the revision it was read at.
type Entry struct {
	Value    []byte
	Revision int64
}

// KV is a compare-and-set key-value store.
//
// Put with expected == 0 creates the key and conflicts if it already exists;
// otherwise the stored revision must equal expected. Put returns the new revision.
type KV interface {
	Get(ctx context.Context, key string) (Entry, error)
	Put(ctx context.Context, key string, value []byte, expected int64) (int64, error)
	Close() error
}
