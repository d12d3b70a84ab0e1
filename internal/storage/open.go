package storage

import (
	"context"
	"fmt"

	"github.com/dimitrije/sendit/internal/database"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open returns the backend selected by driver. Closing a postgres backend opened here
// also closes its pool.
func Open(ctx context.Context, driver, dataPath, databaseURL string) (KV, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(dataPath)
	case DriverSQLite:
		return OpenSQLite(dataPath)
	case DriverPostgres:
		db, err := database.New(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &ownedPostgres{Postgres: NewPostgres(db), db: db}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

type ownedPostgres struct {
	*Postgres
	db *database.DB
}

func (o *ownedPostgres) Close() error {
	o.db.Close()
	return nil
}
