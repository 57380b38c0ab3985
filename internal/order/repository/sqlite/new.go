package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"customer-support-agent/internal/order/repository"
	"customer-support-agent/pkg/log"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const driverName = "sqlite"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open connects to the SQLite database at dsn.
func Open(ctx context.Context, dsn string, l log.Logger) (repository.Repository, error) {
	db, err := openDB(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY under the seeder.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", dsn, err)
	}
	return New(db, l), nil
}

// New wraps an open database handle.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("order/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) Close() error {
	return r.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("order/repository/sqlite.%s", method)
}
