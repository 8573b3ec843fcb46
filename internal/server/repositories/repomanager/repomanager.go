// Package repomanager wires repository constructors to a database handle
// and runs schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/accountd/internal/server/repositories/accounts"
)

// RepositoryManager bundles the store of record behind a single interface
// so the application can swap Postgres for the in-memory variant in tests.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
	Close() error
}
