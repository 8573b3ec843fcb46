package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/accountd/internal/server/repositories/accounts"
)

// InMemoryRepositoryManager backs the application with the in-memory
// accounts repository. Used in tests.
type InMemoryRepositoryManager struct {
	accounts accounts.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{accounts: accounts.NewMemoryRepository()}
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
