// Package accounts contains the credential store: one record per account
// (email, salted password hash, administrator flag).
package accounts

import (
	"context"

	"github.com/dmitrijs2005/accountd/internal/server/models"
)

// Repository persists accounts.
//
// Expected failures are tagged with sentinels from the common package:
// Create returns common.ErrEmailTaken on a duplicate email, lookups return
// common.ErrNotFound, and single-row mutations return common.ErrNotFound
// when the row is already gone. Unexpected conditions (storage unreachable)
// are wrapped and propagate as-is.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
