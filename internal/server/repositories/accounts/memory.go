package accounts

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/accountd/internal/common"
	"github.com/dmitrijs2005/accountd/internal/server/models"
)

// MemoryRepository is an in-memory Repository used by tests and local
// experiments. Mutations on a single account are serialized by the mutex,
// mirroring the per-row guarantees of the Postgres implementation.
type MemoryRepository struct {
	mu       sync.Mutex
	accounts map[string]*models.Account // keyed by ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]*models.Account)}
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, account.Email) {
			return nil, common.ErrEmailTaken
		}
	}

	now := time.Now()
	stored := *account
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.accounts[stored.ID] = &stored

	copy := stored
	return &copy, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copy := *a
	return &copy, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, email) {
			copy := *a
			return &copy, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return common.ErrNotFound
	}
	a.PasswordHash = passwordHash
	a.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.accounts, id)
	return nil
}
