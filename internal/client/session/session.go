// Package session keeps the client's auth state consistent between memory
// and the local state database. Token and email always change together;
// subscribers never observe one without the other.
package session

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/accountd/internal/client/repositories/state"
	"github.com/dmitrijs2005/accountd/internal/dbx"
)

const (
	keyToken = "token"
	keyEmail = "email"
)

// AuthState is the client's view of the current session. The zero value
// means logged out.
type AuthState struct {
	Token string
	Email string
}

// Authenticated reports whether the state represents a signed-in session.
func (s AuthState) Authenticated() bool {
	return s.Token != "" && s.Email != ""
}

// Manager owns the in-memory auth state and its durable copy.
type Manager struct {
	db *sql.DB

	mu          sync.Mutex
	current     AuthState
	subscribers []func(AuthState)
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

func (m *Manager) repo() state.Repository {
	return state.NewSQLiteRepository(m.db)
}

// Current returns the in-memory auth state.
func (m *Manager) Current() AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe registers a callback invoked synchronously, in registration
// order, after every state change.
func (m *Manager) Subscribe(fn func(AuthState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Restore loads the persisted session. Missing or partial state yields the
// logged-out zero value; it is never an error the UI has to handle.
func (m *Manager) Restore(ctx context.Context) AuthState {
	repo := m.repo()

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return m.swap(AuthState{})
	}
	email, err := repo.Get(ctx, keyEmail)
	if err != nil {
		return m.swap(AuthState{})
	}

	st := AuthState{Token: token, Email: email}
	if !st.Authenticated() {
		st = AuthState{}
	}
	return m.swap(st)
}

// OnAuthSuccess persists the new token and email in one transaction, then
// swaps the in-memory state and notifies subscribers.
func (m *Manager) OnAuthSuccess(ctx context.Context, token, email string) error {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, keyEmail, email)
	})
	if err != nil {
		return err
	}

	m.swap(AuthState{Token: token, Email: email})
	return nil
}

// Logout clears both the durable and in-memory state and notifies
// subscribers.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.repo().Clear(ctx); err != nil {
		return err
	}

	m.swap(AuthState{})
	return nil
}

// swap replaces the in-memory state and notifies subscribers outside the
// lock so a subscriber can call back into the manager.
func (m *Manager) swap(st AuthState) AuthState {
	m.mu.Lock()
	m.current = st
	subs := make([]func(AuthState), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
	return st
}
