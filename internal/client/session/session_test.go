package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/accountd/internal/client/repositories/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *sql.DB) {
	t.Helper()
	db, err := state.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewManager(db), db
}

func TestRestore_EmptyStore(t *testing.T) {
	m, _ := newTestManager(t)

	st := m.Restore(context.Background())
	assert.False(t, st.Authenticated())
	assert.Equal(t, AuthState{}, m.Current())
}

func TestOnAuthSuccess_PersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	m, db := newTestManager(t)

	require.NoError(t, m.OnAuthSuccess(ctx, "tok-123", "alice@example.com"))
	assert.True(t, m.Current().Authenticated())

	// a fresh manager over the same store sees the session
	m2 := NewManager(db)
	st := m2.Restore(ctx)
	assert.Equal(t, AuthState{Token: "tok-123", Email: "alice@example.com"}, st)
}

func TestRestore_PartialStateIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	m, db := newTestManager(t)

	// token without email must not surface as an authenticated session
	repo := state.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "token", "orphan"))

	st := m.Restore(ctx)
	assert.False(t, st.Authenticated())
	assert.Equal(t, AuthState{}, st)
}

func TestLogout_ClearsStoreAndMemory(t *testing.T) {
	ctx := context.Background()
	m, db := newTestManager(t)

	require.NoError(t, m.OnAuthSuccess(ctx, "tok-123", "alice@example.com"))
	require.NoError(t, m.Logout(ctx))

	assert.False(t, m.Current().Authenticated())

	m2 := NewManager(db)
	assert.False(t, m2.Restore(ctx).Authenticated())
}

func TestSubscribe_OrderedAndConsistent(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	var order []string
	m.Subscribe(func(st AuthState) {
		order = append(order, "first")
		// a subscriber never sees token without email
		assert.Equal(t, st.Token != "", st.Email != "")
	})
	m.Subscribe(func(st AuthState) {
		order = append(order, "second")
	})

	require.NoError(t, m.OnAuthSuccess(ctx, "tok-123", "alice@example.com"))
	require.NoError(t, m.Logout(ctx))

	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
}
