package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_CallsGoose(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &PostgresRepositoryManager{db: db}

	called := false
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, gdb *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		assert.Same(t, db, gdb)
		assert.Equal(t, ".", dir)
		return nil
	}
	defer func() { gooseUpContext = orig }()

	require.NoError(t, m.RunMigrations(context.Background()))
	assert.True(t, called)
}

func TestRunMigrations_WrapsError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &PostgresRepositoryManager{db: db}

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, gdb *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	err = m.RunMigrations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestInMemoryRepositoryManager(t *testing.T) {
	m := NewInMemoryRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background()))
	assert.Nil(t, m.Conn())
	assert.NotNil(t, m.Accounts())
	require.NoError(t, m.Close())
}
