package seed

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/accountd/internal/logging"
	"github.com/dmitrijs2005/accountd/internal/server/repositories/accounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

const seedYaml = `
accounts:
  - email: admin@example.com
    password: password123
    is_admin: true
  - email: ""
    password: ignored
`

func TestApply_CreatesAdmin(t *testing.T) {
	ctx := context.Background()
	repo := accounts.NewMemoryRepository()
	path := writeSeedFile(t, seedYaml)

	require.NoError(t, Apply(ctx, repo, path, bcrypt.MinCost, testLogger()))

	admin, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password123")))
}

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := accounts.NewMemoryRepository()
	path := writeSeedFile(t, seedYaml)

	require.NoError(t, Apply(ctx, repo, path, bcrypt.MinCost, testLogger()))
	first, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)

	// second run must not recreate or alter the account
	require.NoError(t, Apply(ctx, repo, path, bcrypt.MinCost, testLogger()))
	second, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}

func TestApply_MissingFile(t *testing.T) {
	err := Apply(context.Background(), accounts.NewMemoryRepository(), "no-such-file.yaml", bcrypt.MinCost, testLogger())
	assert.Error(t, err)
}

func TestApply_BadYaml(t *testing.T) {
	path := writeSeedFile(t, "accounts: [not, a, mapping")
	err := Apply(context.Background(), accounts.NewMemoryRepository(), path, bcrypt.MinCost, testLogger())
	assert.Error(t, err)
}
