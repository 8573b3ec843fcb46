// Package seed provisions accounts from a YAML file at startup.
//
// This is the only path that can set the administrator flag; the public
// endpoints never touch it. Apply is idempotent so it can run on every
// start: accounts that already exist are left untouched.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountd/internal/common"
	"github.com/dmitrijs2005/accountd/internal/logging"
	"github.com/dmitrijs2005/accountd/internal/server/models"
	"github.com/dmitrijs2005/accountd/internal/server/repositories/accounts"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Accounts []struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		IsAdmin  bool   `yaml:"is_admin"`
	} `yaml:"accounts"`
}

// Apply reads the seed file and creates any listed account that does not
// exist yet.
func Apply(ctx context.Context, repo accounts.Repository, path string, bcryptCost int, logger logging.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, entry := range sf.Accounts {
		if entry.Email == "" || entry.Password == "" {
			continue
		}

		if _, err := repo.GetByEmail(ctx, entry.Email); err == nil {
			continue
		} else if !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("seed lookup: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(entry.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("seed hashing: %w", err)
		}

		account := &models.Account{
			ID:           uuid.NewString(),
			Email:        entry.Email,
			PasswordHash: string(hash),
			IsAdmin:      entry.IsAdmin,
		}

		if _, err := repo.Create(ctx, account); err != nil {
			return fmt.Errorf("seed create: %w", err)
		}

		logger.Info(ctx, "seeded account", "email", entry.Email, "is_admin", entry.IsAdmin)
	}

	return nil
}
