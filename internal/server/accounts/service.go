// Package accounts implements the account lifecycle: registration, login,
// password change, and deletion with password re-verification.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountd/internal/common"
	"github.com/dmitrijs2005/accountd/internal/server/models"
	"github.com/dmitrijs2005/accountd/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/accountd/internal/server/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength applies wherever a new password is chosen through the
// change-password operation.
const MinPasswordLength = 6

// WelcomeNotifier receives a fire-and-forget notification after a
// successful registration. Implementations must not block.
type WelcomeNotifier interface {
	Enqueue(accountID, email string)
}

// Service holds the business logic over the credential store and the token
// issuer. Token possession alone is never sufficient for deletion: the
// current plaintext password is re-verified first.
type Service struct {
	repo       accounts.Repository
	issuer     *token.Issuer
	bcryptCost int
	notifier   WelcomeNotifier
}

func NewService(repo accounts.Repository, issuer *token.Issuer, bcryptCost int, notifier WelcomeNotifier) *Service {
	return &Service{
		repo:       repo,
		issuer:     issuer,
		bcryptCost: bcryptCost,
		notifier:   notifier,
	}
}

// normalizeEmail makes the login key case-insensitive at the service
// boundary; the DB unique index on lower(email) is the backstop.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashPassword is a seam for tests that need a deterministic failure.
var hashPassword = bcrypt.GenerateFromPassword

// Register creates a new account and issues a session token for it.
// Expected failures: common.ErrValidation (empty email),
// common.ErrWeakPassword (empty password), common.ErrEmailTaken.
func (s *Service) Register(ctx context.Context, email, password string) (*models.Account, string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, "", common.ErrValidation
	}
	if password == "" {
		return nil, "", common.ErrWeakPassword
	}

	hash, err := hashPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing error: %w", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, "", common.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("error creating account: %w", err)
	}

	tokenString, err := s.issuer.Issue(account.ID)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Enqueue(account.ID, account.Email)
	}

	return account, tokenString, nil
}

// Login verifies credentials and issues a session token. A missing account
// and a wrong password both map to common.ErrUnauthenticated so the caller
// cannot probe which emails are registered.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthenticated
		}
		return nil, "", fmt.Errorf("error loading account: %w", err)
	}

	if !s.verifyPassword(account, password) {
		return nil, "", common.ErrUnauthenticated
	}

	tokenString, err := s.issuer.Issue(account.ID)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return account, tokenString, nil
}

// Get resolves an authenticated account ID. A missing row (e.g. the account
// was deleted after the token was issued) maps to common.ErrUnauthenticated.
func (s *Service) Get(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("error loading account: %w", err)
	}
	return account, nil
}

// ChangePassword replaces the account's password after re-verifying the
// current one. The new password must match its confirmation and be at least
// MinPasswordLength characters.
func (s *Service) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword, confirmation string) (*models.Account, error) {
	account, err := s.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if currentPassword == "" {
		return nil, common.ErrMissingCurrentPassword
	}
	if !s.verifyPassword(account, currentPassword) {
		return nil, common.ErrIncorrectPassword
	}
	if newPassword != confirmation {
		return nil, common.ErrValidation
	}
	if len(newPassword) < MinPasswordLength {
		return nil, common.ErrWeakPassword
	}

	hash, err := hashPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing error: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, account.ID, string(hash)); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// deleted concurrently; the prior state is gone, fail cleanly
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error updating password: %w", err)
	}

	account.PasswordHash = string(hash)
	return account, nil
}

// Delete permanently removes the authenticated account after re-verifying
// the current password. An absent password field and a wrong password are
// distinct failures so the client can show an accurate message. There is no
// compensating action once deletion succeeds.
func (s *Service) Delete(ctx context.Context, accountID, currentPassword string) error {
	account, err := s.Get(ctx, accountID)
	if err != nil {
		return err
	}

	if currentPassword == "" {
		return common.ErrMissingCurrentPassword
	}
	if !s.verifyPassword(account, currentPassword) {
		return common.ErrIncorrectPassword
	}

	if err := s.repo.Delete(ctx, account.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error deleting account: %w", err)
	}

	return nil
}

// verifyPassword recomputes the hash with the stored salt and compares in
// constant time (bcrypt does both); raw strings are never compared.
func (s *Service) verifyPassword(account *models.Account, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(candidate)) == nil
}
