package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/accountd/internal/common"
	accountsrepo "github.com/dmitrijs2005/accountd/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/accountd/internal/server/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	enqueued []string
}

func (f *fakeNotifier) Enqueue(accountID, email string) {
	f.enqueued = append(f.enqueued, email)
}

func newTestService(t *testing.T) (*Service, *accountsrepo.MemoryRepository, *token.Issuer, *fakeNotifier) {
	t.Helper()
	repo := accountsrepo.NewMemoryRepository()
	issuer := token.NewIssuer([]byte("test-secret"), time.Hour)
	n := &fakeNotifier{}
	// MinCost keeps the bcrypt work factor cheap in tests
	return NewService(repo, issuer, 4, n), repo, issuer, n
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	s, _, issuer, n := newTestService(t)

	account, tok, err := s.Register(ctx, " Alice@X.com ", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "alice@x.com", account.Email, "email must be normalized")
	assert.NotEmpty(t, account.ID)
	assert.False(t, account.IsAdmin)
	assert.NotEqual(t, "secret1", account.PasswordHash, "password must never be stored raw")

	subject, err := issuer.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, account.ID, subject, "token must round-trip to the account id")

	assert.Equal(t, []string{"alice@x.com"}, n.enqueued)
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	s, _, _, n := newTestService(t)

	_, _, err := s.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	_, _, err = s.Register(ctx, "ALICE@x.com", "other")
	assert.ErrorIs(t, err, common.ErrEmailTaken)
	assert.Len(t, n.enqueued, 1, "no notification for a failed registration")
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	s, _, _, _ := newTestService(t)

	_, _, err := s.Register(ctx, "", "secret1")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, _, err = s.Register(ctx, "bob@x.com", "")
	assert.ErrorIs(t, err, common.ErrWeakPassword)
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	ctx := context.Background()
	s, _, issuer, _ := newTestService(t)

	account, _, err := s.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	got, tok, err := s.Login(ctx, "Alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)

	subject, err := issuer.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, account.ID, subject)

	// wrong password and unknown account are indistinguishable
	_, _, err = s.Login(ctx, "alice@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
	_, _, err = s.Login(ctx, "ghost@x.com", "secret1")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestChangePassword_Success(t *testing.T) {
	ctx := context.Background()
	s, _, _, _ := newTestService(t)

	account, _, err := s.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = s.ChangePassword(ctx, account.ID, "secret1", "secret2", "secret2")
	require.NoError(t, err)

	// old password no longer verifies, new one does
	_, _, err = s.Login(ctx, "alice@x.com", "secret1")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
	_, _, err = s.Login(ctx, "alice@x.com", "secret2")
	assert.NoError(t, err)
}

func TestChangePassword_Failures(t *testing.T) {
	ctx := context.Background()
	s, _, _, _ := newTestService(t)

	account, _, err := s.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		current string
		new     string
		confirm string
		wantErr error
	}{
		{name: "missing current", current: "", new: "secret2", confirm: "secret2", wantErr: common.ErrMissingCurrentPassword},
		{name: "wrong current", current: "nope", new: "secret2", confirm: "secret2", wantErr: common.ErrIncorrectPassword},
		{name: "confirmation mismatch", current: "secret1", new: "secret2", confirm: "secret3", wantErr: common.ErrValidation},
		{name: "too short", current: "secret1", new: "abc", confirm: "abc", wantErr: common.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ChangePassword(ctx, account.ID, tt.current, tt.new, tt.confirm)
			assert.ErrorIs(t, err, tt.wantErr)

			// hash unchanged: original password still works
			_, _, err = s.Login(ctx, "alice@x.com", "secret1")
			assert.NoError(t, err)
		})
	}
}

func TestChangePassword_AccountGone(t *testing.T) {
	ctx := context.Background()
	s, _, _, _ := newTestService(t)

	_, err := s.ChangePassword(ctx, "ghost-id", "secret1", "secret2", "secret2")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestDelete_Success(t *testing.T) {
	ctx := context.Background()
	s, _, _, _ := newTestService(t)

	account, _, err := s.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, account.ID, "secret1"))

	// subsequent login fails as if the email were never registered
	_, _, err = s.Login(ctx, "alice@x.com", "secret1")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	// and the id no longer resolves
	_, err = s.Get(ctx, account.ID)
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestDelete_PasswordReverification(t *testing.T) {
	ctx := context.Background()
	s, _, _, _ := newTestService(t)

	account, _, err := s.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	err = s.Delete(ctx, account.ID, "")
	assert.ErrorIs(t, err, common.ErrMissingCurrentPassword)

	err = s.Delete(ctx, account.ID, "wrong")
	assert.ErrorIs(t, err, common.ErrIncorrectPassword)

	// account untouched in both cases
	_, _, err = s.Login(ctx, "alice@x.com", "secret1")
	assert.NoError(t, err)
}

func TestDelete_AlreadyGone(t *testing.T) {
	ctx := context.Background()
	s, _, _, _ := newTestService(t)

	err := s.Delete(ctx, "ghost-id", "secret1")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestAccountLifecycleScenario(t *testing.T) {
	// register -> change password -> delete, as one flow
	ctx := context.Background()
	s, _, issuer, _ := newTestService(t)

	account, t1, err := s.Register(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)

	subject, err := issuer.Validate(t1)
	require.NoError(t, err)
	require.Equal(t, account.ID, subject)

	_, err = s.ChangePassword(ctx, subject, "secret1", "secret2", "secret2")
	require.NoError(t, err)

	_, _, err = s.Login(ctx, "alice@x.com", "secret1")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
	_, _, err = s.Login(ctx, "alice@x.com", "secret2")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, subject, "secret2"))

	_, _, err = s.Login(ctx, "alice@x.com", "secret2")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	// a fresh registration with the same email is a new account
	fresh, _, err := s.Register(ctx, "alice@x.com", "secret3")
	require.NoError(t, err)
	assert.NotEqual(t, account.ID, fresh.ID)
}
