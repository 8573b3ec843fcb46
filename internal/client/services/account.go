// Package services contains application services for the accountd client.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountd/internal/client/gateway"
	"github.com/dmitrijs2005/accountd/internal/client/session"
)

// AccountService ties the server gateway to the local session: successful
// register/login persist auth state, account deletion clears it.
//
// All methods honor context cancellation/timeouts.
type AccountService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	ChangePassword(ctx context.Context, currentPassword, newPassword, confirmation string) error
	DeleteAccount(ctx context.Context, currentPassword string) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type accountService struct {
	gw      gateway.Gateway
	session *session.Manager
}

// NewAccountService constructs an AccountService bound to the given gateway
// and session manager.
func NewAccountService(gw gateway.Gateway, sess *session.Manager) AccountService {
	return &accountService{gw: gw, session: sess}
}

// Register creates the account and signs in with the returned token.
func (a *accountService) Register(ctx context.Context, email, password string) error {
	token, err := a.gw.Register(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.session.OnAuthSuccess(ctx, token, email); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

// Login authenticates and replaces the local session.
func (a *accountService) Login(ctx context.Context, email, password string) error {
	token, err := a.gw.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.session.OnAuthSuccess(ctx, token, email); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

// ChangePassword forwards to the gateway; the session token stays valid.
func (a *accountService) ChangePassword(ctx context.Context, currentPassword, newPassword, confirmation string) error {
	return a.gw.UpdatePassword(ctx, currentPassword, newPassword, confirmation)
}

// DeleteAccount removes the account server-side, then clears the local
// session. A rejected deletion leaves the session untouched.
func (a *accountService) DeleteAccount(ctx context.Context, currentPassword string) error {
	if err := a.gw.DeleteAccount(ctx, currentPassword); err != nil {
		return err
	}
	if err := a.session.Logout(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

// Logout clears local auth state only; session tokens are not revocable
// server-side.
func (a *accountService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// Ping proxies a liveness check to the gateway.
func (a *accountService) Ping(ctx context.Context) error {
	return a.gw.Ping(ctx)
}
