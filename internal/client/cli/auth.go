package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountd/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates a new account.
// A successful registration signs the user in immediately. The password
// byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.accountService.Register(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Printf("Registered and signed in as %s\n", email)
	return nil
}

// Login prompts for credentials and authenticates against the server. On
// success the session is persisted so the next start stays signed in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.accountService.Login(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Printf("Signed in as %s\n", email)
	return nil
}

// Logout clears the locally stored session. The server-side token stays
// valid until it expires.
func (a *App) Logout(ctx context.Context) error {
	if err := a.accountService.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}
