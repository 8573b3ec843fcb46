package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountd/internal/common"
)

// Whoami prints the signed-in email.
func (a *App) Whoami(ctx context.Context) error {
	st := a.session.Current()
	if !st.Authenticated() {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Println(st.Email)
	return nil
}

// Passwd changes the account password. The current password is required and
// the new one must be entered twice.
func (a *App) Passwd(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Enter current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	newPassword, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirmation, err := getPassword(os.Stdout, "Repeat new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	if err := a.accountService.ChangePassword(ctx, string(current), string(newPassword), string(confirmation)); err != nil {
		return err
	}

	fmt.Println("Password changed")
	return nil
}

// Delete permanently removes the account. The user must type "yes" and then
// re-enter the current password; possession of the session alone is not
// enough.
func (a *App) Delete(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "This permanently deletes your account. Type 'yes' to continue", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled")
		return nil
	}

	password, err := getPassword(os.Stdout, "Enter current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.accountService.DeleteAccount(ctx, string(password)); err != nil {
		return err
	}

	fmt.Println("Account deleted")
	return nil
}
