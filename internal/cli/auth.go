package cli

import (
	"context"
	"errors"
	"os"

	"github.com/guilhermegsr/password-manager-LP/internal/common"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getOptionalText = GetOptionalText
var getPassword = GetPassword
var getMultiline = GetMultiline

// reportErr prints a user-facing message for err and returns it unchanged.
// Validation messages carry their own detail; everything else maps to a fixed
// phrase so internals never leak to the prompt.
func reportErr(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		printlnFn(err.Error())
	case errors.Is(err, common.ErrAuthentication):
		printlnFn("Authentication failed")
	case errors.Is(err, common.ErrNotFound):
		printlnFn("Not found")
	case errors.Is(err, common.ErrIntegrity):
		printlnFn("Integrity check failed: the stored data may be corrupted or tampered with")
	default:
		printlnFn("Something went wrong, see the log for details")
	}
	return err
}

// Register prompts the user for a username and master passphrase and attempts
// to create a new account with a fresh vault.
//
// On success it prints "Success!" and returns nil. The passphrase byte slice
// is securely wiped before returning. Registering does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	passphrase, err := getPassword("Enter master passphrase", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	if err := a.authService.Register(ctx, username, passphrase); err != nil {
		return reportErr(err)
	}

	printlnFn("Success!")
	return nil
}

// Login prompts for credentials and tries to unlock the vault. On success the
// resulting session replaces any previous one; the passphrase is securely
// wiped before returning and only the unwrapped vault key stays in memory.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	passphrase, err := getPassword("Enter master passphrase", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	session, err := a.authService.Login(ctx, username, passphrase)
	if err != nil {
		return reportErr(err)
	}

	a.session.Destroy()
	a.session = session
	printlnFn("Vault unlocked")
	return nil
}

// Logout destroys the in-memory session and its key material.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx, a.session); err != nil {
		return err
	}
	a.session = nil
	printlnFn("Vault locked")
	return nil
}
