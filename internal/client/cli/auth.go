package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/avolkovs/bookmarket-cli/internal/client/models"
	"github.com/avolkovs/bookmarket-cli/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// Failure modes are reported distinctly: a rejected credential exchange
// leaves the previous session intact, while a profile fetch failure after
// a successful exchange means the session was torn down and the user must
// retry from scratch.
func (a *App) Login(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	err = a.session.Login(ctx, userName, password)

	var authErr *session.AuthError
	switch {
	case errors.As(err, &authErr):
		printlnFn("Login failed:", authErr.Reason)
		return nil
	case errors.Is(err, session.ErrPostLoginProfileFetch):
		printlnFn("Logged in, but loading your profile failed; please log in again")
		return nil
	case err != nil:
		return err
	}

	snap := a.session.Snapshot()
	printlnFn(fmt.Sprintf("Welcome, %s (%s)!", snap.User.Username, snap.User.Role))
	return nil
}

// Register prompts for account details and creates an account. There is
// no auto-login; the user logs in explicitly afterwards.
func (a *App) Register(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	reg := models.Registration{
		Username:    userName,
		Password:    password,
		Email:       email,
		PhoneNumber: phone,
	}
	if err := a.session.Register(ctx, reg); err != nil {
		return err
	}

	printlnFn("Account created, you can log in now")
	return nil
}

// Logout ends the session. Safe to repeat.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// Whoami shows the logged-in user and the access token expiry.
func (a *App) Whoami(ctx context.Context, _ []string) error {
	snap := a.session.Snapshot()
	u := snap.User
	printlnFn(fmt.Sprintf("%s <%s> role=%s staff=%v", u.Username, u.Email, u.Role, u.IsStaff))

	if exp, err := session.TokenExpiry(snap.AccessToken); err == nil {
		printlnFn("Access token expires:", exp.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// RequestPasswordReset asks the server for a reset code.
func (a *App) RequestPasswordReset(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	contact, err := getSimpleText(a.reader, "Enter email or phone number", os.Stdout)
	if err != nil {
		return err
	}

	code, err := a.session.RequestPasswordReset(ctx, userName, contact)
	if err != nil {
		return err
	}
	if code != "" {
		printlnFn("Reset code:", code)
	} else {
		printlnFn("Reset code sent")
	}
	return nil
}

// ConfirmPasswordReset completes a password reset with the received code.
func (a *App) ConfirmPasswordReset(ctx context.Context, _ []string) error {
	contact, err := getSimpleText(a.reader, "Enter email or phone number", os.Stdout)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter reset code", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.ConfirmPasswordReset(ctx, contact, code, password); err != nil {
		return err
	}
	printlnFn("Password changed, you can log in now")
	return nil
}
