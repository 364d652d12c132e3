package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, password and full name and creates an account.
// A successful registration logs the user in immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, email, password, fullName)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.FullName))
	return nil
}

// Login prompts for credentials and authenticates. On failure the session
// stays as it was; the error kind decides the message shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Logged in as %s (%s)", user.Email, user.Role))
	return nil
}

// Logout drops the local session. It never calls the backend, so it works
// offline and against an already-expired token.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// Whoami shows the authenticated user.
func (a *App) Whoami(ctx context.Context) error {
	if err := a.guard(accessProtected); err != nil {
		return err
	}

	user := a.session.Current().User
	printlnFn(fmt.Sprintf("#%d %s <%s> role=%s", user.ID, user.FullName, user.Email, user.Role))
	return nil
}
