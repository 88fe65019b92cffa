package cli

import (
	"context"
	"os"

	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/journal"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// SignUp prompts for a username and password and creates a new account.
// The session becomes active immediately; the password byte slice is wiped
// before returning.
func (a *App) SignUp(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userName, err = a.engine.SignUp(ctx, userName, password)
	if err != nil {
		return err
	}

	a.userName = userName
	printlnFn("Welcome,", userName)
	return nil
}

// Login prompts for credentials and authenticates. On success the user can
// opt into a persisted session ("remember me"); declining clears any
// previously remembered pointer. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userName, err = a.engine.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	a.userName = userName

	remember, err := getConfirmation(a.reader, "Stay signed in?", os.Stdout)
	if err != nil {
		return err
	}
	if remember {
		if err := a.session.Set(ctx, userName); err != nil {
			a.log.Warn(ctx, "session not persisted", "error", err)
		}
	} else if err := a.session.Clear(ctx); err != nil {
		a.log.Warn(ctx, "stale session pointer not cleared", "error", err)
	}

	printlnFn("Welcome,", userName)
	return nil
}

// Logout clears the persisted session pointer and all per-user state held
// in memory. The user's entries stay in storage.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.hasUndo = false
	a.lastDeletedKey = ""
	a.lastDeletedEntry = journal.Entry{}
	printlnFn("Logged out")
	return nil
}
