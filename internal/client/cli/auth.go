package cli

import (
	"context"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Register prompts for username, email and password, creates the account
// and logs in. On success the dashboard is shown. The password byte slice
// is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Choose a password (at least 8 characters)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, userName, email, password); err != nil {
		a.log.Info(ctx, "registration failed", "username", userName, "err", err)
		a.reportAuthError(err)
		return err
	}

	ui.Banner(a.out, ui.BannerSuccess, "Account created. Welcome, %s!", userName)
	return a.Dashboard(ctx)
}

// Login prompts for credentials and stores the token the backend issues.
// On success the dashboard is shown, so the user lands on it directly.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, userName, password); err != nil {
		a.log.Info(ctx, "login unsuccessful", "username", userName, "err", err)
		a.reportAuthError(err)
		return err
	}

	a.log.Info(ctx, "login successful", "username", userName)
	ui.Banner(a.out, ui.BannerSuccess, "Logged in as %s.", userName)
	return a.Dashboard(ctx)
}

// Logout forgets the token and unmounts the current view.
func (a *App) Logout(ctx context.Context) error {
	a.unmount()
	if err := a.auth.Logout(ctx); err != nil {
		ui.Banner(a.out, ui.BannerError, "Could not log out: %v", err)
		return err
	}
	ui.Banner(a.out, ui.BannerInfo, "Logged out.")
	return nil
}

func (a *App) reportAuthError(err error) {
	switch api.KindOf(err) {
	case api.KindUnauthorized:
		ui.Banner(a.out, ui.BannerError, "Incorrect username or password.")
	case api.KindUnknown:
		ui.Banner(a.out, ui.BannerError, "%v", err)
	default:
		ui.Banner(a.out, ui.BannerError, "%s", api.Message(err))
	}
}
