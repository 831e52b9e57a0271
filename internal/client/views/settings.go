package views

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/resource"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
)

// deleteAccountWord must be typed to confirm account deletion.
const deleteAccountWord = "DELETE"

// Settings covers the profile, password, account deletion and theme.
type Settings struct {
	base
	profile *resource.Resource[api.User]
}

func NewSettings(env *Env) *Settings {
	return &Settings{
		base:    base{env: env, name: "settings"},
		profile: resource.New(resource.None[api.User](), env.Development),
	}
}

func (s *Settings) Refresh(ctx context.Context) error {
	if _, err := s.guard(ctx); err != nil {
		return err
	}

	st := s.profile.Load(ctx, logged(s.base, "profile", s.env.Backend.Me))
	if err := s.expire(ctx, unauthorized(st)); err != nil {
		return err
	}

	w := s.out()
	renderState(w, "Profile", st, func(u api.User) {
		rows := [][]string{
			{"Username", u.Username},
			{"Email", u.Email},
		}
		if !u.CreatedAt.IsZero() {
			rows = append(rows, []string{"Member since", u.CreatedAt.Local().Format("2006-01-02")})
		}
		rows = append(rows, []string{"Theme", s.env.Theme.Name()})
		ui.Table(w, rows)
	})
	return nil
}

func (s *Settings) Unmount() {
	s.profile.Discard()
}

// Update changes username and/or email. Empty fields are left unchanged.
func (s *Settings) Update(ctx context.Context, req api.UpdateUserRequest) error {
	if _, err := s.guard(ctx); err != nil {
		return err
	}
	if req.Username == "" && req.Email == "" {
		ui.Banner(s.out(), ui.BannerInfo, "Nothing to change.")
		return nil
	}

	u, err := s.env.Backend.UpdateMe(ctx, req)
	if err = s.expire(ctx, err); err != nil {
		renderFailure(s.out(), "update the profile", err)
		return err
	}
	ui.Banner(s.out(), ui.BannerSuccess, "Profile updated: %s <%s>.", u.Username, u.Email)
	return nil
}

// ChangePassword sends both passwords to the backend. The caller owns and
// wipes current and next; the request body holds string copies that cannot
// be wiped.
func (s *Settings) ChangePassword(ctx context.Context, current, next []byte) error {
	if _, err := s.guard(ctx); err != nil {
		return err
	}

	err := s.env.Backend.ChangePassword(ctx, api.ChangePasswordRequest{
		CurrentPassword: string(current),
		NewPassword:     string(next),
	})
	if err = s.expire(ctx, err); err != nil {
		renderFailure(s.out(), "change the password", err)
		return err
	}
	ui.Banner(s.out(), ui.BannerSuccess, "Password changed.")
	return nil
}

// DeleteAccount removes the account after the user types DELETE, then
// forgets the token and the user's local chat history.
func (s *Settings) DeleteAccount(ctx context.Context, confirm Confirm) error {
	userID, err := s.guard(ctx)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("This permanently deletes your account and journal. Type %s to confirm", deleteAccountWord)
	if err := confirmed(s.out(), confirm, prompt, deleteAccountWord); err != nil {
		return err
	}

	err = s.env.Backend.DeleteMe(ctx)
	if err = s.expire(ctx, err); err != nil {
		renderFailure(s.out(), "delete the account", err)
		return err
	}

	if err := s.env.Chat.Clear(ctx, userID); err != nil {
		s.env.Log.Warn(ctx, "chat history not cleared", "err", err)
	}
	if err := s.env.Session.ClearToken(ctx); err != nil {
		s.env.Log.Error(ctx, "failed to clear token", "err", err)
	}
	ui.Banner(s.out(), ui.BannerSuccess, "Your account has been deleted.")
	return nil
}

// ToggleTheme flips light/dark. It does not need a session.
func (s *Settings) ToggleTheme(ctx context.Context) {
	s.env.Theme.Toggle(ctx)
	ui.Banner(s.out(), ui.BannerSuccess, "Theme: %s.", s.env.Theme.Name())
}
