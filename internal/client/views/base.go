package views

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/resource"
	"github.com/dmitrijs2005/moodkeeper/internal/client/session"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

type base struct {
	env  *Env
	name string
}

func (b base) out() io.Writer {
	return b.env.Out
}

// guard returns the current user id, or common.ErrLoginRequired when there
// is no usable token. It never touches the network.
func (b base) guard(ctx context.Context) (string, error) {
	token, ok := b.env.Session.GetToken(ctx)
	if !ok {
		return "", common.ErrLoginRequired
	}
	userID, ok := session.DecodeUserID(token)
	if !ok {
		b.env.Log.Warn(ctx, "stored token has no readable user id", "view", b.name)
		return "", common.ErrLoginRequired
	}
	return userID, nil
}

// expire turns a 401 into a logout: the token is cleared and
// common.ErrLoginRequired is returned. Other errors pass through.
func (b base) expire(ctx context.Context, err error) error {
	if err == nil || !api.IsUnauthorized(err) {
		return err
	}
	if cerr := b.env.Session.ClearToken(ctx); cerr != nil {
		b.env.Log.Error(ctx, "failed to clear expired token", "err", cerr)
	}
	b.env.Log.Info(ctx, "session expired", "view", b.name)
	ui.Banner(b.out(), ui.BannerWarn, "%s", api.Message(err))
	return fmt.Errorf("%w: %w", common.ErrLoginRequired, err)
}

// logged wraps fn so failures are logged, including ones a fallback policy
// later hides from the user.
func logged[T any](b base, widget string, fn resource.Loader[T]) resource.Loader[T] {
	return func(ctx context.Context) (T, error) {
		v, err := fn(ctx)
		if err != nil {
			b.env.Log.Warn(ctx, "request failed", "view", b.name, "widget", widget,
				"kind", api.KindOf(err).String(), "err", err)
		}
		return v, err
	}
}

// unauthorized returns the state's error when it is a 401.
func unauthorized[T any](s resource.State[T]) error {
	if s.Err != nil && api.IsUnauthorized(s.Err) {
		return s.Err
	}
	return nil
}

// renderState prints one widget: a loading line, an error banner, or the
// data (with the sample notice when it is sample data).
func renderState[T any](w io.Writer, title string, s resource.State[T], body func(T)) {
	ui.Heading(w, title)
	switch s.Status {
	case resource.StatusSuccess:
		if s.Sample {
			ui.SampleNotice(w)
		}
		body(s.Data)
	case resource.StatusError:
		renderError(w, title, s.Err)
	default:
		ui.Loading(w, title)
	}
}

func renderError(w io.Writer, what string, err error) {
	switch {
	case api.KindOf(err) == api.KindNotFound:
		ui.Empty(w, "Nothing here yet.")
	case api.KindOf(err) == api.KindRequest:
		ui.Banner(w, ui.BannerError, "%s", api.Message(err))
	case api.Retryable(err):
		ui.Banner(w, ui.BannerError, "Could not load %s: %s", what, api.Message(err))
		ui.Banner(w, ui.BannerInfo, "Type 'retry' to try again.")
	default:
		ui.Banner(w, ui.BannerError, "Could not load %s: %v", what, err)
	}
}

// renderFailure reports a failed action (save, delete, update).
func renderFailure(w io.Writer, action string, err error) {
	switch {
	case api.Retryable(err):
		ui.Banner(w, ui.BannerError, "Could not %s: %s. Please try again.", action, api.Message(err))
	case api.KindOf(err) == api.KindUnknown:
		ui.Banner(w, ui.BannerError, "Could not %s: %v", action, err)
	default:
		ui.Banner(w, ui.BannerError, "Could not %s: %s", action, api.Message(err))
	}
}

func confirmed(w io.Writer, confirm Confirm, prompt, expected string) error {
	ok, err := confirm(prompt, expected)
	if err != nil {
		return err
	}
	if !ok {
		ui.Banner(w, ui.BannerInfo, "Cancelled.")
		return common.ErrNotConfirmed
	}
	return nil
}
