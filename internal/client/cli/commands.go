package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
	"github.com/dmitrijs2005/moodkeeper/internal/client/views"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

const maxInsightDays = 365

func (a *App) Dashboard(ctx context.Context) error {
	return a.mount(ctx, views.NewDashboard(a.env))
}

// Insights accepts optional look-back windows: insights [mood_days] [theme_days].
func (a *App) Insights(ctx context.Context, args []string) error {
	var q api.InsightsQuery
	for i, dst := range []*int{&q.DaysMood, &q.DaysThemes} {
		if i >= len(args) {
			break
		}
		n, err := strconv.Atoi(args[i])
		if err != nil || n < 1 || n > maxInsightDays {
			ui.Banner(a.out, ui.BannerWarn, "Usage: insights [mood_days] [theme_days], days between 1 and %d", maxInsightDays)
			return nil
		}
		*dst = n
	}
	return a.mount(ctx, views.NewInsights(a.env, q))
}

func (a *App) Journal(ctx context.Context) error {
	return a.mount(ctx, views.NewJournal(a.env))
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter entry id to show")
	if err != nil || id == "" {
		return err
	}
	return a.journal().Show(ctx, id)
}

// Write asks for a title, the entry text and an optional mood score.
func (a *App) Write(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrLoginRequired
	}

	title, err := getSimpleText(a.reader, "Title (optional)", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "How are you feeling today?", a.out)
	if err != nil {
		return err
	}
	moodText, err := getSimpleText(a.reader, "Mood from 1 to 10 (optional)", a.out)
	if err != nil {
		return err
	}

	req := api.CreateEntryRequest{Title: title, Content: content}
	if moodText != "" {
		mood, err := strconv.Atoi(moodText)
		if err != nil {
			ui.Banner(a.out, ui.BannerError, "Mood must be a number from 1 to 10.")
			return nil
		}
		req.Mood = &mood
	}

	_, err = a.journal().Write(ctx, req)
	return err
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter entry id to delete")
	if err != nil || id == "" {
		return err
	}
	return a.journal().Delete(ctx, id, a.confirm)
}

func (a *App) Resources(ctx context.Context) error {
	return a.mount(ctx, views.NewResources(a.env))
}

func (a *App) Save(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter resource id to save")
	if err != nil || id == "" {
		return err
	}
	return a.resources().Save(ctx, id)
}

func (a *App) Unsave(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter resource id to remove")
	if err != nil || id == "" {
		return err
	}
	return a.resources().Unsave(ctx, id)
}

func (a *App) Saved(ctx context.Context) error {
	return a.resources().ShowSaved(ctx)
}

// Retry re-issues the requests of the current view.
func (a *App) Retry(ctx context.Context) error {
	v := a.currentView()
	if v == nil {
		ui.Banner(a.out, ui.BannerInfo, "Nothing to retry.")
		return nil
	}
	return v.Refresh(ctx)
}

func (a *App) Profile(ctx context.Context) error {
	return a.mount(ctx, views.NewSettings(a.env))
}

func (a *App) Update(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrLoginRequired
	}
	username, err := getSimpleText(a.reader, "New username (empty to keep)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}
	return a.settings().Update(ctx, api.UpdateUserRequest{Username: username, Email: email})
}

func (a *App) Passwd(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrLoginRequired
	}
	current, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(a.out, "New password (at least 8 characters)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	return a.settings().ChangePassword(ctx, current, next)
}

// DeleteAccount removes the account after a typed confirmation and leaves
// the user at the login prompt.
func (a *App) DeleteAccount(ctx context.Context) error {
	if err := a.settings().DeleteAccount(ctx, a.confirm); err != nil {
		return err
	}
	a.unmount()
	return nil
}

func (a *App) ToggleTheme(ctx context.Context) error {
	a.settings().ToggleTheme(ctx)
	return nil
}

// Chat without arguments shows the history; otherwise the arguments are
// sent as one message.
func (a *App) Chat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.mount(ctx, views.NewChat(a.env))
	}
	return a.chat().Send(ctx, strings.Join(args, " "))
}

func (a *App) confirm(prompt, expected string) (bool, error) {
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return false, err
	}
	return answer == expected, nil
}

func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return id, nil
}

// journal, resources, settings and chat return the mounted view of that
// kind, or a fresh unmounted one, so actions reuse already loaded state.
func (a *App) journal() *views.Journal {
	if v, ok := a.currentView().(*views.Journal); ok {
		return v
	}
	return views.NewJournal(a.env)
}

func (a *App) resources() *views.Resources {
	if v, ok := a.currentView().(*views.Resources); ok {
		return v
	}
	return views.NewResources(a.env)
}

func (a *App) settings() *views.Settings {
	if v, ok := a.currentView().(*views.Settings); ok {
		return v
	}
	return views.NewSettings(a.env)
}

func (a *App) chat() *views.Chat {
	if v, ok := a.currentView().(*views.Chat); ok {
		return v
	}
	return views.NewChat(a.env)
}
