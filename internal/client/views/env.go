package views

import (
	"context"
	"io"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/services"
	"github.com/dmitrijs2005/moodkeeper/internal/client/theme"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
)

// Backend is the part of the API client the views call.
type Backend interface {
	Me(ctx context.Context) (api.User, error)
	UpdateMe(ctx context.Context, req api.UpdateUserRequest) (api.User, error)
	ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error
	DeleteMe(ctx context.Context) error

	Entries(ctx context.Context) ([]api.JournalEntry, error)
	Entry(ctx context.Context, id string) (api.JournalEntry, error)
	CreateEntry(ctx context.Context, req api.CreateEntryRequest) (api.JournalEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	Insights(ctx context.Context, q api.InsightsQuery) (api.Insights, error)
	Prompt(ctx context.Context) (string, error)
	Articles(ctx context.Context) ([]api.Article, error)
}

// Session is the token store as seen by views. Views only ever clear the
// token; setting it is the auth service's job.
type Session interface {
	GetToken(ctx context.Context) (string, bool)
	ClearToken(ctx context.Context) error
}

// Env is shared by every view of one App.
type Env struct {
	Backend Backend
	Session Session
	Theme   *theme.State
	Saved   services.SavedService
	Chat    services.ChatService
	Log     logging.Logger
	Out     io.Writer

	// Development enables sample-data seeding.
	Development bool
	// ResourcesTimeout bounds the articles request. Zero means no bound.
	ResourcesTimeout time.Duration
}

// Confirm asks the user to type expected and reports whether they did.
type Confirm func(prompt, expected string) (bool, error)

// View is a mounted screen.
type View interface {
	// Refresh re-issues the view's requests and renders the result.
	Refresh(ctx context.Context) error
	// Unmount discards the view's state; late responses are dropped.
	Unmount()
}
