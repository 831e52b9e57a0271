package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/config"
	"github.com/dmitrijs2005/moodkeeper/internal/client/services"
	"github.com/dmitrijs2005/moodkeeper/internal/client/session"
	"github.com/dmitrijs2005/moodkeeper/internal/client/storage"
	"github.com/dmitrijs2005/moodkeeper/internal/client/theme"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
	"github.com/dmitrijs2005/moodkeeper/internal/client/views"
	"github.com/dmitrijs2005/moodkeeper/internal/filex"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config  *config.Config
	store   *storage.Store
	session *session.Store
	theme   *theme.State
	auth    services.AuthService
	env     *views.Env
	log     logging.Logger
	closers []io.Closer
	reader  *bufio.Reader
	out     io.Writer

	mu        sync.RWMutex
	mode      Mode
	current   views.View
	closeOnce sync.Once
}

// NewApp wires every component from c. The returned App owns the database
// and the log file; Run closes them.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	for _, p := range []string{c.DBPath, c.LogFile} {
		if err := filex.EnsureParentDir(p); err != nil {
			return nil, fmt.Errorf("error preparing local state: %w", err)
		}
	}

	log, logCloser := logging.NewFileLogger(logging.FileOptions{Path: c.LogFile, Level: c.LogLevel})

	store, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	sess := session.NewStore(store, log)

	th := theme.New(store, log, ui.ApplyTheme)
	th.Init(ctx)

	apiClient := api.New(c.ServerURL, sess,
		api.WithJournalPath(c.JournalPath),
		api.WithRateLimit(c.RequestsPerSecond),
		api.WithLogger(log.With("component", "api")),
		api.WithUserAgent("moodkeeper-cli/"+buildinfo.Version()),
	)

	env := &views.Env{
		Backend:          apiClient,
		Session:          sess,
		Theme:            th,
		Saved:            services.NewSavedService(store),
		Chat:             services.NewChatService(store),
		Log:              log.With("component", "views"),
		Out:              os.Stdout,
		Development:      c.IsDevelopment(),
		ResourcesTimeout: c.ResourcesTimeout,
	}

	log.Info(ctx, "client started", "server", c.ServerURL, "mode", string(c.Mode))

	return &App{
		config:  c,
		store:   store,
		session: sess,
		theme:   th,
		auth:    services.NewAuthService(apiClient, sess, log),
		env:     env,
		log:     log,
		closers: []io.Closer{store, logCloser},
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run shows the dashboard (or the login prompt when there is no session),
// starts the connectivity watcher and blocks in the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to moodkeeper (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if a.isLoggedIn(ctx) {
		handleResult(ctx, a, a.Dashboard(ctx))
	} else {
		printlnFn("Please log in, or type 'register' to create an account.")
		handleResult(ctx, a, a.Login(ctx))
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close unmounts the current view and releases the database and log file.
// It is safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.unmount()
		var errs []error
		for _, c := range a.closers {
			errs = append(errs, c.Close())
		}
		if err := errors.Join(errs...); err != nil {
			fmt.Fprintln(os.Stderr, "shutdown:", err)
		}
	})
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.Session(ctx).Authenticated()
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher pings the backend every interval and switches
// between online and offline mode. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// mount replaces the current view with v and loads it.
func (a *App) mount(ctx context.Context, v views.View) error {
	a.unmount()
	a.mu.Lock()
	a.current = v
	a.mu.Unlock()
	return v.Refresh(ctx)
}

func (a *App) unmount() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != nil {
		a.current.Unmount()
		a.current = nil
	}
}

func (a *App) currentView() views.View {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}
