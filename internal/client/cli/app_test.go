package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/config"
	"github.com/dmitrijs2005/moodkeeper/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offlineAuth struct {
	services.AuthService
}

func (offlineAuth) Ping(context.Context) error { return errors.New("unreachable") }

func TestSetMode_ChangesOnce(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{})

	assert.Equal(t, Mode(""), app.Mode())
	app.setMode(context.Background(), ModeOnline)
	assert.Equal(t, ModeOnline, app.Mode())
	app.setMode(context.Background(), ModeOffline)
	assert.Equal(t, ModeOffline, app.Mode())
}

func TestOnlineStatusWatcher(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.Mode() == ModeOnline }, 2*time.Second, 10*time.Millisecond)
	cancel()
	<-done
}

func TestOnlineStatusWatcher_Offline(t *testing.T) {
	app, _ := newTestApp(t, http.NotFoundHandler())
	app.setMode(context.Background(), ModeOnline)
	app.auth = offlineAuth{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)

	require.Eventually(t, func() bool { return app.Mode() == ModeOffline }, 2*time.Second, 10*time.Millisecond)
}

func TestGetStatus(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{})
	assert.Equal(t, "", app.getStatus())

	app.setMode(context.Background(), ModeOnline)
	assert.Equal(t, "(online)", app.getStatus())

	loginDirect(t, app)
	assert.Equal(t, "(user 42 online)", app.getStatus())
}

func TestClose_Idempotent(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{})
	app.Close()
	app.Close()
}

func TestNewApp_CreatesStateDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerURL = "http://127.0.0.1:1"
	cfg.DBPath = filepath.Join(dir, "state", "moodkeeper.db")
	cfg.LogFile = filepath.Join(dir, "logs", "moodkeeper.log")

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	app.Close()

	_, err = os.Stat(cfg.DBPath)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Dir(cfg.LogFile))
	assert.NoError(t, err)
}
