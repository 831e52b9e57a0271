package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/config"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func tokenFor(payload string) string {
	enc := base64.RawURLEncoding.EncodeToString
	return enc([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + enc([]byte(payload)) + ".sig"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fakeBackend answers like the journaling backend and records requests.
type fakeBackend struct {
	mu       sync.Mutex
	requests []string
	// override, when set, handles a request before the defaults.
	override func(w http.ResponseWriter, r *http.Request) bool
}

func (f *fakeBackend) count(req string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r == req {
			n++
		}
	}
	return n
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	override := f.override
	f.mu.Unlock()

	if override != nil && override(w, r) {
		return
	}

	switch r.Method + " " + r.URL.Path {
	case "POST /users/token":
		_ = r.ParseForm()
		if r.PostForm.Get("password") != "pw-123456" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect username or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": tokenFor(`{"sub":"42"}`), "token_type": "bearer"})
	case "POST /users":
		writeJSON(w, http.StatusCreated, map[string]any{"id": 42, "username": "alice"})
	case "GET /journal/insights/":
		writeJSON(w, http.StatusOK, map[string]any{"average_mood": 7, "entry_count": 3,
			"mood_trend": []map[string]any{{"date": "2024-05-01", "mood": 7}}})
	case "GET /journal/prompt/":
		_, _ = io.WriteString(w, "What are you looking forward to?")
	case "GET /journal/":
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 9, "content": "Slept well", "mood_score": 8}})
	case "POST /journal/":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		body["id"] = 10
		writeJSON(w, http.StatusCreated, body)
	case "DELETE /journal/9", "DELETE /users/me", "PUT /users/me/password":
		w.WriteHeader(http.StatusNoContent)
	case "GET /journal/articles/":
		writeJSON(w, http.StatusOK, []map[string]any{{"id": "r1", "title": "Managing stress"}})
	case "GET /users/me":
		writeJSON(w, http.StatusOK, map[string]any{"id": 42, "username": "alice", "email": "alice@example.com"})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestApp(t *testing.T, backend http.Handler) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerURL = srv.URL
	cfg.DBPath = filepath.Join(dir, "moodkeeper.db")
	cfg.LogFile = filepath.Join(dir, "moodkeeper.log")
	cfg.OnlineCheckInterval = 10 * time.Millisecond
	cfg.ResourcesTimeout = 2 * time.Second

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	out := &bytes.Buffer{}
	app.out = out
	app.env.Out = out
	app.reader = bufio.NewReader(bytes.NewReader(nil))
	return app, out
}

func loginDirect(t *testing.T, app *App) {
	t.Helper()
	require.NoError(t, app.session.SetToken(context.Background(), tokenFor(`{"sub":"42"}`)))
}

// stubInputs feeds answers to text and multi-line prompts in order, and
// passwords to password prompts in order.
func stubInputs(t *testing.T, answers []string, passwords ...string) {
	t.Helper()
	origST, origML, origGP := getSimpleText, getMultiline, getPassword

	i, j := 0, 0
	next := func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		i++
		return answers[i-1], nil
	}
	getSimpleText = next
	getMultiline = next
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if j >= len(passwords) {
			return nil, io.EOF
		}
		j++
		return []byte(passwords[j-1]), nil
	}

	t.Cleanup(func() {
		getSimpleText, getMultiline, getPassword = origST, origML, origGP
	})
}
