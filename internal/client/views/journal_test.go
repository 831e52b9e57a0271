package views

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/resource"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_UnauthorizedClearsTokenAndRedirects(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
	})
	h.login(t)

	err := NewJournal(h.env).Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrLoginRequired)
	require.ErrorIs(t, err, api.ErrUnauthorized)

	_, ok := h.session.GetToken(context.Background())
	assert.False(t, ok)
	assert.Contains(t, h.out.String(), "session has expired")
}

func TestJournal_EmptyState(t *testing.T) {
	h := newHarness(t, backendOK)
	h.login(t)

	j := NewJournal(h.env)
	require.NoError(t, j.Refresh(context.Background()))
	assert.Contains(t, h.out.String(), "No journal entries yet")
}

func TestJournal_ErrorHasNoFallback(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	h.login(t)

	j := NewJournal(h.env)
	require.NoError(t, j.Refresh(context.Background()))

	st := j.entries.State()
	assert.Equal(t, resource.StatusError, st.Status)
	assert.Nil(t, st.Data)
	assert.False(t, st.Sample)
	assert.Contains(t, h.out.String(), "retry")
}

func TestJournal_ListAndShow(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/journal/":
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 5, "title": "", "content": "Long walk by the river\nfelt better", "mood_score": 7, "created_at": "2024-05-01T08:30:00"},
			})
		case "/journal/5":
			writeJSON(w, http.StatusOK, map[string]any{"id": 5, "content": "Long walk by the river\nfelt better", "themes": []string{"nature"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	h.login(t)
	ctx := context.Background()

	j := NewJournal(h.env)
	require.NoError(t, j.Refresh(ctx))
	out := h.out.String()
	assert.Contains(t, out, "Long walk by the river")
	assert.Contains(t, out, "7/10")

	require.NoError(t, j.Show(ctx, "5"))
	assert.Contains(t, h.out.String(), "Themes: nature")

	err := j.Show(ctx, "404")
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.Contains(t, h.out.String(), "Nothing here yet.")
}

func TestJournal_WriteValidatesLocally(t *testing.T) {
	h := newHarness(t, backendOK)
	h.login(t)

	mood := 11
	_, err := NewJournal(h.env).Write(context.Background(), api.CreateEntryRequest{Content: "x", Mood: &mood})
	require.ErrorIs(t, err, api.ErrRequest)
	assert.Zero(t, h.requests.Load())
	assert.Contains(t, h.out.String(), "mood_score: must be at most 10")
}

func TestJournal_Write(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/journal/" {
			writeJSON(w, http.StatusCreated, map[string]any{"id": 77, "content": "hello"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	h.login(t)

	mood := 6
	e, err := NewJournal(h.env).Write(context.Background(), api.CreateEntryRequest{Content: "hello", Mood: &mood})
	require.NoError(t, err)
	assert.Equal(t, api.ID("77"), e.ID)
	assert.Contains(t, h.out.String(), "Entry saved (id 77)")
}

func TestJournal_DeleteNeedsConfirmation(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h.login(t)
	ctx := context.Background()
	j := NewJournal(h.env)

	var asked string
	decline := func(prompt, expected string) (bool, error) {
		asked = expected
		return false, nil
	}
	require.ErrorIs(t, j.Delete(ctx, "9", decline), common.ErrNotConfirmed)
	assert.Equal(t, "9", asked)
	assert.Zero(t, h.requests.Load())

	accept := func(string, string) (bool, error) { return true, nil }
	require.NoError(t, j.Delete(ctx, "9", accept))
	assert.True(t, h.sawPath("DELETE /journal/9"))
}

func TestJournal_ProtectedActionsNeedToken(t *testing.T) {
	h := newHarness(t, backendOK)
	ctx := context.Background()
	j := NewJournal(h.env)

	assert.ErrorIs(t, j.Refresh(ctx), common.ErrLoginRequired)
	assert.ErrorIs(t, j.Show(ctx, "1"), common.ErrLoginRequired)
	_, err := j.Write(ctx, api.CreateEntryRequest{Content: "x"})
	assert.ErrorIs(t, err, common.ErrLoginRequired)
	assert.ErrorIs(t, j.Delete(ctx, "1", nil), common.ErrLoginRequired)
	assert.Zero(t, h.requests.Load())
}
