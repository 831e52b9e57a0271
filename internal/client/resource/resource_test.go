package resource

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{"calm", "tired", "hopeful"}

func ok(v []string) Loader[[]string] {
	return func(context.Context) ([]string, error) { return v, nil }
}

func fail(err error) Loader[[]string] {
	return func(context.Context) ([]string, error) { return nil, err }
}

func assertExclusive[T any](t *testing.T, s State[T]) {
	t.Helper()
	if s.Err != nil {
		assert.Equal(t, StatusError, s.Status)
		var zero T
		assert.Equal(t, zero, s.Data)
		assert.False(t, s.Sample)
	}
}

func TestResource_Transitions(t *testing.T) {
	r := New(None[[]string](), false)
	assert.Equal(t, StatusIdle, r.State().Status)

	s := r.Load(context.Background(), ok([]string{"a"}))
	assert.Equal(t, StatusSuccess, s.Status)
	assert.Equal(t, []string{"a"}, s.Data)
	assert.True(t, s.Ready())

	boom := errors.New("boom")
	s = r.Load(context.Background(), fail(boom))
	assert.Equal(t, StatusError, s.Status)
	assert.ErrorIs(t, s.Err, boom)
	assert.Nil(t, s.Data)
	assertExclusive(t, s)

	r.Begin()
	s = r.State()
	assert.Equal(t, StatusLoading, s.Status)
	assert.NoError(t, s.Err)
}

func TestResource_LoadingKeepsShownData(t *testing.T) {
	r := New(None[[]string](), false)
	r.Load(context.Background(), ok([]string{"a"}))

	r.Begin()
	s := r.State()
	assert.Equal(t, StatusLoading, s.Status)
	assert.Equal(t, []string{"a"}, s.Data)
}

func TestResource_FallbackOnError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantSample bool
	}{
		{name: "connectivity", err: &api.Error{Kind: api.KindConnectivity, Message: "down"}, wantSample: true},
		{name: "server", err: &api.Error{Kind: api.KindServer, StatusCode: 500}, wantSample: true},
		{name: "plain", err: errors.New("anything"), wantSample: true},
		{name: "unauthorized", err: &api.Error{Kind: api.KindUnauthorized, StatusCode: 401}},
		{name: "login required", err: fmt.Errorf("dashboard: %w", common.ErrLoginRequired)},
		{name: "rejected request", err: &api.Error{Kind: api.KindRequest, StatusCode: 422, Message: "days_mood must be at most 365"}},
		{name: "local validation", err: &api.Error{Kind: api.KindRequest, Fields: map[string]string{"daysmood": "must be at most 365"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Policy[[]string]{Sample: sample, OnError: true}, false)
			s := r.Load(context.Background(), fail(tt.err))
			assertExclusive(t, s)

			if tt.wantSample {
				assert.Equal(t, StatusSuccess, s.Status)
				assert.Equal(t, sample, s.Data)
				assert.True(t, s.Sample)
				return
			}
			assert.Equal(t, StatusError, s.Status)
			assert.ErrorIs(t, s.Err, tt.err)
		})
	}
}

func TestResource_SuccessReplacesSample(t *testing.T) {
	r := New(Policy[[]string]{Sample: sample, OnError: true}, false)
	r.Load(context.Background(), fail(errors.New("down")))

	s := r.Load(context.Background(), ok([]string{"live"}))
	assert.Equal(t, []string{"live"}, s.Data)
	assert.False(t, s.Sample)
}

func TestResource_DevelopmentSeed(t *testing.T) {
	seeded := New(Policy[[]string]{Sample: sample, SeedInDevelopment: true}, true)
	s := seeded.State()
	assert.Equal(t, StatusSuccess, s.Status)
	assert.Equal(t, sample, s.Data)
	assert.True(t, s.Sample)

	prod := New(Policy[[]string]{Sample: sample, SeedInDevelopment: true}, false)
	assert.Equal(t, StatusIdle, prod.State().Status)

	// Seeded but not masking: a failure is still shown.
	s = seeded.Load(context.Background(), fail(errors.New("timeout")))
	assert.Equal(t, StatusError, s.Status)
	assertExclusive(t, s)
}

func TestResource_StaleResponseDropped(t *testing.T) {
	r := New(None[[]string](), false)

	first := r.Begin()
	second := r.Begin()

	require.True(t, r.Finish(second, []string{"new"}, nil))
	assert.False(t, r.Finish(first, []string{"old"}, nil))

	assert.Equal(t, []string{"new"}, r.State().Data)
}

func TestResource_StaleErrorDoesNotOverwrite(t *testing.T) {
	r := New(None[[]string](), false)

	first := r.Begin()
	second := r.Begin()
	r.Finish(second, []string{"new"}, nil)
	r.Finish(first, nil, errors.New("late failure"))

	s := r.State()
	assert.Equal(t, StatusSuccess, s.Status)
	assert.NoError(t, s.Err)
}

func TestResource_Discard(t *testing.T) {
	r := New(None[[]string](), false)
	tk := r.Begin()
	r.Discard()

	assert.False(t, r.Finish(tk, []string{"late"}, nil))
	assert.Equal(t, State[[]string]{}, r.State())

	// Requests after unmount are dropped too.
	assert.False(t, r.Finish(r.Begin(), []string{"later"}, nil))
}

func TestResource_ConcurrentLoads(t *testing.T) {
	r := New(None[int](), false)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Load(context.Background(), func(context.Context) (int, error) { return i, nil })
		}(i)
	}
	wg.Wait()

	s := r.State()
	assert.Contains(t, []Status{StatusSuccess, StatusLoading}, s.Status)
	assertExclusive(t, s)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
}
