package resource

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State is a snapshot of a Resource. Err is set only when Status is
// StatusError, and Data is the zero value in that case.
type State[T any] struct {
	Status Status
	Data   T
	Err    error
	// Sample is true when Data is the view's sample dataset.
	Sample bool
}

// Ready reports whether Data can be rendered.
func (s State[T]) Ready() bool {
	return s.Status == StatusSuccess
}

// Policy is a view's fallback rule.
type Policy[T any] struct {
	Sample T
	// OnError substitutes Sample when a request fails.
	OnError bool
	// SeedInDevelopment starts the view with Sample in development mode,
	// before any request is made.
	SeedInDevelopment bool
}

// None is the policy of views that show request errors as they are.
func None[T any]() Policy[T] {
	return Policy[T]{}
}

// Ticket identifies one request of a Resource.
type Ticket uint64

type Loader[T any] func(ctx context.Context) (T, error)

type Resource[T any] struct {
	mu        sync.Mutex
	policy    Policy[T]
	state     State[T]
	gen       Ticket
	discarded bool
}

// New mounts a resource. In development mode a seeding policy makes the
// sample data available immediately.
func New[T any](policy Policy[T], development bool) *Resource[T] {
	r := &Resource[T]{policy: policy}
	if development && policy.SeedInDevelopment {
		r.state = State[T]{Status: StatusSuccess, Data: policy.Sample, Sample: true}
	}
	return r
}

// Begin starts a new request and supersedes any request in flight. Data
// already shown stays visible while loading; a previous error is cleared.
func (r *Resource[T]) Begin() Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	r.state.Status = StatusLoading
	r.state.Err = nil
	return r.gen
}

// Finish records the outcome of the request identified by t. It returns
// false when the outcome was dropped because t is stale or the resource
// was discarded.
func (r *Resource[T]) Finish(t Ticket, data T, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.discarded || t != r.gen {
		return false
	}

	switch {
	case err == nil:
		r.state = State[T]{Status: StatusSuccess, Data: data}
	case r.policy.OnError && maskable(err):
		r.state = State[T]{Status: StatusSuccess, Data: r.policy.Sample, Sample: true}
	default:
		r.state = State[T]{Status: StatusError, Err: err}
	}
	return true
}

// Load runs fn as a single request and returns the resulting state.
func (r *Resource[T]) Load(ctx context.Context, fn Loader[T]) State[T] {
	t := r.Begin()
	data, err := fn(ctx)
	r.Finish(t, data, err)
	return r.State()
}

func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Discard unmounts the resource: state goes back to idle and every
// outstanding response is dropped.
func (r *Resource[T]) Discard() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	r.discarded = true
	r.state = State[T]{}
}

func isAuthError(err error) bool {
	return api.IsUnauthorized(err) || errors.Is(err, common.ErrLoginRequired)
}

// maskable reports whether the sample may stand in for err. Rejected
// requests carry a message the user has to act on, so they stay visible.
func maskable(err error) bool {
	return !isAuthError(err) && api.KindOf(err) != api.KindRequest
}
