// Package theme holds the application-wide light/dark preference.
package theme

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/dmitrijs2005/moodkeeper/internal/client/storage"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
)

const (
	NameLight = "light"
	NameDark  = "dark"
)

// Applier installs or removes the global style marker.
type Applier func(dark bool)

// State is the single theme instance of a running App. It is safe for
// concurrent use. Persistence failures never change the in-memory flag.
type State struct {
	mu     sync.RWMutex
	dark   bool
	kv     storage.Repository
	log    logging.Logger
	apply  Applier
	lookup lookupFunc
}

func New(kv storage.Repository, log logging.Logger, apply Applier) *State {
	if apply == nil {
		apply = func(bool) {}
	}
	return &State{kv: kv, log: log, apply: apply, lookup: os.LookupEnv}
}

// Init resolves the starting preference: persisted value, then the
// environment colour scheme, then light. The result is applied but not
// persisted, so an environment change is honoured until the user toggles.
func (s *State) Init(ctx context.Context) {
	dark, source := s.resolve(ctx)

	s.mu.Lock()
	s.dark = dark
	s.mu.Unlock()

	s.apply(dark)
	s.log.Debug(ctx, "theme initialised", "theme", nameOf(dark), "source", source)
}

func (s *State) resolve(ctx context.Context) (bool, string) {
	b, err := s.kv.Get(ctx, common.StorageKeyTheme)
	switch {
	case err == nil:
		switch string(b) {
		case NameDark:
			return true, "storage"
		case NameLight:
			return false, "storage"
		}
		s.log.Warn(ctx, "ignoring unknown persisted theme", "value", string(b))
	case !errors.Is(err, common.ErrorNotFound):
		s.log.Warn(ctx, "theme read failed", "err", err)
	}

	if dark, ok := detectDark(s.lookup); ok {
		return dark, "environment"
	}
	return false, "default"
}

func (s *State) Dark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

func (s *State) Name() string {
	return nameOf(s.Dark())
}

// Toggle flips the preference, persists it and re-applies the style marker.
// It returns the new value.
func (s *State) Toggle(ctx context.Context) bool {
	s.mu.Lock()
	s.dark = !s.dark
	dark := s.dark
	s.mu.Unlock()

	s.commit(ctx, dark)
	return dark
}

// Set forces a preference.
func (s *State) Set(ctx context.Context, dark bool) {
	s.mu.Lock()
	s.dark = dark
	s.mu.Unlock()

	s.commit(ctx, dark)
}

func (s *State) commit(ctx context.Context, dark bool) {
	if err := s.kv.Set(ctx, common.StorageKeyTheme, []byte(nameOf(dark))); err != nil {
		s.log.Warn(ctx, "theme not persisted", "err", err)
	}
	s.apply(dark)
}

func nameOf(dark bool) string {
	if dark {
		return NameDark
	}
	return NameLight
}
