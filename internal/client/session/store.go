// Package session keeps the bearer token issued by the backend and derives
// the current user's id from it.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/client/storage"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
)

// Session is a read-only snapshot of the authentication state.
type Session struct {
	Token  string
	UserID string
}

// Authenticated reports whether both a token and a decodable user id exist.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}

// Store owns the persisted token. Components read through it and never
// touch the underlying key directly.
type Store struct {
	kv  storage.Repository
	log logging.Logger
}

func NewStore(kv storage.Repository, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// GetToken returns the persisted token. Storage failures are logged and
// reported as "no token".
func (s *Store) GetToken(ctx context.Context) (string, bool) {
	b, err := s.kv.Get(ctx, common.StorageKeyToken)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "token read failed", "err", err)
		}
		return "", false
	}
	if len(b) == 0 {
		return "", false
	}
	return string(b), true
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrInvalidToken
	}
	if err := s.kv.Set(ctx, common.StorageKeyToken, []byte(token)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

func (s *Store) ClearToken(ctx context.Context) error {
	if err := s.kv.Delete(ctx, common.StorageKeyToken); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// UserID decodes the user id from the current token.
func (s *Store) UserID(ctx context.Context) (string, bool) {
	token, ok := s.GetToken(ctx)
	if !ok {
		return "", false
	}
	return DecodeUserID(token)
}

func (s *Store) Session(ctx context.Context) Session {
	token, ok := s.GetToken(ctx)
	if !ok {
		return Session{}
	}
	userID, _ := DecodeUserID(token)
	return Session{Token: token, UserID: userID}
}
