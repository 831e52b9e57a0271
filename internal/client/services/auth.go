// Package services contains application services for the moodkeeper client.
// This file defines the authentication service: login, sign-up, logout and
// the backend liveness check. It owns the only writes to the token store.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/session"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
)

// AuthAPI is the part of the backend client used for authentication.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, req api.RegisterRequest) (api.User, error)
	Ping(ctx context.Context) error
}

// TokenStore persists the bearer token.
type TokenStore interface {
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and persist it.
//   - Register: create an account, then log in with the same credentials.
//   - Logout: forget the token.
//   - Ping: check server liveness.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username, email string, password []byte) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	api    AuthAPI
	tokens TokenStore
	log    logging.Logger
}

func NewAuthService(a AuthAPI, tokens TokenStore, log logging.Logger) AuthService {
	return &authService{api: a, tokens: tokens, log: log}
}

// Login stores the token only if a user id can be read from it; a token
// the client cannot identify would leave every protected view locked.
// password is not wiped here, and the form body sent to the backend keeps
// its own string copy.
func (s *authService) Login(ctx context.Context, username string, password []byte) error {
	token, err := s.api.Login(ctx, username, string(password))
	if err != nil {
		return err
	}

	userID, ok := session.DecodeUserID(token)
	if !ok {
		s.log.Warn(ctx, "login returned an undecodable token", "username", username)
		return common.ErrInvalidToken
	}

	if err := s.tokens.SetToken(ctx, token); err != nil {
		return err
	}
	s.log.Info(ctx, "logged in", "user_id", userID)
	return nil
}

func (s *authService) Register(ctx context.Context, username, email string, password []byte) error {
	u, err := s.api.Register(ctx, api.RegisterRequest{Username: username, Email: email, Password: string(password)})
	if err != nil {
		return err
	}
	s.log.Info(ctx, "account created", "user_id", u.ID.String())

	if err := s.Login(ctx, username, password); err != nil {
		return fmt.Errorf("account created but login failed: %w", err)
	}
	return nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.tokens.ClearToken(ctx)
}

func (s *authService) Ping(ctx context.Context) error {
	return s.api.Ping(ctx)
}
