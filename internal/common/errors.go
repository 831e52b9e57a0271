package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrInvalidToken  = errors.New("invalid token")
	ErrLoginRequired = errors.New("login required")

	// Returned when a destructive action was not confirmed by the user.
	ErrNotConfirmed = errors.New("action not confirmed")
)
