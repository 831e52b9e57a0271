// Package api is the HTTP client of the journaling backend.
//
// # Overview
//
// Every request is sent with "Authorization: Bearer <token>" when the
// configured TokenSource has a token, and without it otherwise (the backend
// then answers 401). Responses are classified into an *Error carrying a Kind:
//
//	2xx            success, JSON body (plain text for the prompt endpoint)
//	401            KindUnauthorized  - caller clears the token, goes to login
//	404            KindNotFound      - rendered as an empty state
//	other 4xx      KindRequest       - message derived from the body
//	5xx            KindServer
//	network/ctx    KindConnectivity
//
// Errors also match the sentinels ErrUnauthorized, ErrRequest, ErrNotFound,
// ErrUnavailable and ErrServer with errors.Is.
//
// No request is ever retried. Timeouts are the caller's business and are
// expressed through the context.
//
// Fetch and FetchText are the generic building blocks; the typed endpoint
// methods (Login, Entries, Insights, ...) are thin wrappers around them.
package api
