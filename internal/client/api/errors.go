package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindRequest
	KindNotFound
	KindConnectivity
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindRequest:
		return "request"
	case KindNotFound:
		return "not_found"
	case KindConnectivity:
		return "connectivity"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

var (
	ErrUnauthorized = errors.New("session expired or invalid")
	ErrRequest      = errors.New("request error")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("server unavailable")
	ErrServer       = errors.New("server error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindUnauthorized:
		return ErrUnauthorized
	case KindRequest:
		return ErrRequest
	case KindNotFound:
		return ErrNotFound
	case KindConnectivity:
		return ErrUnavailable
	case KindServer:
		return ErrServer
	default:
		return nil
	}
}

// Error is the classified outcome of a failed request.
type Error struct {
	Kind       Kind
	StatusCode int
	// Message is safe to show to the user.
	Message string
	// Fields holds per-field validation messages keyed by field name.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// FieldMessages returns "field: message" lines sorted by field name.
func (e *Error) FieldMessages() []string {
	out := make([]string, 0, len(e.Fields))
	for f, m := range e.Fields {
		out = append(out, f+": "+m)
	}
	sort.Strings(out)
	return out
}

// KindOf returns the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsUnauthorized reports whether err means the session is gone.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// Retryable reports whether the "try again" treatment applies.
func Retryable(err error) bool {
	k := KindOf(err)
	return k == KindConnectivity || k == KindServer
}

// Message returns the user-facing text for err.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func connectivityError(err error) *Error {
	msg := "could not reach the server"
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		msg = "the server took too long to respond"
	case errors.Is(err, context.Canceled):
		msg = "the request was cancelled"
	}
	return &Error{Kind: KindConnectivity, Message: msg, Err: err}
}

// classify turns a non-2xx response into an *Error.
func classify(status int, body []byte) *Error {
	msg, fields := messageFromBody(body)

	e := &Error{StatusCode: status, Message: msg, Fields: fields}
	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindUnauthorized
		// The backend's own wording ("Could not validate credentials")
		// is less useful than ours.
		e.Message = "your session has expired, please log in again"
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
		if e.Message == "" {
			e.Message = "nothing here yet"
		}
	case status >= 400 && status < 500:
		e.Kind = KindRequest
		if e.Message == "" {
			e.Message = "the request could not be processed"
		}
	case status >= 500:
		e.Kind = KindServer
		if e.Message == "" {
			e.Message = "the server had a problem, please try again"
		}
	default:
		e.Kind = KindServer
		e.Message = fmt.Sprintf("unexpected response status %d", status)
	}
	return e
}

// messageFromBody understands the backend's error payloads:
//
//	{"detail": "Incorrect username or password"}
//	{"detail": [{"loc": ["body", "email"], "msg": "value is not a valid email"}]}
//	{"message": "..."} / {"error": "..."} / {"error": {"message": "..."}}
//
// Short plain-text bodies are used verbatim.
func messageFromBody(body []byte) (string, map[string]string) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", nil
	}

	if !gjson.Valid(trimmed) {
		if len(trimmed) <= 200 && !strings.HasPrefix(trimmed, "<") {
			return trimmed, nil
		}
		return "", nil
	}

	detail := gjson.Get(trimmed, "detail")
	switch {
	case detail.Type == gjson.String:
		return detail.String(), nil
	case detail.IsArray():
		var (
			msgs   []string
			fields = map[string]string{}
		)
		for _, item := range detail.Array() {
			msg := item.Get("msg").String()
			if msg == "" {
				continue
			}
			field := fieldFromLoc(item.Get("loc").Array())
			if field != "" {
				fields[field] = msg
				msgs = append(msgs, field+": "+msg)
			} else {
				msgs = append(msgs, msg)
			}
		}
		if len(fields) == 0 {
			fields = nil
		}
		return strings.Join(msgs, "; "), fields
	}

	for _, path := range []string{"message", "error.message", "error"} {
		if r := gjson.Get(trimmed, path); r.Type == gjson.String && r.String() != "" {
			return r.String(), nil
		}
	}
	return "", nil
}

func fieldFromLoc(loc []gjson.Result) string {
	for i := len(loc) - 1; i >= 0; i-- {
		if loc[i].Type == gjson.String {
			name := loc[i].String()
			if name != "body" && name != "query" {
				return name
			}
		}
	}
	return ""
}
