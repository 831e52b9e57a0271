package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"golang.org/x/time/rate"
)

const (
	DefaultJournalPath = "/journal"
	defaultUserAgent   = "moodkeeper-cli/1.0"
)

// TokenSource yields the current bearer token. It is consulted on every
// request, so a token set after login is used immediately.
type TokenSource interface {
	GetToken(ctx context.Context) (string, bool)
}

type Client struct {
	baseURL     string
	journalPath string
	userAgent   string
	tokens      TokenSource
	httpClient  *http.Client
	limiter     *rate.Limiter
	log         logging.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithJournalPath overrides the journal API prefix ("/journal" by default).
func WithJournalPath(p string) Option {
	return func(c *Client) {
		if p = strings.TrimRight(p, "/"); p != "" {
			if !strings.HasPrefix(p, "/") {
				p = "/" + p
			}
			c.journalPath = p
		}
	}
}

// WithRateLimit throttles outgoing requests to rps per second with a burst
// of one. A non-positive rps disables throttling.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for the backend at baseURL. The transport has no
// overall timeout of its own; callers bound requests with contexts.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		journalPath: DefaultJournalPath,
		userAgent:   defaultUserAgent,
		tokens:      tokens,
		httpClient:  &http.Client{Transport: http.DefaultTransport},
		log:         logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) journal(parts ...string) string {
	if len(parts) == 0 {
		return c.journalPath + "/"
	}
	return c.journalPath + "/" + strings.Join(parts, "/")
}
