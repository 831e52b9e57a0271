package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/google/uuid"
)

const maxResponseBytes = 4 << 20

// Request describes one call. At most one of JSON and Form is set.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	JSON   any
	Form   url.Values
}

// Do sends req and returns the raw body of a 2xx response, or an *Error.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, connectivityError(err)
		}
	}

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", httpReq.Method, "path", req.Path,
			"request_id", httpReq.Header.Get(common.RequestIDHeaderName), "err", err)
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, connectivityError(err)
	}

	c.log.Debug(ctx, "request done", "method", httpReq.Method, "path", req.Path,
		"status", resp.StatusCode, "duration", time.Since(start),
		"request_id", httpReq.Header.Get(common.RequestIDHeaderName))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}
	return nil, classify(resp.StatusCode, body)
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	reqURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		reqURL += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		body = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.JSON != nil:
		b, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json, text/plain")
	httpReq.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token, ok := c.tokens.GetToken(ctx); ok {
			httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}
	return httpReq, nil
}

// Fetch performs req and decodes a JSON response into T. An empty body
// yields the zero value.
func Fetch[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T

	body, err := c.Do(ctx, req)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, &Error{Kind: KindServer, Message: "unexpected response from server", Err: err}
	}
	return out, nil
}

// FetchText performs req and returns the body as text. A JSON string body
// ("...") is unquoted, since some deployments wrap plain text that way.
func FetchText(ctx context.Context, c *Client, req Request) (string, error) {
	body, err := c.Do(ctx, req)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, `"`) {
		if unq, err := strconv.Unquote(text); err == nil {
			return strings.TrimSpace(unq), nil
		}
		var s string
		if err := json.Unmarshal([]byte(text), &s); err == nil {
			return strings.TrimSpace(s), nil
		}
	}
	return text, nil
}
