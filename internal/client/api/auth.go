package api

import (
	"context"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a bearer token (form-encoded, OAuth2
// password flow style).
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if err := check(LoginRequest{Username: username, Password: password}); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := Fetch[TokenResponse](ctx, c, Request{Method: http.MethodPost, Path: "/users/token", Form: form})
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", &Error{Kind: KindServer, Message: "the server did not return a token"}
	}
	return resp.AccessToken, nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	if err := check(req); err != nil {
		return User{}, err
	}
	return Fetch[User](ctx, c, Request{Method: http.MethodPost, Path: "/users", JSON: req})
}

// Ping reports whether the backend answers at all. Any HTTP response,
// including errors, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/"})
	if err != nil && KindOf(err) == KindConnectivity {
		return err
	}
	return nil
}
