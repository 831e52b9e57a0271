package api

import (
	"context"
	"net/http"
)

func (c *Client) Me(ctx context.Context) (User, error) {
	return Fetch[User](ctx, c, Request{Path: "/users/me"})
}

func (c *Client) UpdateMe(ctx context.Context, req UpdateUserRequest) (User, error) {
	if err := check(req); err != nil {
		return User{}, err
	}
	return Fetch[User](ctx, c, Request{Method: http.MethodPut, Path: "/users/me", JSON: req})
}

func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if err := check(req); err != nil {
		return err
	}
	_, err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/users/me/password", JSON: req})
	return err
}

func (c *Client) DeleteMe(ctx context.Context) error {
	_, err := c.Do(ctx, Request{Method: http.MethodDelete, Path: "/users/me"})
	return err
}
