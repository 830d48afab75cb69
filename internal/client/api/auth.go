package api

import (
	"context"
	"net/http"
)

type credentials struct {
	Name     string `json:"name" validate:"required,max=32"`
	Password string `json:"password" validate:"required"`
}

type registration struct {
	credentials
	Code string `json:"code" validate:"required"`
}

// Authenticate exchanges name/password for a session cookie. Unlike the
// resource operations, a rejected login surfaces the server's own reason
// (as *Error) so the caller can show it verbatim.
func (c *Client) Authenticate(ctx context.Context, name, password string) error {
	body := credentials{Name: name, Password: password}
	if err := c.validateParams(body); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/auth", body, nil)
}

// Verify reports whether the current session cookie is still accepted.
// An expired session yields (false, nil); the unauthenticated handler has
// already fired by then.
func (c *Client) Verify(ctx context.Context) (bool, error) {
	err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, nil)
	if err != nil {
		if isUnauthorized(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Register creates an account using an invite code. Like Authenticate, the
// server's rejection reason is passed through to the caller.
func (c *Client) Register(ctx context.Context, name, password, code string) error {
	body := registration{credentials: credentials{Name: name, Password: password}, Code: code}
	if err := c.validateParams(body); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}
