package client

import (
	"context"
	"net/http"
)

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register creates a new account. It does not log the user in.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and primes the token cache. The refresh cookie lands
// in the client's cookie jar as a side effect.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &result); err != nil {
		return nil, err
	}

	c.cache.Set(result.AccessToken)
	c.suppressHydrate.Store(false)
	return &result, nil
}

// Hydrate exchanges the refresh cookie for a fresh access token. Call it at
// startup so a previous session survives a process restart. The attempt is
// skipped exactly once after Logout.
func (c *Client) Hydrate(ctx context.Context) error {
	if c.suppressHydrate.CompareAndSwap(true, false) {
		return nil
	}

	if err := c.refreshToken(ctx); err != nil {
		c.cache.Clear()
		return err
	}
	return nil
}

// Logout ends the session: the server deletes the refresh record and clears
// the cookie, and the local token cache is emptied. The next Hydrate call is
// suppressed.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)

	c.cache.Clear()
	c.suppressHydrate.Store(true)
	return err
}

// Me fetches the current account.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword updates the password. Every session is revoked server-side,
// so the caller must log in again afterwards.
func (c *Client) ChangePassword(ctx context.Context, current, updated string) error {
	body := map[string]string{"currentPassword": current, "newPassword": updated}
	if err := c.do(ctx, http.MethodPost, "/api/auth/change-password", body, nil); err != nil {
		return err
	}
	c.cache.Clear()
	return nil
}
