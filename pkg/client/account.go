package client

import (
	"context"
	"net/http"
)

// Register creates an account and stores the returned session token.
func (c *Client) Register(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/register", email, password)
}

// Login signs in and stores the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/login", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	c.tokens.SetToken(out.Token)
	return &out, nil
}

// Logout revokes the server-side session and clears the stored token. The
// local token is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	c.tokens.Clear()
	if err != nil && !IsUnauthorized(err) {
		return err
	}
	return nil
}

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := c.get(ctx, "/api/user/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileUpdate is a partial profile change. Nil fields are untouched.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
}

// UpdateProfile applies a partial update to the signed-in user's profile.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPut, "/api/user/profile", nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// APIKeys lists the signed-in user's API keys. Plaintext key material is
// never included.
func (c *Client) APIKeys(ctx context.Context) ([]APIKey, error) {
	var out []APIKey
	if err := c.get(ctx, "/api/user/api-keys", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAPIKey creates an API key on the given plan. The response carries
// the plaintext key exactly once.
func (c *Client) CreateAPIKey(ctx context.Context, name, plan string) (*APIKey, error) {
	body := map[string]string{"name": name, "plan": plan}
	var out APIKey
	if err := c.do(ctx, http.MethodPost, "/api/user/api-keys", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAPIKey revokes an API key by id.
func (c *Client) DeleteAPIKey(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/user/api-keys/"+id, nil, nil, nil)
}

// Watchlist lists the signed-in user's watchlist.
func (c *Client) Watchlist(ctx context.Context) ([]WatchlistItem, error) {
	var out []WatchlistItem
	if err := c.get(ctx, "/api/user/watchlist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddWatchlistItem adds an entry to the watchlist. itemType is one of
// "token", "address" or "market".
func (c *Client) AddWatchlistItem(ctx context.Context, itemType, address string, name *string) (*WatchlistItem, error) {
	body := map[string]interface{}{"type": itemType, "address": address}
	if name != nil {
		body["name"] = *name
	}
	var out WatchlistItem
	if err := c.do(ctx, http.MethodPost, "/api/user/watchlist", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveWatchlistItem removes a watchlist entry by id.
func (c *Client) RemoveWatchlistItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/user/watchlist/"+id, nil, nil, nil)
}
