// Package client is a typed HTTP client for the explorer API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is used when neither Config.BaseURL nor the
	// EXPLORER_API_URL environment variable is set.
	DefaultBaseURL = "http://localhost:8080"

	defaultTimeout = 30 * time.Second
)

// TokenStore holds the session credential shared by every request. It must
// be safe for concurrent use. Clear reports whether a credential was
// actually removed, so invalidation side effects run at most once even
// when several in-flight requests hit 401 together.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear() bool
}

// MemoryTokenStore is the default in-process TokenStore.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore creates an empty token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Token returns the stored credential, or "" when signed out.
func (s *MemoryTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken replaces the stored credential.
func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the stored credential. It returns false when there was
// nothing to clear.
func (s *MemoryTokenStore) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return false
	}
	s.token = ""
	return true
}

// Config configures a Client. The zero value is usable.
type Config struct {
	// BaseURL of the API server. Defaults to EXPLORER_API_URL, then
	// DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the underlying transport. Defaults to a
	// client with a 30 second timeout.
	HTTPClient *http.Client

	// Tokens holds the session credential. Defaults to a fresh
	// MemoryTokenStore.
	Tokens TokenStore

	// OnUnauthorized runs once per credential invalidation, after the
	// token has been cleared. UIs typically redirect to login here.
	OnUnauthorized func()
}

// Client issues typed requests against the explorer API.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenStore
	onUnauthorized func()
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = os.Getenv("EXPLORER_API_URL")
	}
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	base = strings.TrimRight(base, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}

	return &Client{
		baseURL:        base,
		http:           httpClient,
		tokens:         tokens,
		onUnauthorized: cfg.OnUnauthorized,
	}, nil
}

// TokenStore exposes the client's credential store.
func (c *Client) TokenStore() TokenStore {
	return c.tokens
}

// do runs one request through the transport pipeline: attach credential,
// send, detect 401 and invalidate, decode. Transport errors pass through
// untouched; HTTP errors surface as *APIError. There are no retries.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := decodeAPIError(resp)
		if resp.StatusCode == http.StatusUnauthorized {
			c.invalidate()
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// invalidate clears the credential and fires the OnUnauthorized hook when
// this call was the one that cleared it.
func (c *Client) invalidate() {
	if c.tokens.Clear() && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("limit", fmt.Sprintf("%d", limit))
	return q
}
