package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientFor(t *testing.T, handler http.Handler, cfg Config) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	cfg.BaseURL = ts.URL
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestDefaultBaseURL(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.baseURL)

	t.Setenv("EXPLORER_API_URL", "http://api.internal:9999/")
	c, err = New(Config{})
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:9999", c.baseURL)

	c, err = New(Config{BaseURL: "http://explicit:1234"})
	require.NoError(t, err)
	assert.Equal(t, "http://explicit:1234", c.baseURL)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(NetworkStats{Slot: 1})
	})

	c := newClientFor(t, handler, Config{})
	_, err := c.NetworkStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "anonymous request must not send a header")

	c.TokenStore().SetToken("session-token")
	_, err = c.NetworkStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestPaginationEncoding(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(BlocksPage{Page: 3, Limit: 50})
	})

	c := newClientFor(t, handler, Config{})
	page, err := c.Blocks(context.Background(), 3, 50)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 50, page.Limit)
}

func TestTokensListDistinctFromTokenStore(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tokens", r.URL.Path)
		assert.Equal(t, "volume", r.URL.Query().Get("sort"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(TokensPage{
			Tokens: []Token{{Symbol: "SOL"}},
			Total:  1, Page: 1, Limit: 20,
		})
	})

	c := newClientFor(t, handler, Config{})
	c.TokenStore().SetToken("tok")

	page, err := c.Tokens(context.Background(), 1, 20, "volume")
	require.NoError(t, err)
	require.Len(t, page.Tokens, 1)
	assert.Equal(t, "SOL", page.Tokens[0].Symbol)
}

func TestAPIErrorMapping(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})

	c := newClientFor(t, handler, Config{})
	_, err := c.Block(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "not found", apiErr.Message)
}

func TestUnauthorizedClearsTokenOnce(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "session expired"})
	})

	var hookCalls atomic.Int32
	c := newClientFor(t, handler, Config{
		OnUnauthorized: func() { hookCalls.Add(1) },
	})
	c.TokenStore().SetToken("stale")

	// Many concurrent requests race to invalidate; the hook must fire
	// exactly once and every caller still sees its own error.
	const workers = 16
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Profile(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.True(t, IsUnauthorized(err), "worker %d: %v", i, err)
	}
	assert.Equal(t, int32(1), hookCalls.Load())
	assert.Empty(t, c.TokenStore().Token())
}

func TestForbiddenKeepsToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "admin role required"})
	})

	var hookCalls atomic.Int32
	c := newClientFor(t, handler, Config{
		OnUnauthorized: func() { hookCalls.Add(1) },
	})
	c.TokenStore().SetToken("user-token")

	_, err := c.Admin().Users(context.Background(), 1, 20)
	assert.True(t, IsForbidden(err))
	assert.Equal(t, "user-token", c.TokenStore().Token(), "403 must not clear the credential")
	assert.Equal(t, int32(0), hookCalls.Load())
}

func TestLoginStoresToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "a@b.com", body["email"])
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "fresh-token",
			User:  User{Email: "a@b.com"},
		})
	})

	c := newClientFor(t, handler, Config{})
	resp, err := c.Login(context.Background(), "a@b.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", resp.Token)
	assert.Equal(t, "fresh-token", c.TokenStore().Token())
}

func TestLogoutClearsTokenEvenOnServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "session expired"})
	})

	c := newClientFor(t, handler, Config{})
	c.TokenStore().SetToken("stale")
	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.TokenStore().Token())
}

func TestSearchEmptyQuery(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty query must not reach the network")
	})

	c := newClientFor(t, handler, Config{})
	_, err := c.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearchTaggedUnion(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "123456":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"type":   "block",
				"result": BlockDetails{Block: Block{BlockNumber: 123456}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "no results found", "query": r.URL.Query().Get("q")})
		}
	})

	c := newClientFor(t, handler, Config{})

	res, err := c.Search(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, SearchBlock, res.Type)
	require.NotNil(t, res.Block)
	assert.EqualValues(t, 123456, res.Block.BlockNumber)
	assert.Nil(t, res.Transaction)
	assert.Nil(t, res.Address)

	res, err = c.Search(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, SearchUnknown, res.Type)
	assert.Nil(t, res.Block)
}

func TestMemoryTokenStoreClearIdempotent(t *testing.T) {
	store := NewMemoryTokenStore()
	store.SetToken("tok")

	cleared := 0
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Clear() {
				mu.Lock()
				cleared++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, cleared)
	assert.Empty(t, store.Token())
}

func TestWatchlistCarriesAddedAt(t *testing.T) {
	added := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]WatchlistItem{
			{ID: "w1", Type: "token", Address: "mint1", AddedAt: added},
		})
	})

	c := newClientFor(t, handler, Config{})
	items, err := c.Watchlist(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].AddedAt.Equal(added))
}

func TestNoContentResponses(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	c := newClientFor(t, handler, Config{})
	assert.NoError(t, c.DeleteAPIKey(context.Background(), "key-id"))
	assert.NoError(t, c.RemoveWatchlistItem(context.Background(), "item-id"))
}
