package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenscan/explorer-backend/internal/model"
)

func TestMemoryUserCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	created, err := store.CreateUser(ctx, model.User{
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Email uniqueness is case-insensitive.
	_, err = store.CreateUser(ctx, model.User{Email: "ALICE@example.com"})
	assert.ErrorIs(t, err, ErrConflict)

	got, err := store.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	byEmail, err := store.GetUserByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	created.Role = model.RoleAdmin
	updated, err := store.UpdateUser(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = store.UpdateUser(ctx, model.User{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryListUsersPagination(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := store.CreateUser(ctx, model.User{Email: email})
		require.NoError(t, err)
	}

	users, total, err := store.ListUsers(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, users, 2)

	users, total, err = store.ListUsers(ctx, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, users, 1)

	users, _, err = store.ListUsers(ctx, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMemorySessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	session, err := store.CreateSession(ctx, model.Session{
		UserID:    "u1",
		TokenHash: "hash1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)

	got, err := store.GetSessionByTokenHash(ctx, "hash1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	require.NoError(t, store.TouchSession(ctx, session.ID))
	assert.ErrorIs(t, store.TouchSession(ctx, "missing"), ErrNotFound)

	// Expired sessions are invisible.
	_, err = store.CreateSession(ctx, model.Session{
		UserID:    "u1",
		TokenHash: "hash2",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)
	_, err = store.GetSessionByTokenHash(ctx, "hash2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.DeleteSession(ctx, "hash1"))
	_, err = store.GetSessionByTokenHash(ctx, "hash1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an unknown session is a no-op.
	assert.NoError(t, store.DeleteSession(ctx, "hash1"))
}

func TestMemoryAPIKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	created, err := store.CreateAPIKey(ctx, model.APIKey{
		UserID:  "u1",
		Name:    "ci",
		Key:     "sk_live_plaintext",
		KeyHash: "kh1",
		Plan:    "free",
		Active:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "sk_live_plaintext", created.Key)

	// The stored copy drops the plaintext.
	keys, err := store.ListAPIKeys(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Empty(t, keys[0].Key)

	got, err := store.GetAPIKeyByHash(ctx, "kh1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Deactivated keys no longer authenticate.
	_, err = store.CreateAPIKey(ctx, model.APIKey{UserID: "u1", KeyHash: "kh2", Active: false})
	require.NoError(t, err)
	_, err = store.GetAPIKeyByHash(ctx, "kh2")
	assert.ErrorIs(t, err, ErrNotFound)

	// Keys are owner-scoped on delete.
	assert.ErrorIs(t, store.DeleteAPIKey(ctx, "u2", created.ID), ErrNotFound)
	require.NoError(t, store.DeleteAPIKey(ctx, "u1", created.ID))
	_, err = store.GetAPIKeyByHash(ctx, "kh1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryWatchlist(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	item, err := store.AddWatchlistItem(ctx, model.WatchlistItem{
		UserID:  "u1",
		Type:    model.WatchTypeToken,
		Address: "mint1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	_, err = store.AddWatchlistItem(ctx, model.WatchlistItem{
		UserID:  "u2",
		Type:    model.WatchTypeAddress,
		Address: "addr1",
	})
	require.NoError(t, err)

	items, err := store.ListWatchlist(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "mint1", items[0].Address)

	assert.ErrorIs(t, store.RemoveWatchlistItem(ctx, "u2", item.ID), ErrNotFound)
	require.NoError(t, store.RemoveWatchlistItem(ctx, "u1", item.ID))

	items, err = store.ListWatchlist(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryAds(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	active, err := store.CreateAd(ctx, model.Ad{
		Slot:     "home_banner",
		ImageURL: "https://cdn/a.png",
		LinkURL:  "https://a",
		Active:   true,
	})
	require.NoError(t, err)

	_, err = store.CreateAd(ctx, model.Ad{
		Slot:   "home_banner",
		Active: false,
	})
	require.NoError(t, err)

	_, err = store.CreateAd(ctx, model.Ad{
		Slot:   "sidebar",
		Active: true,
	})
	require.NoError(t, err)

	all, err := store.ListAds(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	bySlot, err := store.ListActiveAdsBySlot(ctx, "home_banner")
	require.NoError(t, err)
	require.Len(t, bySlot, 1)
	assert.Equal(t, active.ID, bySlot[0].ID)

	active.Active = false
	updated, err := store.UpdateAd(ctx, active)
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, active.CreatedAt, updated.CreatedAt)

	bySlot, err = store.ListActiveAdsBySlot(ctx, "home_banner")
	require.NoError(t, err)
	assert.Empty(t, bySlot)

	require.NoError(t, store.DeleteAd(ctx, active.ID))
	assert.ErrorIs(t, store.DeleteAd(ctx, active.ID), ErrNotFound)
	_, err = store.GetAd(ctx, active.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
