// Package storage defines the persistence interfaces for account-side
// entities and provides an in-memory implementation.
package storage

import (
	"context"
	"errors"

	"github.com/lumenscan/explorer-backend/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a unique constraint would be violated.
var ErrConflict = errors.New("already exists")

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	UpdateUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]model.User, int64, error)
}

// SessionStore persists issued session tokens by hash.
type SessionStore interface {
	CreateSession(ctx context.Context, s model.Session) (model.Session, error)
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (model.Session, error)
	TouchSession(ctx context.Context, id string) error
	DeleteSession(ctx context.Context, tokenHash string) error
}

// APIKeyStore persists developer API keys.
type APIKeyStore interface {
	CreateAPIKey(ctx context.Context, k model.APIKey) (model.APIKey, error)
	GetAPIKeyByHash(ctx context.Context, keyHash string) (model.APIKey, error)
	ListAPIKeys(ctx context.Context, userID string) ([]model.APIKey, error)
	DeleteAPIKey(ctx context.Context, userID, id string) error
}

// WatchlistStore persists per-user watchlists.
type WatchlistStore interface {
	AddWatchlistItem(ctx context.Context, item model.WatchlistItem) (model.WatchlistItem, error)
	ListWatchlist(ctx context.Context, userID string) ([]model.WatchlistItem, error)
	RemoveWatchlistItem(ctx context.Context, userID, id string) error
}

// AdStore persists ad placements.
type AdStore interface {
	CreateAd(ctx context.Context, ad model.Ad) (model.Ad, error)
	UpdateAd(ctx context.Context, ad model.Ad) (model.Ad, error)
	GetAd(ctx context.Context, id string) (model.Ad, error)
	ListAds(ctx context.Context) ([]model.Ad, error)
	ListActiveAdsBySlot(ctx context.Context, slot string) ([]model.Ad, error)
	DeleteAd(ctx context.Context, id string) error
}

// Store groups every persistence concern of the service.
type Store interface {
	UserStore
	SessionStore
	APIKeyStore
	WatchlistStore
	AdStore
}
