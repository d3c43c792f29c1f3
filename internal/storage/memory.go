package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lumenscan/explorer-backend/internal/model"
)

// Memory is a thread-safe in-memory Store. It backs local development and
// tests; production deployments use the postgres store.
type Memory struct {
	mu        sync.RWMutex
	users     map[string]model.User
	sessions  map[string]model.Session // keyed by token hash
	apiKeys   map[string]model.APIKey
	watchlist map[string]model.WatchlistItem
	ads       map[string]model.Ad
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:     make(map[string]model.User),
		sessions:  make(map[string]model.Session),
		apiKeys:   make(map[string]model.APIKey),
		watchlist: make(map[string]model.WatchlistItem),
		ads:       make(map[string]model.Ad),
	}
}

// UserStore implementation ----------------------------------------------------

func (m *Memory) CreateUser(_ context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return model.User{}, ErrConflict
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	m.users[u.ID] = u
	return u, nil
}

func (m *Memory) UpdateUser(_ context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	original, ok := m.users[u.ID]
	if !ok {
		return model.User{}, ErrNotFound
	}
	u.CreatedAt = original.CreatedAt
	u.UpdatedAt = time.Now().UTC()

	m.users[u.ID] = u
	return u, nil
}

func (m *Memory) GetUser(_ context.Context, id string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (m *Memory) ListUsers(_ context.Context, page, limit int) ([]model.User, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })

	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []model.User{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// SessionStore implementation -------------------------------------------------

func (m *Memory) CreateSession(_ context.Context, s model.Session) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.LastSeenAt = now

	m.sessions[s.TokenHash] = s
	return s, nil
}

func (m *Memory) GetSessionByTokenHash(_ context.Context, tokenHash string) (model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[tokenHash]
	if !ok {
		return model.Session{}, ErrNotFound
	}
	if time.Now().After(s.ExpiresAt) {
		return model.Session{}, ErrNotFound
	}
	return s, nil
}

func (m *Memory) TouchSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for hash, s := range m.sessions {
		if s.ID == id {
			s.LastSeenAt = time.Now().UTC()
			m.sessions[hash] = s
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteSession(_ context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, tokenHash)
	return nil
}

// APIKeyStore implementation --------------------------------------------------

func (m *Memory) CreateAPIKey(_ context.Context, k model.APIKey) (model.APIKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	k.CreatedAt = time.Now().UTC()

	stored := k
	stored.Key = "" // plaintext key is never retained
	m.apiKeys[k.ID] = stored
	return k, nil
}

func (m *Memory) GetAPIKeyByHash(_ context.Context, keyHash string) (model.APIKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, k := range m.apiKeys {
		if k.KeyHash == keyHash && k.Active {
			return k, nil
		}
	}
	return model.APIKey{}, ErrNotFound
}

func (m *Memory) ListAPIKeys(_ context.Context, userID string) ([]model.APIKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]model.APIKey, 0)
	for _, k := range m.apiKeys {
		if k.UserID == userID {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].CreatedAt.Before(keys[j].CreatedAt) })
	return keys, nil
}

func (m *Memory) DeleteAPIKey(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k, ok := m.apiKeys[id]
	if !ok || k.UserID != userID {
		return ErrNotFound
	}
	delete(m.apiKeys, id)
	return nil
}

// WatchlistStore implementation -----------------------------------------------

func (m *Memory) AddWatchlistItem(_ context.Context, item model.WatchlistItem) (model.WatchlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.AddedAt = time.Now().UTC()

	m.watchlist[item.ID] = item
	return item, nil
}

func (m *Memory) ListWatchlist(_ context.Context, userID string) ([]model.WatchlistItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]model.WatchlistItem, 0)
	for _, item := range m.watchlist {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].AddedAt.Before(items[j].AddedAt) })
	return items, nil
}

func (m *Memory) RemoveWatchlistItem(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.watchlist[id]
	if !ok || item.UserID != userID {
		return ErrNotFound
	}
	delete(m.watchlist, id)
	return nil
}

// AdStore implementation ------------------------------------------------------

func (m *Memory) CreateAd(_ context.Context, ad model.Ad) (model.Ad, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	ad.CreatedAt = time.Now().UTC()

	m.ads[ad.ID] = ad
	return ad, nil
}

func (m *Memory) UpdateAd(_ context.Context, ad model.Ad) (model.Ad, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	original, ok := m.ads[ad.ID]
	if !ok {
		return model.Ad{}, ErrNotFound
	}
	ad.CreatedAt = original.CreatedAt

	m.ads[ad.ID] = ad
	return ad, nil
}

func (m *Memory) GetAd(_ context.Context, id string) (model.Ad, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ad, ok := m.ads[id]
	if !ok {
		return model.Ad{}, ErrNotFound
	}
	return ad, nil
}

func (m *Memory) ListAds(_ context.Context) ([]model.Ad, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ads := make([]model.Ad, 0, len(m.ads))
	for _, ad := range m.ads {
		ads = append(ads, ad)
	}
	sort.Slice(ads, func(i, j int) bool { return ads[i].CreatedAt.Before(ads[j].CreatedAt) })
	return ads, nil
}

func (m *Memory) ListActiveAdsBySlot(_ context.Context, slot string) ([]model.Ad, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ads := make([]model.Ad, 0)
	for _, ad := range m.ads {
		if ad.Active && ad.Slot == slot {
			ads = append(ads, ad)
		}
	}
	sort.Slice(ads, func(i, j int) bool { return ads[i].CreatedAt.Before(ads[j].CreatedAt) })
	return ads, nil
}

func (m *Memory) DeleteAd(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ads[id]; !ok {
		return ErrNotFound
	}
	delete(m.ads, id)
	return nil
}
