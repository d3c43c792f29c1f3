// Package postgres implements the storage interfaces backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lumenscan/explorer-backend/internal/model"
	"github.com/lumenscan/explorer-backend/internal/storage"
)

// Store implements storage.Store backed by PostgreSQL.
type Store struct {
	db *sql.DB
}

var _ storage.Store = (*Store)(nil)

// Open connects to the database at dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(50)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the tables when they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			username      TEXT,
			role          TEXT NOT NULL,
			status        TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS user_sessions (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			token_hash   TEXT NOT NULL UNIQUE,
			expires_at   TIMESTAMPTZ NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL,
			last_seen_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS api_keys (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name          TEXT NOT NULL,
			key_hash      TEXT NOT NULL UNIQUE,
			plan          TEXT NOT NULL,
			rate_limit    INTEGER NOT NULL,
			requests_used INTEGER NOT NULL DEFAULT 0,
			active        BOOLEAN NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS watchlist_items (
			id        TEXT PRIMARY KEY,
			user_id   TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			item_type TEXT NOT NULL,
			address   TEXT NOT NULL,
			name      TEXT,
			added_at  TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS ads (
			id          TEXT PRIMARY KEY,
			slot        TEXT NOT NULL,
			image_url   TEXT NOT NULL,
			link_url    TEXT NOT NULL,
			label       TEXT,
			active      BOOLEAN NOT NULL,
			impressions BIGINT NOT NULL DEFAULT 0,
			clicks      BIGINT NOT NULL DEFAULT 0,
			created_at  TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

// mapUnique converts a unique constraint violation into ErrConflict.
func mapUnique(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return storage.ErrConflict
	}
	return err
}

// --- UserStore ---------------------------------------------------------------

func (s *Store) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, username, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.Email, u.PasswordHash, u.Username, u.Role, u.Status, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return model.User{}, mapUnique(err)
	}
	return u, nil
}

func (s *Store) UpdateUser(ctx context.Context, u model.User) (model.User, error) {
	existing, err := s.GetUser(ctx, u.ID)
	if err != nil {
		return model.User{}, err
	}
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET email = $2, password_hash = $3, username = $4, role = $5, status = $6, updated_at = $7
		WHERE id = $1
	`, u.ID, u.Email, u.PasswordHash, u.Username, u.Role, u.Status, u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return model.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (model.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, username, role, status, created_at, updated_at
		FROM users WHERE id = $1
	`, id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, username, role, status, created_at, updated_at
		FROM users WHERE lower(email) = lower($1)
	`, email))
}

func (s *Store) scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Username, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, mapNoRows(err)
	}
	return u, nil
}

func (s *Store) ListUsers(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email, password_hash, username, role, status, created_at, updated_at
		FROM users ORDER BY created_at
		LIMIT $1 OFFSET $2
	`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]model.User, 0, limit)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Username, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// --- SessionStore ------------------------------------------------------------

func (s *Store) CreateSession(ctx context.Context, sess model.Session) (model.Session, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	sess.CreatedAt = now
	sess.LastSeenAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_sessions (id, user_id, token_hash, expires_at, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, sess.ID, sess.UserID, sess.TokenHash, sess.ExpiresAt, sess.CreatedAt, sess.LastSeenAt)
	if err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

func (s *Store) GetSessionByTokenHash(ctx context.Context, tokenHash string) (model.Session, error) {
	var sess model.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, token_hash, expires_at, created_at, last_seen_at
		FROM user_sessions WHERE token_hash = $1 AND expires_at > now()
	`, tokenHash).Scan(&sess.ID, &sess.UserID, &sess.TokenHash, &sess.ExpiresAt, &sess.CreatedAt, &sess.LastSeenAt)
	if err != nil {
		return model.Session{}, mapNoRows(err)
	}
	return sess, nil
}

func (s *Store) TouchSession(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE user_sessions SET last_seen_at = now() WHERE id = $1
	`, id)
	return err
}

func (s *Store) DeleteSession(ctx context.Context, tokenHash string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM user_sessions WHERE token_hash = $1`, tokenHash)
	return err
}

// --- APIKeyStore -------------------------------------------------------------

func (s *Store) CreateAPIKey(ctx context.Context, k model.APIKey) (model.APIKey, error) {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	k.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO api_keys (id, user_id, name, key_hash, plan, rate_limit, requests_used, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, k.ID, k.UserID, k.Name, k.KeyHash, k.Plan, k.RateLimit, k.RequestsUsed, k.Active, k.CreatedAt)
	if err != nil {
		return model.APIKey{}, err
	}
	return k, nil
}

func (s *Store) GetAPIKeyByHash(ctx context.Context, keyHash string) (model.APIKey, error) {
	var k model.APIKey
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, key_hash, plan, rate_limit, requests_used, active, created_at
		FROM api_keys WHERE key_hash = $1 AND active
	`, keyHash).Scan(&k.ID, &k.UserID, &k.Name, &k.KeyHash, &k.Plan, &k.RateLimit, &k.RequestsUsed, &k.Active, &k.CreatedAt)
	if err != nil {
		return model.APIKey{}, mapNoRows(err)
	}
	return k, nil
}

func (s *Store) ListAPIKeys(ctx context.Context, userID string) ([]model.APIKey, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, key_hash, plan, rate_limit, requests_used, active, created_at
		FROM api_keys WHERE user_id = $1 ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]model.APIKey, 0)
	for rows.Next() {
		var k model.APIKey
		if err := rows.Scan(&k.ID, &k.UserID, &k.Name, &k.KeyHash, &k.Plan, &k.RateLimit, &k.RequestsUsed, &k.Active, &k.CreatedAt); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *Store) DeleteAPIKey(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM api_keys WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// --- WatchlistStore ----------------------------------------------------------

func (s *Store) AddWatchlistItem(ctx context.Context, item model.WatchlistItem) (model.WatchlistItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.AddedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO watchlist_items (id, user_id, item_type, address, name, added_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ID, item.UserID, item.Type, item.Address, item.Name, item.AddedAt)
	if err != nil {
		return model.WatchlistItem{}, err
	}
	return item, nil
}

func (s *Store) ListWatchlist(ctx context.Context, userID string) ([]model.WatchlistItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, item_type, address, name, added_at
		FROM watchlist_items WHERE user_id = $1 ORDER BY added_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.WatchlistItem, 0)
	for rows.Next() {
		var item model.WatchlistItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Type, &item.Address, &item.Name, &item.AddedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) RemoveWatchlistItem(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM watchlist_items WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// --- AdStore -----------------------------------------------------------------

func (s *Store) CreateAd(ctx context.Context, ad model.Ad) (model.Ad, error) {
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	ad.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ads (id, slot, image_url, link_url, label, active, impressions, clicks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, ad.ID, ad.Slot, ad.ImageURL, ad.LinkURL, ad.Label, ad.Active, ad.Impressions, ad.Clicks, ad.CreatedAt)
	if err != nil {
		return model.Ad{}, err
	}
	return ad, nil
}

func (s *Store) UpdateAd(ctx context.Context, ad model.Ad) (model.Ad, error) {
	existing, err := s.GetAd(ctx, ad.ID)
	if err != nil {
		return model.Ad{}, err
	}
	ad.CreatedAt = existing.CreatedAt

	result, err := s.db.ExecContext(ctx, `
		UPDATE ads
		SET slot = $2, image_url = $3, link_url = $4, label = $5, active = $6, impressions = $7, clicks = $8
		WHERE id = $1
	`, ad.ID, ad.Slot, ad.ImageURL, ad.LinkURL, ad.Label, ad.Active, ad.Impressions, ad.Clicks)
	if err != nil {
		return model.Ad{}, err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return model.Ad{}, storage.ErrNotFound
	}
	return ad, nil
}

func (s *Store) GetAd(ctx context.Context, id string) (model.Ad, error) {
	var ad model.Ad
	err := s.db.QueryRowContext(ctx, `
		SELECT id, slot, image_url, link_url, label, active, impressions, clicks, created_at
		FROM ads WHERE id = $1
	`, id).Scan(&ad.ID, &ad.Slot, &ad.ImageURL, &ad.LinkURL, &ad.Label, &ad.Active, &ad.Impressions, &ad.Clicks, &ad.CreatedAt)
	if err != nil {
		return model.Ad{}, mapNoRows(err)
	}
	return ad, nil
}

func (s *Store) ListAds(ctx context.Context) ([]model.Ad, error) {
	return s.queryAds(ctx, `
		SELECT id, slot, image_url, link_url, label, active, impressions, clicks, created_at
		FROM ads ORDER BY created_at
	`)
}

func (s *Store) ListActiveAdsBySlot(ctx context.Context, slot string) ([]model.Ad, error) {
	return s.queryAds(ctx, `
		SELECT id, slot, image_url, link_url, label, active, impressions, clicks, created_at
		FROM ads WHERE active AND slot = $1 ORDER BY created_at
	`, slot)
}

func (s *Store) queryAds(ctx context.Context, query string, args ...interface{}) ([]model.Ad, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ads := make([]model.Ad, 0)
	for rows.Next() {
		var ad model.Ad
		if err := rows.Scan(&ad.ID, &ad.Slot, &ad.ImageURL, &ad.LinkURL, &ad.Label, &ad.Active, &ad.Impressions, &ad.Clicks, &ad.CreatedAt); err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

func (s *Store) DeleteAd(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}
