package model

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User statuses.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Username     *string   `json:"username,omitempty"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the user-facing projection of a User.
type Profile struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Username  *string `json:"username,omitempty"`
	Role      string  `json:"role"`
	CreatedAt int64   `json:"created_at"`
}

// Profile returns the public projection of u.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Unix(),
	}
}

// APIKey is a developer-portal key. The plaintext Key is only populated on
// the create response; only KeyHash is persisted.
type APIKey struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	Name         string    `json:"name"`
	Key          string    `json:"key,omitempty"`
	KeyHash      string    `json:"-"`
	Plan         string    `json:"plan"`
	RateLimit    int       `json:"rate_limit"`
	RequestsUsed int       `json:"requests_used"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Watchlist item types.
const (
	WatchTypeToken   = "token"
	WatchTypeAddress = "address"
	WatchTypeMarket  = "market"
)

// WatchlistItem is one entry on a user's watchlist.
type WatchlistItem struct {
	ID      string    `json:"id"`
	UserID  string    `json:"-"`
	Type    string    `json:"type"`
	Address string    `json:"address"`
	Name    *string   `json:"name,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// Ad is a placement served to the UI banner slots.
type Ad struct {
	ID          string    `json:"id"`
	Slot        string    `json:"slot"`
	ImageURL    string    `json:"image_url"`
	LinkURL     string    `json:"link_url"`
	Label       *string   `json:"label,omitempty"`
	Active      bool      `json:"active"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session is a server-side record of an issued token. The token itself is
// never stored, only its sha256 hash.
type Session struct {
	ID         string
	UserID     string
	TokenHash  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	LastSeenAt time.Time
}
