// Package middleware provides the HTTP middleware for the explorer API.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/lumenscan/explorer-backend/internal/auth"
	"github.com/lumenscan/explorer-backend/internal/model"
	"github.com/lumenscan/explorer-backend/internal/storage"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	roleKey   contextKey = "role"
)

// UserID extracts the authenticated user ID from the request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// Role extracts the authenticated user role from the request context.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// Auth authenticates requests via bearer session tokens or API keys.
type Auth struct {
	store  storage.Store
	tokens *auth.Manager
	logger *zap.Logger
}

// NewAuth creates the authentication middleware.
func NewAuth(store storage.Store, tokens *auth.Manager, logger *zap.Logger) *Auth {
	return &Auth{store: store, tokens: tokens, logger: logger}
}

// Handler rejects requests without valid credentials and otherwise
// attaches the caller's identity to the request context.
func (a *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// API key first: developer-portal traffic identifies itself
		// with X-API-Key rather than a session.
		if apiKey := r.Header.Get("X-API-Key"); apiKey != "" {
			key, err := a.store.GetAPIKeyByHash(r.Context(), auth.HashToken(apiKey))
			if err == nil {
				user, err := a.store.GetUser(r.Context(), key.UserID)
				if err == nil && user.Status == model.UserStatusActive {
					next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), user.ID, user.Role)))
					return
				}
			}
		}

		token := bearerToken(r)
		if token == "" {
			jsonError(w, "missing authorization", http.StatusUnauthorized)
			return
		}

		claims, err := a.tokens.ValidateToken(token)
		if err != nil {
			jsonError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		// The token must also map to a live server-side session, so
		// logout and revocation take effect immediately.
		session, err := a.store.GetSessionByTokenHash(r.Context(), auth.HashToken(token))
		if err != nil {
			jsonError(w, "session expired", http.StatusUnauthorized)
			return
		}
		if err := a.store.TouchSession(r.Context(), session.ID); err != nil {
			a.logger.Warn("touch session", zap.Error(err))
		}

		// Role and status come from the user record, not the token,
		// so suspensions and promotions apply to live sessions.
		user, err := a.store.GetUser(r.Context(), claims.UserID)
		if err != nil || user.Status != model.UserStatusActive {
			jsonError(w, "account unavailable", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), user.ID, user.Role)))
	})
}

// RequireAdmin rejects authenticated callers without the admin role. It
// must run after Handler.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserID(r.Context()) == "" {
			jsonError(w, "missing authorization", http.StatusUnauthorized)
			return
		}
		if Role(r.Context()) != model.RoleAdmin {
			jsonError(w, "admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withIdentity(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[7:]
	}
	return ""
}

func jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
