package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lumenscan/explorer-backend/internal/auth"
	"github.com/lumenscan/explorer-backend/internal/model"
	"github.com/lumenscan/explorer-backend/internal/storage"
)

type credentialsRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Username *string `json:"username,omitempty"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  model.Profile `json:"user"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "invalid email")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hash password", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := s.store.CreateUser(r.Context(), model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Username:     req.Username,
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		writeStoreError(w, err)
		return
	}

	s.issueSession(w, r, user, http.StatusCreated)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if user.Status != model.UserStatusActive {
		writeError(w, http.StatusForbidden, "account suspended")
		return
	}

	s.issueSession(w, r, user, http.StatusOK)
}

// issueSession mints a token, records its hash and writes the auth response.
func (s *Server) issueSession(w http.ResponseWriter, r *http.Request, user model.User, status int) {
	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("generate token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if _, err := s.store.CreateSession(r.Context(), model.Session{
		UserID:    user.ID,
		TokenHash: auth.HashToken(token),
		ExpiresAt: time.Now().Add(s.tokens.TokenTTL()),
	}); err != nil {
		s.logger.Error("create session", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, status, authResponse{Token: token, User: user.Profile()})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if raw == "" || raw == r.Header.Get("Authorization") {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	if err := s.store.DeleteSession(r.Context(), auth.HashToken(raw)); err != nil && !errors.Is(err, storage.ErrNotFound) {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
