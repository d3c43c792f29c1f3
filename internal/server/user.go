package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/lumenscan/explorer-backend/internal/auth"
	"github.com/lumenscan/explorer-backend/internal/middleware"
	"github.com/lumenscan/explorer-backend/internal/model"
)

// Request quotas per API key plan, requests per minute.
var planRateLimits = map[string]int{
	"free":       10,
	"pro":        100,
	"enterprise": 1000,
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Profile())
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username *string `json:"username"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.store.GetUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if req.Username != nil {
		name := strings.TrimSpace(*req.Username)
		if name == "" {
			user.Username = nil
		} else {
			user.Username = &name
		}
	}

	user, err = s.store.UpdateUser(r.Context(), user)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Profile())
}

func (s *Server) listAPIKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := s.store.ListAPIKeys(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if keys == nil {
		keys = []model.APIKey{}
	}
	writeJSON(w, http.StatusOK, keys)
}

func (s *Server) createAPIKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Plan string `json:"plan"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	limit, ok := planRateLimits[req.Plan]
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown plan")
		return
	}

	plaintext := auth.NewAPIKey()
	key, err := s.store.CreateAPIKey(r.Context(), model.APIKey{
		UserID:    middleware.UserID(r.Context()),
		Name:      req.Name,
		Key:       plaintext,
		KeyHash:   auth.HashToken(plaintext),
		Plan:      req.Plan,
		RateLimit: limit,
		Active:    true,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	// The plaintext key is shown exactly once, on this response.
	key.Key = plaintext
	writeJSON(w, http.StatusCreated, key)
}

func (s *Server) deleteAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAPIKey(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listWatchlist(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListWatchlist(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if items == nil {
		items = []model.WatchlistItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) addWatchlistItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type    string  `json:"type"`
		Address string  `json:"address"`
		Name    *string `json:"name"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch req.Type {
	case model.WatchTypeToken, model.WatchTypeAddress, model.WatchTypeMarket:
	default:
		writeError(w, http.StatusBadRequest, "unknown watchlist type")
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	item, err := s.store.AddWatchlistItem(r.Context(), model.WatchlistItem{
		UserID:  middleware.UserID(r.Context()),
		Type:    req.Type,
		Address: req.Address,
		Name:    req.Name,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) removeWatchlistItem(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveWatchlistItem(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
