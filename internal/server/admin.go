package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/lumenscan/explorer-backend/internal/model"
)

type usersResponse struct {
	Users []model.User `json:"users"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func (s *Server) adminListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	users, total, err := s.store.ListUsers(r.Context(), page, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, usersResponse{Users: users, Total: total, Page: page, Limit: limit})
}

func (s *Server) adminUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role   *string `json:"role"`
		Status *string `json:"status"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.store.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if req.Role != nil {
		switch *req.Role {
		case model.RoleUser, model.RoleAdmin:
			user.Role = *req.Role
		default:
			writeError(w, http.StatusBadRequest, "unknown role")
			return
		}
	}
	if req.Status != nil {
		switch *req.Status {
		case model.UserStatusActive, model.UserStatusSuspended:
			user.Status = *req.Status
		default:
			writeError(w, http.StatusBadRequest, "unknown status")
			return
		}
	}

	user, err = s.store.UpdateUser(r.Context(), user)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) adminListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := s.store.ListAds(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if ads == nil {
		ads = []model.Ad{}
	}
	writeJSON(w, http.StatusOK, ads)
}

type adRequest struct {
	Slot     *string `json:"slot"`
	ImageURL *string `json:"image_url"`
	LinkURL  *string `json:"link_url"`
	Label    *string `json:"label"`
	Active   *bool   `json:"active"`
}

func (s *Server) adminCreateAd(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Slot == nil || strings.TrimSpace(*req.Slot) == "" {
		writeError(w, http.StatusBadRequest, "slot is required")
		return
	}
	if req.ImageURL == nil || req.LinkURL == nil {
		writeError(w, http.StatusBadRequest, "image_url and link_url are required")
		return
	}

	ad := model.Ad{
		Slot:     *req.Slot,
		ImageURL: *req.ImageURL,
		LinkURL:  *req.LinkURL,
		Label:    req.Label,
		Active:   true,
	}
	if req.Active != nil {
		ad.Active = *req.Active
	}

	ad, err := s.store.CreateAd(r.Context(), ad)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ad)
}

func (s *Server) adminUpdateAd(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ad, err := s.store.GetAd(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if req.Slot != nil {
		ad.Slot = *req.Slot
	}
	if req.ImageURL != nil {
		ad.ImageURL = *req.ImageURL
	}
	if req.LinkURL != nil {
		ad.LinkURL = *req.LinkURL
	}
	if req.Label != nil {
		ad.Label = req.Label
	}
	if req.Active != nil {
		ad.Active = *req.Active
	}

	ad, err = s.store.UpdateAd(r.Context(), ad)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

func (s *Server) adminDeleteAd(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAd(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
