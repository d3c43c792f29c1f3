package client

import (
	"context"
	"net/http"
)

// AdminService exposes the admin-only operations. It shares the parent
// client's transport and credential, so the privilege boundary lives in
// the type rather than in a nested path string.
type AdminService struct {
	c *Client
}

// Admin returns the admin-scoped operations.
func (c *Client) Admin() *AdminService {
	return &AdminService{c: c}
}

// Users lists accounts.
func (a *AdminService) Users(ctx context.Context, page, limit int) (*UsersPage, error) {
	var out UsersPage
	if err := a.c.get(ctx, "/api/admin/users", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserUpdate is a partial admin change to an account. Nil fields are
// untouched.
type UserUpdate struct {
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

// UpdateUser applies a partial update to an account.
func (a *AdminService) UpdateUser(ctx context.Context, id string, update UserUpdate) (*User, error) {
	var out User
	if err := a.c.do(ctx, http.MethodPut, "/api/admin/users/"+id, nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ads lists every ad placement, active or not.
func (a *AdminService) Ads(ctx context.Context) ([]Ad, error) {
	var out []Ad
	if err := a.c.get(ctx, "/api/admin/ads", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdInput creates or updates an ad placement. On update, nil fields are
// untouched.
type AdInput struct {
	Slot     *string `json:"slot,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	LinkURL  *string `json:"link_url,omitempty"`
	Label    *string `json:"label,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// CreateAd creates an ad placement. Slot, ImageURL and LinkURL are
// required.
func (a *AdminService) CreateAd(ctx context.Context, input AdInput) (*Ad, error) {
	var out Ad
	if err := a.c.do(ctx, http.MethodPost, "/api/admin/ads", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAd applies a partial update to an ad placement.
func (a *AdminService) UpdateAd(ctx context.Context, id string, input AdInput) (*Ad, error) {
	var out Ad
	if err := a.c.do(ctx, http.MethodPut, "/api/admin/ads/"+id, nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAd removes an ad placement.
func (a *AdminService) DeleteAd(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, "/api/admin/ads/"+id, nil, nil, nil)
}
