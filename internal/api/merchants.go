package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/finview-dev/finview/internal/model"
)

// MerchantService wraps the /merchants endpoints.
type MerchantService struct {
	c *Client
}

// MerchantFilter narrows merchant listings.
type MerchantFilter struct {
	CategoryID string
	Search     string
}

// Values renders the filter as request query parameters.
func (f MerchantFilter) Values() url.Values {
	v := url.Values{}
	if f.CategoryID != "" {
		v.Set("categoryId", f.CategoryID)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	return v
}

// MerchantInput is the validated DTO for merchant create/update.
type MerchantInput struct {
	Name       string         `json:"name"`
	CategoryID string         `json:"categoryId,omitempty"`
	Location   model.Location `json:"location,omitempty"`
	Color      string         `json:"color,omitempty"`
	Icon       string         `json:"icon,omitempty"`
	Phone      string         `json:"phone,omitempty"`
}

// List fetches merchants matching the filter.
func (s *MerchantService) List(ctx context.Context, filter MerchantFilter) ([]model.Merchant, error) {
	var out []model.Merchant
	if err := s.c.do(ctx, http.MethodGet, "/merchants", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single merchant by id.
func (s *MerchantService) Get(ctx context.Context, id string) (model.Merchant, error) {
	var out model.Merchant
	if err := s.c.do(ctx, http.MethodGet, "/merchants/"+id, nil, nil, &out); err != nil {
		return model.Merchant{}, err
	}
	return out, nil
}

// Create creates a merchant.
func (s *MerchantService) Create(ctx context.Context, in MerchantInput) (model.Merchant, error) {
	var out model.Merchant
	if err := s.c.do(ctx, http.MethodPost, "/merchants", nil, in, &out); err != nil {
		return model.Merchant{}, err
	}
	return out, nil
}

// Update patches a merchant.
func (s *MerchantService) Update(ctx context.Context, id string, in MerchantInput) (model.Merchant, error) {
	var out model.Merchant
	if err := s.c.do(ctx, http.MethodPatch, "/merchants/"+id, nil, in, &out); err != nil {
		return model.Merchant{}, err
	}
	return out, nil
}

// Delete removes a merchant.
func (s *MerchantService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/merchants/"+id, nil, nil, nil)
}
