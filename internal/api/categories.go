package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/finview-dev/finview/internal/model"
)

// CategoryService wraps the /categories endpoints.
type CategoryService struct {
	c *Client
}

// CategoryFilter narrows category listings.
type CategoryFilter struct {
	Type model.CategoryType
}

// Values renders the filter as request query parameters.
func (f CategoryFilter) Values() url.Values {
	v := url.Values{}
	if f.Type != "" {
		v.Set("type", string(f.Type))
	}
	return v
}

// CategoryInput is the validated DTO for category create/update.
type CategoryInput struct {
	Name  string             `json:"name"`
	Type  model.CategoryType `json:"type"`
	Color string             `json:"color,omitempty"`
	Icon  string             `json:"icon,omitempty"`
}

// List fetches categories matching the filter.
func (s *CategoryService) List(ctx context.Context, filter CategoryFilter) ([]model.Category, error) {
	var out []model.Category
	if err := s.c.do(ctx, http.MethodGet, "/categories", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single category by id.
func (s *CategoryService) Get(ctx context.Context, id string) (model.Category, error) {
	var out model.Category
	if err := s.c.do(ctx, http.MethodGet, "/categories/"+id, nil, nil, &out); err != nil {
		return model.Category{}, err
	}
	return out, nil
}

// Create creates a custom category.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	var out model.Category
	if err := s.c.do(ctx, http.MethodPost, "/categories", nil, in, &out); err != nil {
		return model.Category{}, err
	}
	return out, nil
}

// Update patches a category.
func (s *CategoryService) Update(ctx context.Context, id string, in CategoryInput) (model.Category, error) {
	var out model.Category
	if err := s.c.do(ctx, http.MethodPatch, "/categories/"+id, nil, in, &out); err != nil {
		return model.Category{}, err
	}
	return out, nil
}

// Delete removes a category. Dependent transactions are reassigned to
// reassignTo, which the backend requires for non-empty categories.
func (s *CategoryService) Delete(ctx context.Context, id, reassignTo string) error {
	v := url.Values{}
	if reassignTo != "" {
		v.Set("reassignTo", reassignTo)
	}
	return s.c.do(ctx, http.MethodDelete, "/categories/"+id, v, nil, nil)
}
