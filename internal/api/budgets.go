package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/finview-dev/finview/internal/model"
)

// BudgetService wraps the /budgets endpoints.
type BudgetService struct {
	c *Client
}

// BudgetFilter narrows budget listings.
type BudgetFilter struct {
	Period     model.BudgetPeriod
	CategoryID string
}

// Values renders the filter as request query parameters.
func (f BudgetFilter) Values() url.Values {
	v := url.Values{}
	if f.Period != "" {
		v.Set("period", string(f.Period))
	}
	if f.CategoryID != "" {
		v.Set("categoryId", f.CategoryID)
	}
	return v
}

// BudgetInput is the validated DTO for budget create/update.
type BudgetInput struct {
	CategoryID string             `json:"categoryId"`
	Limit      decimal.Decimal    `json:"limit"`
	Period     model.BudgetPeriod `json:"period"`
	Alerts     model.BudgetAlerts `json:"alerts"`
}

// List fetches budgets matching the filter.
func (s *BudgetService) List(ctx context.Context, filter BudgetFilter) ([]model.Budget, error) {
	var out []model.Budget
	if err := s.c.do(ctx, http.MethodGet, "/budgets", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single budget by id.
func (s *BudgetService) Get(ctx context.Context, id string) (model.Budget, error) {
	var out model.Budget
	if err := s.c.do(ctx, http.MethodGet, "/budgets/"+id, nil, nil, &out); err != nil {
		return model.Budget{}, err
	}
	return out, nil
}

// Status fetches the server-computed spend status for one budget.
func (s *BudgetService) Status(ctx context.Context, id string) (model.BudgetStatus, error) {
	var out model.BudgetStatus
	if err := s.c.do(ctx, http.MethodGet, "/budgets/"+id+"/status", nil, nil, &out); err != nil {
		return model.BudgetStatus{}, err
	}
	return out, nil
}

// Alerts fetches active threshold breaches across all budgets.
func (s *BudgetService) Alerts(ctx context.Context) ([]model.BudgetAlert, error) {
	var out []model.BudgetAlert
	if err := s.c.do(ctx, http.MethodGet, "/budgets/alerts", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a budget.
func (s *BudgetService) Create(ctx context.Context, in BudgetInput) (model.Budget, error) {
	var out model.Budget
	if err := s.c.do(ctx, http.MethodPost, "/budgets", nil, in, &out); err != nil {
		return model.Budget{}, err
	}
	return out, nil
}

// Update patches a budget.
func (s *BudgetService) Update(ctx context.Context, id string, in BudgetInput) (model.Budget, error) {
	var out model.Budget
	if err := s.c.do(ctx, http.MethodPatch, "/budgets/"+id, nil, in, &out); err != nil {
		return model.Budget{}, err
	}
	return out, nil
}

// Delete removes a budget.
func (s *BudgetService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/budgets/"+id, nil, nil, nil)
}
