package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finview-dev/finview/internal/model"
)

// GoalService wraps the /goals endpoints.
type GoalService struct {
	c *Client
}

// GoalFilter narrows goal listings.
type GoalFilter struct {
	Status   model.GoalStatus
	Priority model.GoalPriority
}

// Values renders the filter as request query parameters.
func (f GoalFilter) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.Priority != "" {
		v.Set("priority", string(f.Priority))
	}
	return v
}

// GoalInput is the validated DTO for goal create/update.
type GoalInput struct {
	Name                string             `json:"name"`
	TargetAmount        decimal.Decimal    `json:"targetAmount"`
	CurrentAmount       decimal.Decimal    `json:"currentAmount"`
	Deadline            time.Time          `json:"deadline"`
	Priority            model.GoalPriority `json:"priority"`
	LinkedAccountID     string             `json:"linkedAccountId,omitempty"`
	MonthlyContribution decimal.Decimal    `json:"monthlyContribution"`
}

// ContributionInput funds a goal, optionally from a linked account.
type ContributionInput struct {
	Amount        decimal.Decimal `json:"amount"`
	FromAccountID string          `json:"fromAccountId,omitempty"`
}

// List fetches a page of goals matching the filter.
func (s *GoalService) List(ctx context.Context, filter GoalFilter) (model.Page[model.Goal], error) {
	var out model.Page[model.Goal]
	if err := s.c.do(ctx, http.MethodGet, "/goals", filter.Values(), nil, &out); err != nil {
		return model.Page[model.Goal]{}, err
	}
	return out, nil
}

// Get fetches a single goal by id.
func (s *GoalService) Get(ctx context.Context, id string) (model.Goal, error) {
	var out model.Goal
	if err := s.c.do(ctx, http.MethodGet, "/goals/"+id, nil, nil, &out); err != nil {
		return model.Goal{}, err
	}
	return out, nil
}

// Create creates a goal.
func (s *GoalService) Create(ctx context.Context, in GoalInput) (model.Goal, error) {
	var out model.Goal
	if err := s.c.do(ctx, http.MethodPost, "/goals", nil, in, &out); err != nil {
		return model.Goal{}, err
	}
	return out, nil
}

// Update patches a goal.
func (s *GoalService) Update(ctx context.Context, id string, in GoalInput) (model.Goal, error) {
	var out model.Goal
	if err := s.c.do(ctx, http.MethodPatch, "/goals/"+id, nil, in, &out); err != nil {
		return model.Goal{}, err
	}
	return out, nil
}

// Delete removes a goal.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/goals/"+id, nil, nil, nil)
}

// Contribute adds funds to a goal. The server books the transfer, so the
// mutation layer also invalidates transactions and analytics.
func (s *GoalService) Contribute(ctx context.Context, id string, in ContributionInput) (model.Goal, error) {
	var out model.Goal
	if err := s.c.do(ctx, http.MethodPost, "/goals/"+id+"/contribute", nil, in, &out); err != nil {
		return model.Goal{}, err
	}
	return out, nil
}
