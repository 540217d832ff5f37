package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/finview-dev/finview/internal/model"
)

// AccountService wraps the /accounts endpoints.
type AccountService struct {
	c *Client
}

// AccountFilter narrows account listings.
type AccountFilter struct {
	Type     model.AccountType
	Currency string
}

// Values renders the filter as request query parameters. The same pairs feed
// the cache key, so semantically equal filters share one cached result.
func (f AccountFilter) Values() url.Values {
	v := url.Values{}
	if f.Type != "" {
		v.Set("type", string(f.Type))
	}
	if f.Currency != "" {
		v.Set("currency", f.Currency)
	}
	return v
}

// CreateAccountInput is the validated DTO for account creation.
type CreateAccountInput struct {
	Name        string            `json:"name"`
	Type        model.AccountType `json:"type"`
	Currency    string            `json:"currency"`
	Balance     decimal.Decimal   `json:"balance"`
	Institution string            `json:"institution,omitempty"`
}

// UpdateAccountInput carries only the fields being changed.
type UpdateAccountInput struct {
	Name        *string `json:"name,omitempty"`
	Institution *string `json:"institution,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// List fetches accounts matching the filter.
func (s *AccountService) List(ctx context.Context, filter AccountFilter) ([]model.Account, error) {
	var out []model.Account
	if err := s.c.do(ctx, http.MethodGet, "/accounts", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single account by id.
func (s *AccountService) Get(ctx context.Context, id string) (model.Account, error) {
	var out model.Account
	if err := s.c.do(ctx, http.MethodGet, "/accounts/"+id, nil, nil, &out); err != nil {
		return model.Account{}, err
	}
	return out, nil
}

// Create creates an account and returns the server's record.
func (s *AccountService) Create(ctx context.Context, in CreateAccountInput) (model.Account, error) {
	var out model.Account
	if err := s.c.do(ctx, http.MethodPost, "/accounts", nil, in, &out); err != nil {
		return model.Account{}, err
	}
	return out, nil
}

// Update patches an account.
func (s *AccountService) Update(ctx context.Context, id string, in UpdateAccountInput) (model.Account, error) {
	var out model.Account
	if err := s.c.do(ctx, http.MethodPatch, "/accounts/"+id, nil, in, &out); err != nil {
		return model.Account{}, err
	}
	return out, nil
}

// Delete removes an account. Server-side this cascades into transactions and
// budget recalculation, which is why the mutation layer fans out
// invalidation beyond the accounts subtree.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/accounts/"+id, nil, nil, nil)
}
