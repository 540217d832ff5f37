package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finview-dev/finview/internal/model"
)

// BillService wraps the /bills endpoints.
type BillService struct {
	c *Client
}

// BillFilter narrows bill listings.
type BillFilter struct {
	AccountID string
	Unpaid    bool
	DueBefore time.Time
}

// Values renders the filter as request query parameters.
func (f BillFilter) Values() url.Values {
	v := url.Values{}
	if f.AccountID != "" {
		v.Set("accountId", f.AccountID)
	}
	if f.Unpaid {
		v.Set("unpaid", "true")
	}
	if !f.DueBefore.IsZero() {
		v.Set("dueBefore", f.DueBefore.Format("2006-01-02"))
	}
	return v
}

// BillInput is the validated DTO for bill create/update.
type BillInput struct {
	Name        string              `json:"name"`
	AccountID   string              `json:"accountId"`
	CategoryID  string              `json:"categoryId"`
	MerchantID  string              `json:"merchantId,omitempty"`
	Amount      decimal.Decimal     `json:"amount"`
	DueDate     time.Time           `json:"dueDate"`
	IsRecurring bool                `json:"isRecurring"`
	Frequency   model.BillFrequency `json:"frequency,omitempty"`
}

// List fetches bills matching the filter.
func (s *BillService) List(ctx context.Context, filter BillFilter) ([]model.Bill, error) {
	var out []model.Bill
	if err := s.c.do(ctx, http.MethodGet, "/bills", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single bill by id.
func (s *BillService) Get(ctx context.Context, id string) (model.Bill, error) {
	var out model.Bill
	if err := s.c.do(ctx, http.MethodGet, "/bills/"+id, nil, nil, &out); err != nil {
		return model.Bill{}, err
	}
	return out, nil
}

// Create creates a bill.
func (s *BillService) Create(ctx context.Context, in BillInput) (model.Bill, error) {
	var out model.Bill
	if err := s.c.do(ctx, http.MethodPost, "/bills", nil, in, &out); err != nil {
		return model.Bill{}, err
	}
	return out, nil
}

// Update patches a bill.
func (s *BillService) Update(ctx context.Context, id string, in BillInput) (model.Bill, error) {
	var out model.Bill
	if err := s.c.do(ctx, http.MethodPatch, "/bills/"+id, nil, in, &out); err != nil {
		return model.Bill{}, err
	}
	return out, nil
}

// Delete removes a bill.
func (s *BillService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/bills/"+id, nil, nil, nil)
}

// Pay marks a bill paid. The server books the matching transaction, which is
// why payment invalidates transactions and analytics as well as bills.
func (s *BillService) Pay(ctx context.Context, id string) (model.Bill, error) {
	var out model.Bill
	if err := s.c.do(ctx, http.MethodPost, "/bills/"+id+"/pay", nil, nil, &out); err != nil {
		return model.Bill{}, err
	}
	return out, nil
}
