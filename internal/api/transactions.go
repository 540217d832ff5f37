package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finview-dev/finview/internal/model"
)

// TransactionService wraps the /transactions endpoints.
type TransactionService struct {
	c *Client
}

// TransactionFilter narrows transaction listings. From and To bound the
// transaction date, inclusive.
type TransactionFilter struct {
	AccountID  string
	CategoryID string
	MerchantID string
	Type       model.TransactionType
	From       time.Time
	To         time.Time
	Page       int
	PageSize   int
}

// Values renders the filter as request query parameters.
func (f TransactionFilter) Values() url.Values {
	v := url.Values{}
	if f.AccountID != "" {
		v.Set("accountId", f.AccountID)
	}
	if f.CategoryID != "" {
		v.Set("categoryId", f.CategoryID)
	}
	if f.MerchantID != "" {
		v.Set("merchantId", f.MerchantID)
	}
	if f.Type != "" {
		v.Set("type", string(f.Type))
	}
	if !f.From.IsZero() {
		v.Set("from", f.From.Format("2006-01-02"))
	}
	if !f.To.IsZero() {
		v.Set("to", f.To.Format("2006-01-02"))
	}
	if f.Page > 0 {
		v.Set("page", fmt.Sprint(f.Page))
	}
	if f.PageSize > 0 {
		v.Set("pageSize", fmt.Sprint(f.PageSize))
	}
	return v
}

// HasDateRange reports whether both bounds are set. Readers that require a
// range use this as their fetch gate.
func (f TransactionFilter) HasDateRange() bool {
	return !f.From.IsZero() && !f.To.IsZero()
}

// TransactionInput is the validated DTO for transaction create/update.
type TransactionInput struct {
	AccountID   string                `json:"accountId"`
	CategoryID  string                `json:"categoryId"`
	MerchantID  string                `json:"merchantId,omitempty"`
	Type        model.TransactionType `json:"type"`
	Amount      decimal.Decimal       `json:"amount"`
	Description string                `json:"description,omitempty"`
	Date        time.Time             `json:"date"`
}

// List fetches a page of transactions matching the filter.
func (s *TransactionService) List(ctx context.Context, filter TransactionFilter) (model.Page[model.Transaction], error) {
	var out model.Page[model.Transaction]
	if err := s.c.do(ctx, http.MethodGet, "/transactions", filter.Values(), nil, &out); err != nil {
		return model.Page[model.Transaction]{}, err
	}
	return out, nil
}

// Get fetches a single transaction by id.
func (s *TransactionService) Get(ctx context.Context, id string) (model.Transaction, error) {
	var out model.Transaction
	if err := s.c.do(ctx, http.MethodGet, "/transactions/"+id, nil, nil, &out); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

// Create creates a transaction.
func (s *TransactionService) Create(ctx context.Context, in TransactionInput) (model.Transaction, error) {
	var out model.Transaction
	if err := s.c.do(ctx, http.MethodPost, "/transactions", nil, in, &out); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

// Delete removes a transaction.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/transactions/"+id, nil, nil, nil)
}

// ImportCSV uploads a CSV of transactions as multipart form data and returns
// per-row import results.
func (s *TransactionService) ImportCSV(ctx context.Context, filename string, file io.Reader) (model.ImportResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return model.ImportResult{}, fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return model.ImportResult{}, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return model.ImportResult{}, fmt.Errorf("finalizing upload: %w", err)
	}

	req, err := s.c.newRequest(ctx, http.MethodPost, "/transactions/import/csv", nil, &buf)
	if err != nil {
		return model.ImportResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out model.ImportResult
	if err := s.c.send(req, &out); err != nil {
		return model.ImportResult{}, err
	}
	return out, nil
}

// ExportCSV asks the server for a CSV of transactions matching the filter
// and returns the raw bytes for the caller to save.
func (s *TransactionService) ExportCSV(ctx context.Context, filter TransactionFilter) ([]byte, error) {
	var out []byte
	body := map[string]string{}
	for k, vs := range filter.Values() {
		body[k] = vs[0]
	}
	if err := s.c.do(ctx, http.MethodPost, "/transactions/export/csv", nil, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
