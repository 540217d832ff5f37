// Package api implements the resource service clients for the backend REST
// API. Clients do not validate inputs (form schemas gate what reaches them)
// and never swallow errors: every failure propagates as a normalized
// apierr.Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/finview-dev/finview/internal/apierr"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token attached to authenticated requests.
type TokenSource interface {
	AccessToken() string
}

// Client is the shared HTTP transport for all resource services.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokens sets the bearer token source.
func WithTokens(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// NewClient creates a client for the given API base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resource service accessors.

func (c *Client) Accounts() *AccountService           { return &AccountService{c: c} }
func (c *Client) Categories() *CategoryService        { return &CategoryService{c: c} }
func (c *Client) Merchants() *MerchantService         { return &MerchantService{c: c} }
func (c *Client) Budgets() *BudgetService             { return &BudgetService{c: c} }
func (c *Client) Bills() *BillService                 { return &BillService{c: c} }
func (c *Client) Goals() *GoalService                 { return &GoalService{c: c} }
func (c *Client) Notifications() *NotificationService { return &NotificationService{c: c} }
func (c *Client) Transactions() *TransactionService   { return &TransactionService{c: c} }
func (c *Client) Auth() *AuthService                  { return &AuthService{c: c} }

// do issues a JSON request and decodes the response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if tok := c.tokens.AccessToken(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierr.NewNetwork(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.NewNetwork(err)
	}

	if resp.StatusCode >= 400 {
		return normalizeError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if raw, ok := out.(*[]byte); ok {
		*raw = data
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message  string   `json:"message"`
	Messages []string `json:"messages"`
	Code     string   `json:"code"`
}

// normalizeError maps a non-2xx response to the uniform error shape. A body
// that fails to parse is treated as a generic failure for that status.
func normalizeError(status int, data []byte) error {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil || eb.Message == "" {
		return &apierr.Error{
			Message: fmt.Sprintf("request failed with status %d", status),
			Status:  status,
		}
	}
	return &apierr.Error{
		Message:  eb.Message,
		Messages: eb.Messages,
		Code:     eb.Code,
		Status:   status,
	}
}
