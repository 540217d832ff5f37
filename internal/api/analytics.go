package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/finview-dev/finview/internal/model"
)

// AnalyticsService wraps the /analytics endpoints.
type AnalyticsService struct {
	c *Client
}

// Analytics returns the analytics service.
func (c *Client) Analytics() *AnalyticsService { return &AnalyticsService{c: c} }

// AnalyticsFilter bounds the summary window. Both dates are required; a
// summary over an open range is not meaningful.
type AnalyticsFilter struct {
	From time.Time
	To   time.Time
}

// Values renders the filter as request query parameters.
func (f AnalyticsFilter) Values() url.Values {
	v := url.Values{}
	if !f.From.IsZero() {
		v.Set("from", f.From.Format("2006-01-02"))
	}
	if !f.To.IsZero() {
		v.Set("to", f.To.Format("2006-01-02"))
	}
	return v
}

// Complete reports whether both bounds are set.
func (f AnalyticsFilter) Complete() bool {
	return !f.From.IsZero() && !f.To.IsZero()
}

// Summary fetches the spending overview for a date window.
func (s *AnalyticsService) Summary(ctx context.Context, filter AnalyticsFilter) (model.AnalyticsSummary, error) {
	var out model.AnalyticsSummary
	if err := s.c.do(ctx, http.MethodGet, "/analytics/summary", filter.Values(), nil, &out); err != nil {
		return model.AnalyticsSummary{}, err
	}
	return out, nil
}
