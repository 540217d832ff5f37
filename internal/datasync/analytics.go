package datasync

import (
	"context"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// AnalyticsSummary reads the aggregate figures for a period. Gated on a
// complete filter: summaries are meaningless without both ends of the range.
func (s *Sync) AnalyticsSummary(ctx context.Context, filter api.AnalyticsFilter) Result[model.AnalyticsSummary] {
	key := query.Analytics.List(segment(filter.Values()))
	return read(ctx, s, key, filter.Complete(), func(ctx context.Context) (model.AnalyticsSummary, error) {
		return s.svc.Analytics.Summary(ctx, filter)
	})
}
