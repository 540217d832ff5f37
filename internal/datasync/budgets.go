package datasync

import (
	"context"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// Budgets reads the filtered budget list.
func (s *Sync) Budgets(ctx context.Context, filter api.BudgetFilter) Result[[]model.Budget] {
	key := query.Budgets.List(segment(filter.Values()))
	return read(ctx, s, key, true, func(ctx context.Context) ([]model.Budget, error) {
		return s.svc.Budgets.List(ctx, filter)
	})
}

// Budget reads one budget. Gated on a non-empty id.
func (s *Sync) Budget(ctx context.Context, id string) Result[model.Budget] {
	return read(ctx, s, query.Budgets.Detail(id), id != "", func(ctx context.Context) (model.Budget, error) {
		return s.svc.Budgets.Get(ctx, id)
	})
}

// BudgetStatus reads the spend status for one budget. Gated on a non-empty
// id: parents that have not resolved their budget yet must not trigger a
// request.
func (s *Sync) BudgetStatus(ctx context.Context, id string) Result[model.BudgetStatus] {
	return read(ctx, s, query.Budgets.Sub("status", id), id != "", func(ctx context.Context) (model.BudgetStatus, error) {
		return s.svc.Budgets.Status(ctx, id)
	})
}

// BudgetAlerts reads active threshold breaches.
func (s *Sync) BudgetAlerts(ctx context.Context) Result[[]model.BudgetAlert] {
	return read(ctx, s, query.Budgets.Sub("alerts"), true, func(ctx context.Context) ([]model.BudgetAlert, error) {
		return s.svc.Budgets.Alerts(ctx)
	})
}

// budgetWriteKeys is the invalidation set for create/update: lists, the
// touched detail, alerts, and analytics.
func budgetWriteKeys(id string) []query.Key {
	return []query.Key{
		query.Budgets.Lists(),
		query.Budgets.Detail(id),
		query.Budgets.Sub("alerts"),
		query.Analytics.All(),
	}
}

// CreateBudget creates a budget.
func (s *Sync) CreateBudget(ctx context.Context, in api.BudgetInput) (model.Budget, error) {
	return mutate(ctx, s, "budgets", "create", "Failed to Create Budget",
		func(ctx context.Context) (model.Budget, error) {
			return s.svc.Budgets.Create(ctx, in)
		},
		func(out model.Budget) keySet {
			return keySet{invalidate: budgetWriteKeys(out.ID)}
		},
	)
}

// UpdateBudget patches a budget.
func (s *Sync) UpdateBudget(ctx context.Context, id string, in api.BudgetInput) (model.Budget, error) {
	return mutate(ctx, s, "budgets", "update", "Failed to Update Budget",
		func(ctx context.Context) (model.Budget, error) {
			return s.svc.Budgets.Update(ctx, id, in)
		},
		func(model.Budget) keySet {
			return keySet{invalidate: budgetWriteKeys(id)}
		},
	)
}

// DeleteBudget removes a budget. Unlike other deletions this only removes
// the cached detail entry: nothing else derives from a deleted budget.
func (s *Sync) DeleteBudget(ctx context.Context, id string) error {
	_, err := mutate(ctx, s, "budgets", "delete", "Failed to Delete Budget",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.svc.Budgets.Delete(ctx, id)
		},
		func(struct{}) keySet {
			return keySet{remove: []query.Key{query.Budgets.Detail(id)}}
		},
	)
	return err
}
