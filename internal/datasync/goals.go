package datasync

import (
	"context"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// Goals reads a page of goals matching the filter.
func (s *Sync) Goals(ctx context.Context, filter api.GoalFilter) Result[model.Page[model.Goal]] {
	key := query.Goals.List(segment(filter.Values()))
	return read(ctx, s, key, true, func(ctx context.Context) (model.Page[model.Goal], error) {
		return s.svc.Goals.List(ctx, filter)
	})
}

// Goal reads one goal. Gated on a non-empty id.
func (s *Sync) Goal(ctx context.Context, id string) Result[model.Goal] {
	return read(ctx, s, query.Goals.Detail(id), id != "", func(ctx context.Context) (model.Goal, error) {
		return s.svc.Goals.Get(ctx, id)
	})
}

// goalWriteKeys is the invalidation set for every goal write: lists, the
// touched detail, and the progress leaf.
func goalWriteKeys(id string) []query.Key {
	return []query.Key{
		query.Goals.Lists(),
		query.Goals.Detail(id),
		query.Goals.Sub("progress"),
	}
}

// CreateGoal creates a goal.
func (s *Sync) CreateGoal(ctx context.Context, in api.GoalInput) (model.Goal, error) {
	return mutate(ctx, s, "goals", "create", "Failed to Create Goal",
		func(ctx context.Context) (model.Goal, error) {
			return s.svc.Goals.Create(ctx, in)
		},
		func(out model.Goal) keySet {
			return keySet{invalidate: goalWriteKeys(out.ID)}
		},
	)
}

// UpdateGoal patches a goal.
func (s *Sync) UpdateGoal(ctx context.Context, id string, in api.GoalInput) (model.Goal, error) {
	return mutate(ctx, s, "goals", "update", "Failed to Update Goal",
		func(ctx context.Context) (model.Goal, error) {
			return s.svc.Goals.Update(ctx, id, in)
		},
		func(model.Goal) keySet {
			return keySet{invalidate: goalWriteKeys(id)}
		},
	)
}

// DeleteGoal removes a goal.
func (s *Sync) DeleteGoal(ctx context.Context, id string) error {
	_, err := mutate(ctx, s, "goals", "delete", "Failed to Delete Goal",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.svc.Goals.Delete(ctx, id)
		},
		func(struct{}) keySet {
			return keySet{invalidate: goalWriteKeys(id)}
		},
	)
	return err
}

// ContributeToGoal moves money into a goal. The contribution posts a
// transaction, so transactions and analytics are invalidated alongside the
// goal keys.
func (s *Sync) ContributeToGoal(ctx context.Context, id string, in api.ContributionInput) (model.Goal, error) {
	return mutate(ctx, s, "goals", "contribute", "Failed to Add Contribution",
		func(ctx context.Context) (model.Goal, error) {
			return s.svc.Goals.Contribute(ctx, id, in)
		},
		func(model.Goal) keySet {
			return keySet{invalidate: append(goalWriteKeys(id),
				query.Transactions.All(),
				query.Analytics.All(),
			)}
		},
	)
}
