package datasync

import (
	"context"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// Categories reads the filtered category list.
func (s *Sync) Categories(ctx context.Context, filter api.CategoryFilter) Result[[]model.Category] {
	key := query.Categories.List(segment(filter.Values()))
	return read(ctx, s, key, true, func(ctx context.Context) ([]model.Category, error) {
		return s.svc.Categories.List(ctx, filter)
	})
}

// Category reads one category. Gated on a non-empty id.
func (s *Sync) Category(ctx context.Context, id string) Result[model.Category] {
	return read(ctx, s, query.Categories.Detail(id), id != "", func(ctx context.Context) (model.Category, error) {
		return s.svc.Categories.Get(ctx, id)
	})
}

// categoryKeys is the invalidation set shared by category create and update:
// lists plus the touched detail. Updates do not fan out to goals or other
// resources; only deletion has cross-resource effects.
func categoryKeys(id string) []query.Key {
	return []query.Key{query.Categories.Lists(), query.Categories.Detail(id)}
}

// CreateCategory creates a custom category.
func (s *Sync) CreateCategory(ctx context.Context, in api.CategoryInput) (model.Category, error) {
	return mutate(ctx, s, "categories", "create", "Failed to Create Category",
		func(ctx context.Context) (model.Category, error) {
			return s.svc.Categories.Create(ctx, in)
		},
		func(out model.Category) keySet {
			return keySet{invalidate: categoryKeys(out.ID)}
		},
	)
}

// UpdateCategory patches a category.
func (s *Sync) UpdateCategory(ctx context.Context, id string, in api.CategoryInput) (model.Category, error) {
	return mutate(ctx, s, "categories", "update", "Failed to Update Category",
		func(ctx context.Context) (model.Category, error) {
			return s.svc.Categories.Update(ctx, id, in)
		},
		func(model.Category) keySet {
			return keySet{invalidate: categoryKeys(id)}
		},
	)
}

// DeleteCategory removes a category, reassigning its transactions to
// reassignTo. Reassignment rewrites transaction history and budget spend, so
// both subtrees are invalidated.
func (s *Sync) DeleteCategory(ctx context.Context, id, reassignTo string) error {
	_, err := mutate(ctx, s, "categories", "delete", "Failed to Delete Category",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.svc.Categories.Delete(ctx, id, reassignTo)
		},
		func(struct{}) keySet {
			return keySet{invalidate: append(categoryKeys(id),
				query.Transactions.All(),
				query.Budgets.All(),
			)}
		},
	)
	return err
}
