package datasync

import (
	"context"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// Accounts reads the filtered account list.
func (s *Sync) Accounts(ctx context.Context, filter api.AccountFilter) Result[[]model.Account] {
	key := query.Accounts.List(segment(filter.Values()))
	return read(ctx, s, key, true, func(ctx context.Context) ([]model.Account, error) {
		return s.svc.Accounts.List(ctx, filter)
	})
}

// Account reads one account. Gated on a non-empty id.
func (s *Sync) Account(ctx context.Context, id string) Result[model.Account] {
	return read(ctx, s, query.Accounts.Detail(id), id != "", func(ctx context.Context) (model.Account, error) {
		return s.svc.Accounts.Get(ctx, id)
	})
}

// CreateAccount creates an account and invalidates the accounts subtree plus
// analytics.
func (s *Sync) CreateAccount(ctx context.Context, in api.CreateAccountInput) (model.Account, error) {
	return mutate(ctx, s, "accounts", "create", "Failed to Create Account",
		func(ctx context.Context) (model.Account, error) {
			return s.svc.Accounts.Create(ctx, in)
		},
		func(model.Account) keySet {
			return keySet{invalidate: []query.Key{query.Accounts.All(), query.Analytics.All()}}
		},
	)
}

// UpdateAccount patches an account and invalidates the accounts subtree plus
// analytics.
func (s *Sync) UpdateAccount(ctx context.Context, id string, in api.UpdateAccountInput) (model.Account, error) {
	return mutate(ctx, s, "accounts", "update", "Failed to Update Account",
		func(ctx context.Context) (model.Account, error) {
			return s.svc.Accounts.Update(ctx, id, in)
		},
		func(model.Account) keySet {
			return keySet{invalidate: []query.Key{query.Accounts.All(), query.Analytics.All()}}
		},
	)
}

// DeleteAccount removes an account. Deletion cascades server-side into the
// account's transactions and budget recalculation, so those subtrees are
// invalidated as well.
func (s *Sync) DeleteAccount(ctx context.Context, id string) error {
	_, err := mutate(ctx, s, "accounts", "delete", "Failed to Delete Account",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.svc.Accounts.Delete(ctx, id)
		},
		func(struct{}) keySet {
			return keySet{invalidate: []query.Key{
				query.Accounts.All(),
				query.Analytics.All(),
				query.Transactions.All(),
				query.Budgets.All(),
			}}
		},
	)
	return err
}
