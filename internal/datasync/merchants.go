package datasync

import (
	"context"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// Merchants reads the filtered merchant list.
func (s *Sync) Merchants(ctx context.Context, filter api.MerchantFilter) Result[[]model.Merchant] {
	key := query.Merchants.List(segment(filter.Values()))
	return read(ctx, s, key, true, func(ctx context.Context) ([]model.Merchant, error) {
		return s.svc.Merchants.List(ctx, filter)
	})
}

// Merchant reads one merchant. Gated on a non-empty id.
func (s *Sync) Merchant(ctx context.Context, id string) Result[model.Merchant] {
	return read(ctx, s, query.Merchants.Detail(id), id != "", func(ctx context.Context) (model.Merchant, error) {
		return s.svc.Merchants.Get(ctx, id)
	})
}

// CreateMerchant creates a merchant.
func (s *Sync) CreateMerchant(ctx context.Context, in api.MerchantInput) (model.Merchant, error) {
	return mutate(ctx, s, "merchants", "create", "Failed to Create Merchant",
		func(ctx context.Context) (model.Merchant, error) {
			return s.svc.Merchants.Create(ctx, in)
		},
		func(model.Merchant) keySet {
			return keySet{invalidate: []query.Key{query.Merchants.All()}}
		},
	)
}

// UpdateMerchant patches a merchant.
func (s *Sync) UpdateMerchant(ctx context.Context, id string, in api.MerchantInput) (model.Merchant, error) {
	return mutate(ctx, s, "merchants", "update", "Failed to Update Merchant",
		func(ctx context.Context) (model.Merchant, error) {
			return s.svc.Merchants.Update(ctx, id, in)
		},
		func(model.Merchant) keySet {
			return keySet{invalidate: []query.Key{query.Merchants.All()}}
		},
	)
}

// DeleteMerchant removes a merchant. Existing transactions lose their
// merchant reference, so the transactions subtree is invalidated too.
func (s *Sync) DeleteMerchant(ctx context.Context, id string) error {
	_, err := mutate(ctx, s, "merchants", "delete", "Failed to Delete Merchant",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.svc.Merchants.Delete(ctx, id)
		},
		func(struct{}) keySet {
			return keySet{invalidate: []query.Key{query.Merchants.All(), query.Transactions.All()}}
		},
	)
	return err
}
