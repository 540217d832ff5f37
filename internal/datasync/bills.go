package datasync

import (
	"context"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// Bills reads the filtered bill list.
func (s *Sync) Bills(ctx context.Context, filter api.BillFilter) Result[[]model.Bill] {
	key := query.Bills.List(segment(filter.Values()))
	return read(ctx, s, key, true, func(ctx context.Context) ([]model.Bill, error) {
		return s.svc.Bills.List(ctx, filter)
	})
}

// Bill reads one bill. Gated on a non-empty id.
func (s *Sync) Bill(ctx context.Context, id string) Result[model.Bill] {
	return read(ctx, s, query.Bills.Detail(id), id != "", func(ctx context.Context) (model.Bill, error) {
		return s.svc.Bills.Get(ctx, id)
	})
}

// CreateBill creates a bill and invalidates the bills subtree.
func (s *Sync) CreateBill(ctx context.Context, in api.BillInput) (model.Bill, error) {
	return mutate(ctx, s, "bills", "create", "Failed to Create Bill",
		func(ctx context.Context) (model.Bill, error) {
			return s.svc.Bills.Create(ctx, in)
		},
		func(model.Bill) keySet {
			return keySet{invalidate: []query.Key{query.Bills.All()}}
		},
	)
}

// UpdateBill patches a bill and invalidates the bills subtree.
func (s *Sync) UpdateBill(ctx context.Context, id string, in api.BillInput) (model.Bill, error) {
	return mutate(ctx, s, "bills", "update", "Failed to Update Bill",
		func(ctx context.Context) (model.Bill, error) {
			return s.svc.Bills.Update(ctx, id, in)
		},
		func(model.Bill) keySet {
			return keySet{invalidate: []query.Key{query.Bills.All()}}
		},
	)
}

// DeleteBill removes a bill and invalidates the bills subtree.
func (s *Sync) DeleteBill(ctx context.Context, id string) error {
	_, err := mutate(ctx, s, "bills", "delete", "Failed to Delete Bill",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.svc.Bills.Delete(ctx, id)
		},
		func(struct{}) keySet {
			return keySet{invalidate: []query.Key{query.Bills.All()}}
		},
	)
	return err
}

// PayBill records a payment against a bill. Paying posts a transaction and
// moves money, so the transactions and analytics subtrees are invalidated
// alongside bills.
func (s *Sync) PayBill(ctx context.Context, id string) (model.Bill, error) {
	return mutate(ctx, s, "bills", "pay", "Failed to Pay Bill",
		func(ctx context.Context) (model.Bill, error) {
			return s.svc.Bills.Pay(ctx, id)
		},
		func(model.Bill) keySet {
			return keySet{invalidate: []query.Key{
				query.Bills.All(),
				query.Transactions.All(),
				query.Analytics.All(),
			}}
		},
	)
}
