package datasync

import (
	"context"
	"io"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
	"github.com/finview-dev/finview/internal/query"
)

// transactionWriteKeys is the invalidation set for every transaction write.
// A transaction changes an account balance, budget spend, and every derived
// analytics figure.
func transactionWriteKeys() []query.Key {
	return []query.Key{
		query.Transactions.All(),
		query.Accounts.All(),
		query.Budgets.All(),
		query.Analytics.All(),
	}
}

// Transactions reads a page of transactions. Gated on a complete date
// range: the list is unbounded without one, so parents that have not picked
// a period yet must not trigger a request.
func (s *Sync) Transactions(ctx context.Context, filter api.TransactionFilter) Result[model.Page[model.Transaction]] {
	key := query.Transactions.List(segment(filter.Values()))
	return read(ctx, s, key, filter.HasDateRange(), func(ctx context.Context) (model.Page[model.Transaction], error) {
		return s.svc.Transactions.List(ctx, filter)
	})
}

// Transaction reads one transaction. Gated on a non-empty id.
func (s *Sync) Transaction(ctx context.Context, id string) Result[model.Transaction] {
	return read(ctx, s, query.Transactions.Detail(id), id != "", func(ctx context.Context) (model.Transaction, error) {
		return s.svc.Transactions.Get(ctx, id)
	})
}

// CreateTransaction creates a transaction.
func (s *Sync) CreateTransaction(ctx context.Context, in api.TransactionInput) (model.Transaction, error) {
	return mutate(ctx, s, "transactions", "create", "Failed to Create Transaction",
		func(ctx context.Context) (model.Transaction, error) {
			return s.svc.Transactions.Create(ctx, in)
		},
		func(model.Transaction) keySet {
			return keySet{invalidate: transactionWriteKeys()}
		},
	)
}

// DeleteTransaction removes a transaction.
func (s *Sync) DeleteTransaction(ctx context.Context, id string) error {
	_, err := mutate(ctx, s, "transactions", "delete", "Failed to Delete Transaction",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.svc.Transactions.Delete(ctx, id)
		},
		func(struct{}) keySet {
			return keySet{invalidate: transactionWriteKeys()}
		},
	)
	return err
}

// ImportTransactions uploads a CSV of transactions. The result reports how
// many rows landed and which ones failed; any import that reached the server
// may have written rows, so the write set is invalidated even when some rows
// failed.
func (s *Sync) ImportTransactions(ctx context.Context, filename string, file io.Reader) (model.ImportResult, error) {
	return mutate(ctx, s, "transactions", "import", "Failed to Import Transactions",
		func(ctx context.Context) (model.ImportResult, error) {
			return s.svc.Transactions.ImportCSV(ctx, filename, file)
		},
		func(model.ImportResult) keySet {
			return keySet{invalidate: transactionWriteKeys()}
		},
	)
}

// ExportTransactions fetches the filtered transactions as a CSV blob. It is
// a read in write's clothing: nothing is invalidated, and the blob is not
// cached.
func (s *Sync) ExportTransactions(ctx context.Context, filter api.TransactionFilter) ([]byte, error) {
	return mutate(ctx, s, "transactions", "export", "Failed to Export Transactions",
		func(ctx context.Context) ([]byte, error) {
			return s.svc.Transactions.ExportCSV(ctx, filter)
		},
		func([]byte) keySet {
			return keySet{}
		},
	)
}
