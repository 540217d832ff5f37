package datasync

import (
	"context"
	"io"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
)

// Narrow views of the API services, so tests can substitute fakes without a
// server.

type AccountAPI interface {
	List(ctx context.Context, filter api.AccountFilter) ([]model.Account, error)
	Get(ctx context.Context, id string) (model.Account, error)
	Create(ctx context.Context, in api.CreateAccountInput) (model.Account, error)
	Update(ctx context.Context, id string, in api.UpdateAccountInput) (model.Account, error)
	Delete(ctx context.Context, id string) error
}

type CategoryAPI interface {
	List(ctx context.Context, filter api.CategoryFilter) ([]model.Category, error)
	Get(ctx context.Context, id string) (model.Category, error)
	Create(ctx context.Context, in api.CategoryInput) (model.Category, error)
	Update(ctx context.Context, id string, in api.CategoryInput) (model.Category, error)
	Delete(ctx context.Context, id, reassignTo string) error
}

type MerchantAPI interface {
	List(ctx context.Context, filter api.MerchantFilter) ([]model.Merchant, error)
	Get(ctx context.Context, id string) (model.Merchant, error)
	Create(ctx context.Context, in api.MerchantInput) (model.Merchant, error)
	Update(ctx context.Context, id string, in api.MerchantInput) (model.Merchant, error)
	Delete(ctx context.Context, id string) error
}

type BudgetAPI interface {
	List(ctx context.Context, filter api.BudgetFilter) ([]model.Budget, error)
	Get(ctx context.Context, id string) (model.Budget, error)
	Status(ctx context.Context, id string) (model.BudgetStatus, error)
	Alerts(ctx context.Context) ([]model.BudgetAlert, error)
	Create(ctx context.Context, in api.BudgetInput) (model.Budget, error)
	Update(ctx context.Context, id string, in api.BudgetInput) (model.Budget, error)
	Delete(ctx context.Context, id string) error
}

type BillAPI interface {
	List(ctx context.Context, filter api.BillFilter) ([]model.Bill, error)
	Get(ctx context.Context, id string) (model.Bill, error)
	Create(ctx context.Context, in api.BillInput) (model.Bill, error)
	Update(ctx context.Context, id string, in api.BillInput) (model.Bill, error)
	Delete(ctx context.Context, id string) error
	Pay(ctx context.Context, id string) (model.Bill, error)
}

type GoalAPI interface {
	List(ctx context.Context, filter api.GoalFilter) (model.Page[model.Goal], error)
	Get(ctx context.Context, id string) (model.Goal, error)
	Create(ctx context.Context, in api.GoalInput) (model.Goal, error)
	Update(ctx context.Context, id string, in api.GoalInput) (model.Goal, error)
	Delete(ctx context.Context, id string) error
	Contribute(ctx context.Context, id string, in api.ContributionInput) (model.Goal, error)
}

type NotificationAPI interface {
	List(ctx context.Context, filter api.NotificationFilter) ([]model.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type TransactionAPI interface {
	List(ctx context.Context, filter api.TransactionFilter) (model.Page[model.Transaction], error)
	Get(ctx context.Context, id string) (model.Transaction, error)
	Create(ctx context.Context, in api.TransactionInput) (model.Transaction, error)
	Delete(ctx context.Context, id string) error
	ImportCSV(ctx context.Context, filename string, file io.Reader) (model.ImportResult, error)
	ExportCSV(ctx context.Context, filter api.TransactionFilter) ([]byte, error)
}

type AnalyticsAPI interface {
	Summary(ctx context.Context, filter api.AnalyticsFilter) (model.AnalyticsSummary, error)
}

// Services bundles the per-resource API surfaces the sync layer drives.
type Services struct {
	Accounts      AccountAPI
	Categories    CategoryAPI
	Merchants     MerchantAPI
	Budgets       BudgetAPI
	Bills         BillAPI
	Goals         GoalAPI
	Notifications NotificationAPI
	Transactions  TransactionAPI
	Analytics     AnalyticsAPI
}

// FromClient builds Services from a real API client.
func FromClient(c *api.Client) Services {
	return Services{
		Accounts:      c.Accounts(),
		Categories:    c.Categories(),
		Merchants:     c.Merchants(),
		Budgets:       c.Budgets(),
		Bills:         c.Bills(),
		Goals:         c.Goals(),
		Notifications: c.Notifications(),
		Transactions:  c.Transactions(),
		Analytics:     c.Analytics(),
	}
}
