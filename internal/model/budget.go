package model

import "github.com/shopspring/decimal"

// BudgetPeriod is the budgeting window.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// ValidBudgetPeriod reports whether p is a known budget period.
func ValidBudgetPeriod(p BudgetPeriod) bool {
	return p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// BudgetAlerts configures threshold alerts for a budget.
type BudgetAlerts struct {
	Enabled   bool `json:"enabled"`
	Threshold int  `json:"threshold"` // percent of limit, 0-100
}

// Budget mirrors the backend budget record. Spent is computed server-side.
type Budget struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Limit      decimal.Decimal `json:"limit"`
	Period     BudgetPeriod    `json:"period"`
	Spent      decimal.Decimal `json:"spent"`
	Alerts     BudgetAlerts    `json:"alerts"`
}

// PercentUsed returns spent/limit as a percentage, uncapped. A zero limit
// yields 0 rather than a division error.
func (b Budget) PercentUsed() decimal.Decimal {
	if b.Limit.IsZero() {
		return decimal.Zero
	}
	return b.Spent.Div(b.Limit).Mul(decimal.NewFromInt(100))
}

// BudgetStatus is the server-computed health summary for one budget.
type BudgetStatus struct {
	BudgetID    string          `json:"budgetId"`
	Spent       decimal.Decimal `json:"spent"`
	Limit       decimal.Decimal `json:"limit"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	OverBudget  bool            `json:"overBudget"`
}

// BudgetAlert is an active threshold breach reported by the server.
type BudgetAlert struct {
	BudgetID    string          `json:"budgetId"`
	CategoryID  string          `json:"categoryId"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	Threshold   int             `json:"threshold"`
}
