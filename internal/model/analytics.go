package model

import "github.com/shopspring/decimal"

// AnalyticsSummary is the server-computed spending overview shown on the
// dashboard. It is read-only and recomputed after money-moving mutations,
// which is why so many mutations invalidate the analytics subtree.
type AnalyticsSummary struct {
	TotalIncome   decimal.Decimal            `json:"totalIncome"`
	TotalExpenses decimal.Decimal            `json:"totalExpenses"`
	NetSavings    decimal.Decimal            `json:"netSavings"`
	ByCategory    map[string]decimal.Decimal `json:"byCategory,omitempty"`
}
