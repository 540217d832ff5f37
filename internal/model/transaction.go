package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction mirrors the backend transaction record.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	CategoryID  string          `json:"categoryId"`
	MerchantID  string          `json:"merchantId,omitempty"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ImportResult summarizes a bulk CSV import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"` // one message per failed row
}
