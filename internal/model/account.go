package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies a financial account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
)

// ValidAccountType reports whether t is a known account type.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit, AccountTypeInvestment:
		return true
	}
	return false
}

// Account mirrors the backend account record. Balance is authoritative on the
// server; the client never computes it.
type Account struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        AccountType     `json:"type"`
	Currency    string          `json:"currency"`
	Balance     decimal.Decimal `json:"balance"`
	Institution string          `json:"institution,omitempty"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
