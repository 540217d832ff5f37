package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillFrequency is how often a recurring bill repeats.
type BillFrequency string

const (
	BillFrequencyWeekly    BillFrequency = "weekly"
	BillFrequencyMonthly   BillFrequency = "monthly"
	BillFrequencyQuarterly BillFrequency = "quarterly"
	BillFrequencyYearly    BillFrequency = "yearly"
)

// ValidBillFrequency reports whether f is a known bill frequency.
func ValidBillFrequency(f BillFrequency) bool {
	switch f {
	case BillFrequencyWeekly, BillFrequencyMonthly, BillFrequencyQuarterly, BillFrequencyYearly:
		return true
	}
	return false
}

// Bill mirrors the backend bill record.
type Bill struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	AccountID   string          `json:"accountId"`
	CategoryID  string          `json:"categoryId"`
	MerchantID  string          `json:"merchantId,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	IsPaid      bool            `json:"isPaid"`
	IsRecurring bool            `json:"isRecurring"`
	Frequency   BillFrequency   `json:"frequency,omitempty"`
}

// Overdue reports whether the bill is unpaid past its due date.
func (b Bill) Overdue(now time.Time) bool {
	return !b.IsPaid && now.After(b.DueDate)
}
