package forms

import (
	"strings"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
)

// BillForm is the raw bill input. Recurrence defaults to off; a frequency
// is only required when it is on.
type BillForm struct {
	Name        string
	AccountID   string
	CategoryID  string
	MerchantID  string
	Amount      string
	DueDate     string
	IsRecurring bool
	Frequency   string
}

// Bill validates a bill form.
func Bill(f BillForm) (api.BillInput, Errors) {
	errs := Errors{}
	name := strings.TrimSpace(f.Name)

	if len(name) < 2 {
		errs.add("name", "Name must be at least 2 characters")
	}
	if strings.TrimSpace(f.AccountID) == "" {
		errs.add("accountId", "Choose an account")
	}
	if strings.TrimSpace(f.CategoryID) == "" {
		errs.add("categoryId", "Choose a category")
	}

	amount, err := ParseAmount(f.Amount)
	if err != nil || !amount.IsPositive() {
		errs.add("amount", "Amount must be greater than 0")
	}

	dueDate, ok := ParseDate(f.DueDate)
	if !ok {
		errs.add("dueDate", "Enter a valid due date")
	}

	var freq model.BillFrequency
	if f.IsRecurring {
		freq = model.BillFrequency(f.Frequency)
		if !model.ValidBillFrequency(freq) {
			errs.add("frequency", "Choose how often the bill repeats")
		}
	}

	return api.BillInput{
		Name:        name,
		AccountID:   strings.TrimSpace(f.AccountID),
		CategoryID:  strings.TrimSpace(f.CategoryID),
		MerchantID:  strings.TrimSpace(f.MerchantID),
		Amount:      amount,
		DueDate:     dueDate,
		IsRecurring: f.IsRecurring,
		Frequency:   freq,
	}, errs
}
