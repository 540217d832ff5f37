package forms

import (
	"strings"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
)

// TransactionForm is the raw transaction input.
type TransactionForm struct {
	AccountID   string
	CategoryID  string
	MerchantID  string
	Type        string
	Amount      string
	Description string
	Date        string
}

// Transaction validates a transaction form.
func Transaction(f TransactionForm) (api.TransactionInput, Errors) {
	errs := Errors{}

	if strings.TrimSpace(f.AccountID) == "" {
		errs.add("accountId", "Choose an account")
	}
	if strings.TrimSpace(f.CategoryID) == "" {
		errs.add("categoryId", "Choose a category")
	}

	txType := model.TransactionType(f.Type)
	if !model.ValidTransactionType(txType) {
		errs.add("type", "Choose income or expense")
	}

	amount, err := ParseAmount(f.Amount)
	if err != nil || !amount.IsPositive() {
		errs.add("amount", "Amount must be greater than 0")
	}

	date, ok := ParseDate(f.Date)
	if !ok {
		errs.add("date", "Enter a valid date")
	}

	return api.TransactionInput{
		AccountID:   strings.TrimSpace(f.AccountID),
		CategoryID:  strings.TrimSpace(f.CategoryID),
		MerchantID:  strings.TrimSpace(f.MerchantID),
		Type:        txType,
		Amount:      amount,
		Description: strings.TrimSpace(f.Description),
		Date:        date,
	}, errs
}
