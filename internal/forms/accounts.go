package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
)

// AccountForm is the raw account create input. Balance is the string the
// user typed; locale separators are accepted.
type AccountForm struct {
	Name        string
	Type        string
	Currency    string
	Balance     string
	Institution string
}

// Account validates an account form.
func Account(f AccountForm) (api.CreateAccountInput, Errors) {
	errs := Errors{}
	name := strings.TrimSpace(f.Name)

	if len(name) < 3 {
		errs.add("name", "Name must be at least 3 characters")
	} else if len(name) > 50 {
		errs.add("name", "Name must be at most 50 characters")
	}

	accType := model.AccountType(f.Type)
	if !model.ValidAccountType(accType) {
		errs.add("type", "Choose an account type")
	}

	currency := strings.ToUpper(strings.TrimSpace(f.Currency))
	if currency == "" {
		currency = "USD"
	} else if len(currency) != 3 {
		errs.add("currency", "Currency must be a 3-letter code")
	}

	balance := decimal.Zero
	if strings.TrimSpace(f.Balance) != "" {
		d, err := ParseAmount(f.Balance)
		if err != nil {
			errs.add("balance", "Enter a valid amount")
		} else {
			balance = d
		}
	}

	return api.CreateAccountInput{
		Name:        name,
		Type:        accType,
		Currency:    currency,
		Balance:     balance,
		Institution: strings.TrimSpace(f.Institution),
	}, errs
}
