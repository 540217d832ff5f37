package forms

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finview-dev/finview/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1234.56", "1234.56", true},
		{"1,234.56", "1234.56", true},
		{"1.234,56", "1234.56", true},
		{"1234,56", "1234.56", true},
		{"1,234", "1.234", true},
		{"-42.00", "-42", true},
		{" 10 ", "10", true},
		{"", "", false},
		{"abc", "", false},
		{"1.2.3,4", "123.4", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseAmount(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1234.5", "USD", "1,234.50 USD"},
		{"1234567.89", "EUR", "1,234,567.89 EUR"},
		{"-42", "USD", "-42.00 USD"},
		{"0.5", "", "0.50"},
		{"999", "GBP", "999.00 GBP"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.amount)
		assert.Equal(t, tt.want, FormatCurrency(d, tt.currency))
	}
}

func TestAmountFormatParseRoundTrip(t *testing.T) {
	// Formatting without a currency suffix must parse back to the same
	// two-decimal value, grouping commas and all.
	for _, raw := range []string{
		"0.00", "0.50", "999.00", "1234.56", "1234567.89", "-42.00", "-1234.50",
	} {
		t.Run(raw, func(t *testing.T) {
			d := decimal.RequireFromString(raw)
			formatted := FormatCurrency(d, "")
			assert.NotContains(t, formatted, " ", "no suffix without a currency")

			back, err := ParseAmount(formatted)
			require.NoError(t, err)
			assert.True(t, back.Equal(d), "got %s from %q", back, formatted)
		})
	}
}

func TestAccountNameLength(t *testing.T) {
	_, errs := Account(AccountForm{Name: "ab", Type: "checking"})
	require.False(t, errs.Valid())
	assert.Contains(t, errs["name"], "at least 3 characters")

	in, errs := Account(AccountForm{Name: "Everyday Checking", Type: "checking", Balance: "1.500,00"})
	require.True(t, errs.Valid(), "errors: %v", errs)
	assert.Equal(t, "Everyday Checking", in.Name)
	assert.Equal(t, model.AccountTypeChecking, in.Type)
	assert.Equal(t, "USD", in.Currency, "currency defaults")
	assert.True(t, in.Balance.Equal(decimal.RequireFromString("1500")))
}

func TestAccountRejectsUnknownType(t *testing.T) {
	_, errs := Account(AccountForm{Name: "Brokerage", Type: "crypto"})
	assert.Contains(t, errs, "type")
}

func TestRegisterPasswordConfirmation(t *testing.T) {
	_, errs := Register(RegisterForm{
		Email:           "a@example.com",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2mismatch",
	})
	require.False(t, errs.Valid())
	assert.Equal(t, "Passwords do not match", errs["confirmPassword"])

	in, errs := Register(RegisterForm{
		Email:           "a@example.com",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
		FirstName:       " Ada ",
	})
	require.True(t, errs.Valid())
	assert.Equal(t, "Ada", in.FirstName)
}

func TestLoginRequiresFields(t *testing.T) {
	_, errs := Login(LoginForm{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	_, errs = Login(LoginForm{Email: "not-an-email", Password: "x"})
	assert.Contains(t, errs, "email")

	in, errs := Login(LoginForm{Email: "a@example.com", Password: "x", RememberMe: true})
	require.True(t, errs.Valid())
	assert.True(t, in.RememberMe)
}

func TestBudgetThresholdRange(t *testing.T) {
	tests := []struct {
		threshold string
		ok        bool
	}{
		{"0", true},
		{"100", true},
		{"80", true},
		{"101", false},
		{"-1", false},
		{"ninety", false},
	}
	for _, tt := range tests {
		t.Run(tt.threshold, func(t *testing.T) {
			_, errs := Budget(BudgetForm{
				CategoryID:     "groceries",
				Limit:          "500",
				Period:         "monthly",
				AlertThreshold: tt.threshold,
			})
			if tt.ok {
				assert.True(t, errs.Valid(), "errors: %v", errs)
			} else {
				assert.Contains(t, errs, "alertThreshold")
			}
		})
	}
}

func TestBudgetThresholdDefaults(t *testing.T) {
	in, errs := Budget(BudgetForm{CategoryID: "c1", Limit: "100", Period: "monthly"})
	require.True(t, errs.Valid())
	assert.Equal(t, 80, in.Alerts.Threshold)
}

func TestBillRecurrence(t *testing.T) {
	// Not recurring: frequency is ignored and defaults off.
	in, errs := Bill(BillForm{
		Name:       "Rent",
		AccountID:  "a1",
		CategoryID: "c1",
		Amount:     "1200",
		DueDate:    "2026-09-01",
	})
	require.True(t, errs.Valid(), "errors: %v", errs)
	assert.False(t, in.IsRecurring)
	assert.Empty(t, in.Frequency)

	// Recurring without a frequency is an error.
	_, errs = Bill(BillForm{
		Name:        "Rent",
		AccountID:   "a1",
		CategoryID:  "c1",
		Amount:      "1200",
		DueDate:     "2026-09-01",
		IsRecurring: true,
	})
	assert.Contains(t, errs, "frequency")

	in, errs = Bill(BillForm{
		Name:        "Rent",
		AccountID:   "a1",
		CategoryID:  "c1",
		Amount:      "1200",
		DueDate:     "2026-09-01",
		IsRecurring: true,
		Frequency:   "monthly",
	})
	require.True(t, errs.Valid())
	assert.Equal(t, model.BillFrequencyMonthly, in.Frequency)
}

func TestGoalAmounts(t *testing.T) {
	// Zero target is rejected, zero current is fine and is the default.
	_, errs := Goal(GoalForm{
		Name:     "Vacation",
		Deadline: "2027-06-01",
		Priority: "medium",
	})
	assert.Contains(t, errs, "targetAmount")

	in, errs := Goal(GoalForm{
		Name:         "Vacation",
		TargetAmount: "3000",
		Deadline:     "2027-06-01",
		Priority:     "medium",
	})
	require.True(t, errs.Valid(), "errors: %v", errs)
	assert.True(t, in.CurrentAmount.IsZero())

	_, errs = Goal(GoalForm{
		Name:          "Vacation",
		TargetAmount:  "3000",
		CurrentAmount: "-5",
		Deadline:      "2027-06-01",
		Priority:      "medium",
	})
	assert.Contains(t, errs, "currentAmount")
}

func TestContributionPositive(t *testing.T) {
	_, errs := Contribution(ContributionForm{Amount: "0"})
	assert.Contains(t, errs, "amount")

	in, errs := Contribution(ContributionForm{Amount: "50,25", FromAccountID: "a1"})
	require.True(t, errs.Valid())
	assert.True(t, in.Amount.Equal(decimal.RequireFromString("50.25")))
}

func TestTransactionValidation(t *testing.T) {
	_, errs := Transaction(TransactionForm{
		AccountID:  "a1",
		CategoryID: "c1",
		Type:       "transfer",
		Amount:     "10",
		Date:       "2026-08-30",
	})
	assert.Contains(t, errs, "type")

	in, errs := Transaction(TransactionForm{
		AccountID:  "a1",
		CategoryID: "c1",
		Type:       "expense",
		Amount:     "10.50",
		Date:       "2026-08-30",
	})
	require.True(t, errs.Valid(), "errors: %v", errs)
	assert.Equal(t, model.TransactionTypeExpense, in.Type)
	assert.Equal(t, "2026-08-30", in.Date.Format("2006-01-02"))
}
