package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
)

// GoalForm is the raw goal input.
type GoalForm struct {
	Name                string
	TargetAmount        string
	CurrentAmount       string
	Deadline            string
	Priority            string
	LinkedAccountID     string
	MonthlyContribution string
}

// Goal validates a goal form. The target must be positive; the starting
// amount may be zero and defaults to it.
func Goal(f GoalForm) (api.GoalInput, Errors) {
	errs := Errors{}
	name := strings.TrimSpace(f.Name)

	if len(name) < 2 {
		errs.add("name", "Name must be at least 2 characters")
	}

	target, err := ParseAmount(f.TargetAmount)
	if err != nil || !target.IsPositive() {
		errs.add("targetAmount", "Target amount must be greater than 0")
	}

	current := decimal.Zero
	if strings.TrimSpace(f.CurrentAmount) != "" {
		d, err := ParseAmount(f.CurrentAmount)
		if err != nil || d.IsNegative() {
			errs.add("currentAmount", "Current amount cannot be negative")
		} else {
			current = d
		}
	}

	deadline, ok := ParseDate(f.Deadline)
	if !ok {
		errs.add("deadline", "Enter a valid deadline")
	}

	priority := model.GoalPriority(f.Priority)
	if !model.ValidGoalPriority(priority) {
		errs.add("priority", "Choose a priority")
	}

	monthly := decimal.Zero
	if strings.TrimSpace(f.MonthlyContribution) != "" {
		d, err := ParseAmount(f.MonthlyContribution)
		if err != nil || d.IsNegative() {
			errs.add("monthlyContribution", "Monthly contribution cannot be negative")
		} else {
			monthly = d
		}
	}

	return api.GoalInput{
		Name:                name,
		TargetAmount:        target,
		CurrentAmount:       current,
		Deadline:            deadline,
		Priority:            priority,
		LinkedAccountID:     strings.TrimSpace(f.LinkedAccountID),
		MonthlyContribution: monthly,
	}, errs
}

// ContributionForm is the raw goal contribution input.
type ContributionForm struct {
	Amount        string
	FromAccountID string
}

// Contribution validates a contribution form.
func Contribution(f ContributionForm) (api.ContributionInput, Errors) {
	errs := Errors{}

	amount, err := ParseAmount(f.Amount)
	if err != nil || !amount.IsPositive() {
		errs.add("amount", "Amount must be greater than 0")
	}

	return api.ContributionInput{
		Amount:        amount,
		FromAccountID: strings.TrimSpace(f.FromAccountID),
	}, errs
}
