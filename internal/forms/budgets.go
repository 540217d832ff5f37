package forms

import (
	"strconv"
	"strings"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/model"
)

// BudgetForm is the raw budget input.
type BudgetForm struct {
	CategoryID     string
	Limit          string
	Period         string
	AlertsEnabled  bool
	AlertThreshold string
}

// Budget validates a budget form. The alert threshold is a percentage and
// must stay within 0-100.
func Budget(f BudgetForm) (api.BudgetInput, Errors) {
	errs := Errors{}

	categoryID := strings.TrimSpace(f.CategoryID)
	if categoryID == "" {
		errs.add("categoryId", "Choose a category")
	}

	limit, err := ParseAmount(f.Limit)
	if err != nil || !limit.IsPositive() {
		errs.add("limit", "Limit must be greater than 0")
	}

	period := model.BudgetPeriod(f.Period)
	if !model.ValidBudgetPeriod(period) {
		errs.add("period", "Choose monthly or yearly")
	}

	threshold := 80
	if strings.TrimSpace(f.AlertThreshold) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(f.AlertThreshold))
		if err != nil || n < 0 || n > 100 {
			errs.add("alertThreshold", "Threshold must be between 0 and 100")
		} else {
			threshold = n
		}
	}

	return api.BudgetInput{
		CategoryID: categoryID,
		Limit:      limit,
		Period:     period,
		Alerts: model.BudgetAlerts{
			Enabled:   f.AlertsEnabled,
			Threshold: threshold,
		},
	}, errs
}
