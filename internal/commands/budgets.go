package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/forms"
	"github.com/finview-dev/finview/internal/model"
)

func newBudgetsCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budgets",
	}
	cmd.AddCommand(newBudgetsListCommand(cfgPath))
	cmd.AddCommand(newBudgetsStatusCommand(cfgPath))
	cmd.AddCommand(newBudgetsAlertsCommand(cfgPath))
	cmd.AddCommand(newBudgetsCreateCommand(cfgPath))
	return cmd
}

func newBudgetsListCommand(cfgPath *string) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}

			res := a.sync.Budgets(cmd.Context(), api.BudgetFilter{
				Period: model.BudgetPeriod(period),
			})
			if res.Err != nil {
				return res.Err
			}
			for _, b := range res.Data {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s of %s (%s%%)\n",
					b.ID, b.CategoryID,
					b.Spent.StringFixed(2), b.Limit.StringFixed(2),
					b.PercentUsed().StringFixed(0))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "monthly or yearly")
	return cmd
}

func newBudgetsStatusCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Show spend status for a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}

			res := a.sync.BudgetStatus(cmd.Context(), args[0])
			if res.Err != nil {
				return res.Err
			}
			st := res.Data
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s of %s (%s%%)\n",
				st.BudgetID, st.Spent.StringFixed(2), st.Limit.StringFixed(2),
				st.PercentUsed.StringFixed(0))
			if st.OverBudget {
				fmt.Fprintln(cmd.OutOrStdout(), "over budget")
			}
			return nil
		},
	}
}

func newBudgetsAlertsCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "List budgets past their alert threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}

			res := a.sync.BudgetAlerts(cmd.Context())
			if res.Err != nil {
				return res.Err
			}
			for _, al := range res.Data {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s%% (threshold %d%%)\n",
					al.BudgetID, al.CategoryID,
					al.PercentUsed.StringFixed(0), al.Threshold)
			}
			return nil
		},
	}
}

func newBudgetsCreateCommand(cfgPath *string) *cobra.Command {
	form := forms.BudgetForm{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, errs := forms.Budget(form)
			if !errs.Valid() {
				return formErrors(errs)
			}

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			b, err := a.sync.CreateBudget(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created budget %s\n", b.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.CategoryID, "category", "", "category id")
	cmd.Flags().StringVar(&form.Limit, "limit", "", "spending limit")
	cmd.Flags().StringVar(&form.Period, "period", "monthly", "monthly or yearly")
	cmd.Flags().BoolVar(&form.AlertsEnabled, "alerts", false, "enable threshold alerts")
	cmd.Flags().StringVar(&form.AlertThreshold, "threshold", "", "alert threshold percent (0-100)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("limit")
	return cmd
}
