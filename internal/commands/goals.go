package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/forms"
	"github.com/finview-dev/finview/internal/model"
)

func newGoalsCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
	}
	cmd.AddCommand(newGoalsListCommand(cfgPath))
	cmd.AddCommand(newGoalsCreateCommand(cfgPath))
	cmd.AddCommand(newGoalsContributeCommand(cfgPath))
	return cmd
}

func newGoalsListCommand(cfgPath *string) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}

			res := a.sync.Goals(cmd.Context(), api.GoalFilter{
				Status: model.GoalStatus(status),
			})
			if res.Err != nil {
				return res.Err
			}
			for _, g := range res.Data.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s of %s (%s%%)\n",
					g.ID, g.Name,
					g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2),
					g.DisplayProgress().StringFixed(0))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d goals\n", res.Data.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "active, paused or completed")
	return cmd
}

func newGoalsCreateCommand(cfgPath *string) *cobra.Command {
	form := forms.GoalForm{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a savings goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, errs := forms.Goal(form)
			if !errs.Valid() {
				return formErrors(errs)
			}

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			g, err := a.sync.CreateGoal(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s\n", g.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "goal name")
	cmd.Flags().StringVar(&form.TargetAmount, "target", "", "target amount")
	cmd.Flags().StringVar(&form.CurrentAmount, "current", "", "starting amount")
	cmd.Flags().StringVar(&form.Deadline, "deadline", "", "deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.Priority, "priority", "medium", "low, medium or high")
	cmd.Flags().StringVar(&form.LinkedAccountID, "account", "", "linked account id")
	cmd.Flags().StringVar(&form.MonthlyContribution, "monthly", "", "planned monthly contribution")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("deadline")
	return cmd
}

func newGoalsContributeCommand(cfgPath *string) *cobra.Command {
	form := forms.ContributionForm{}

	cmd := &cobra.Command{
		Use:   "contribute <id>",
		Short: "Add money to a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, errs := forms.Contribution(form)
			if !errs.Valid() {
				return formErrors(errs)
			}

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			g, err := a.sync.ContributeToGoal(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now at %s%%\n",
				g.Name, g.DisplayProgress().StringFixed(0))
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Amount, "amount", "", "contribution amount")
	cmd.Flags().StringVar(&form.FromAccountID, "from", "", "source account id")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
