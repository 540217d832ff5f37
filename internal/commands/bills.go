package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finview-dev/finview/internal/api"
)

func newBillsCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Manage bills",
	}
	cmd.AddCommand(newBillsListCommand(cfgPath))
	cmd.AddCommand(newBillsPayCommand(cfgPath))
	return cmd
}

func newBillsListCommand(cfgPath *string) *cobra.Command {
	var unpaid bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}

			res := a.sync.Bills(cmd.Context(), api.BillFilter{Unpaid: unpaid})
			if res.Err != nil {
				return res.Err
			}
			now := time.Now()
			for _, b := range res.Data {
				status := "due " + b.DueDate.Format("2006-01-02")
				if b.IsPaid {
					status = "paid"
				} else if b.Overdue(now) {
					status = "OVERDUE since " + b.DueDate.Format("2006-01-02")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					b.ID, b.Name, b.Amount.StringFixed(2), status)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&unpaid, "unpaid", false, "only unpaid bills")
	return cmd
}

func newBillsPayCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Pay a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			b, err := a.sync.PayBill(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Paid %s (%s)\n", b.Name, b.Amount.StringFixed(2))
			return nil
		},
	}
}
