package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finview-dev/finview/internal/api"
)

func newTransactionsCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List, import and export transactions",
	}
	cmd.AddCommand(newTransactionsListCommand(cfgPath))
	cmd.AddCommand(newTransactionsImportCommand(cfgPath))
	cmd.AddCommand(newTransactionsExportCommand(cfgPath))
	return cmd
}

func parseRange(from, to string) (api.TransactionFilter, error) {
	var f api.TransactionFilter
	var err error
	if f.From, err = time.Parse("2006-01-02", from); err != nil {
		return f, fmt.Errorf("invalid --from date: %w", err)
	}
	if f.To, err = time.Parse("2006-01-02", to); err != nil {
		return f, fmt.Errorf("invalid --to date: %w", err)
	}
	return f, nil
}

func newTransactionsListCommand(cfgPath *string) *cobra.Command {
	var from, to, accountID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseRange(from, to)
			if err != nil {
				return err
			}
			filter.AccountID = accountID

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}

			res := a.sync.Transactions(cmd.Context(), filter)
			if res.Err != nil {
				return res.Err
			}
			for _, tx := range res.Data.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					tx.Date.Format("2006-01-02"), tx.Type,
					tx.Amount.StringFixed(2), tx.Description)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d transactions\n",
				len(res.Data.Items), res.Data.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&accountID, "account", "", "filter by account id")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newTransactionsImportCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			res, err := a.sync.ImportTransactions(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d, failed %d\n", res.Imported, res.Failed)
			for _, rowErr := range res.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", rowErr)
			}
			return nil
		},
	}
}

func newTransactionsExportCommand(cfgPath *string) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions for a date range to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseRange(from, to)
			if err != nil {
				return err
			}

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			blob, err := a.sync.ExportTransactions(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, blob, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(blob), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&out, "out", "transactions.csv", "output file")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
