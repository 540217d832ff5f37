package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/forms"
	"github.com/finview-dev/finview/internal/model"
)

func newAccountsCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newAccountsListCommand(cfgPath))
	cmd.AddCommand(newAccountsCreateCommand(cfgPath))
	cmd.AddCommand(newAccountsDeleteCommand(cfgPath))
	return cmd
}

func newAccountsListCommand(cfgPath *string) *cobra.Command {
	var accType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}

			res := a.sync.Accounts(cmd.Context(), api.AccountFilter{
				Type: model.AccountType(accType),
			})
			if res.Err != nil {
				return res.Err
			}
			for _, acct := range res.Data {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					acct.ID, acct.Name, acct.Type,
					forms.FormatCurrency(acct.Balance, acct.Currency))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&accType, "type", "", "filter by account type")
	return cmd
}

func newAccountsCreateCommand(cfgPath *string) *cobra.Command {
	form := forms.AccountForm{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, errs := forms.Account(form)
			if !errs.Valid() {
				return formErrors(errs)
			}

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			acct, err := a.sync.CreateAccount(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s\n", acct.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "account name")
	cmd.Flags().StringVar(&form.Type, "type", "", "checking, savings, credit or investment")
	cmd.Flags().StringVar(&form.Currency, "currency", "", "3-letter currency code")
	cmd.Flags().StringVar(&form.Balance, "balance", "", "opening balance")
	cmd.Flags().StringVar(&form.Institution, "institution", "", "institution name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newAccountsDeleteCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			if err := a.sync.DeleteAccount(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %s\n", args[0])
			return nil
		},
	}
}
