package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finview-dev/finview/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:     "finview",
		Short:   "Personal finance dashboard client",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to finview.yaml")

	rootCmd.AddCommand(newLoginCommand(&cfgPath))
	rootCmd.AddCommand(newLogoutCommand(&cfgPath))
	rootCmd.AddCommand(newRegisterCommand(&cfgPath))
	rootCmd.AddCommand(newAccountsCommand(&cfgPath))
	rootCmd.AddCommand(newBudgetsCommand(&cfgPath))
	rootCmd.AddCommand(newBillsCommand(&cfgPath))
	rootCmd.AddCommand(newGoalsCommand(&cfgPath))
	rootCmd.AddCommand(newTransactionsCommand(&cfgPath))
	rootCmd.AddCommand(newNotificationsCommand(&cfgPath))

	return rootCmd
}
