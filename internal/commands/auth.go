package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finview-dev/finview/internal/forms"
)

func formErrors(errs forms.Errors) error {
	parts := make([]string, 0, len(errs))
	for field, msg := range errs {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, "; "))
}

func newLoginCommand(cfgPath *string) *cobra.Command {
	var email, password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the dashboard backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, errs := forms.Login(forms.LoginForm{
				Email:      email,
				Password:   password,
				RememberMe: remember,
			})
			if !errs.Valid() {
				return formErrors(errs)
			}

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			user, err := a.manager.Login(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&remember, "remember", false, "keep the session for 30 days")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and drop all local state",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			if err := a.manager.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newRegisterCommand(cfgPath *string) *cobra.Command {
	var email, password, confirm, first, last string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, errs := forms.Register(forms.RegisterForm{
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
				FirstName:       first,
				LastName:        last,
			})
			if !errs.Valid() {
				return formErrors(errs)
			}

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			user, err := a.manager.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "password confirmation")
	cmd.Flags().StringVar(&first, "first-name", "", "first name")
	cmd.Flags().StringVar(&last, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm-password")
	return cmd
}
