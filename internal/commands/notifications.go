package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finview-dev/finview/internal/api"
)

func newNotificationsCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "View and manage notifications",
	}
	cmd.AddCommand(newNotificationsListCommand(cfgPath))
	cmd.AddCommand(newNotificationsReadCommand(cfgPath))
	cmd.AddCommand(newNotificationsReadAllCommand(cfgPath))
	return cmd
}

func newNotificationsListCommand(cfgPath *string) *cobra.Command {
	var unread bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}

			res := a.sync.Notifications(cmd.Context(), api.NotificationFilter{
				UnreadOnly: unread,
			})
			if res.Err != nil {
				return res.Err
			}
			for _, n := range res.Data {
				marker := " "
				if !n.IsRead {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t[%s]\t%s\n",
					marker, n.ID, n.Type, n.Title)
			}

			count := a.sync.UnreadNotificationCount(cmd.Context())
			if count.Err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%d unread\n", count.Data)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&unread, "unread", false, "only unread notifications")
	return cmd
}

func newNotificationsReadCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			if _, err := a.sync.MarkNotificationRead(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Marked read")
			return nil
		},
	}
}

func newNotificationsReadAllCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			if err := a.sync.MarkAllNotificationsRead(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All notifications marked read")
			return nil
		},
	}
}
