package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

func actionsCmd() *cobra.Command {
	actionsRoot := &cobra.Command{
		Use:   "actions",
		Short: "Record outreach decisions",
	}

	actionsRoot.AddCommand(
		actionRecordCmd("contacted", domain.ActionContacted),
		actionRecordCmd("ignore", domain.ActionIgnored),
		actionUndoCmd(),
	)

	return actionsRoot
}

func actionRecordCmd(use string, action domain.ActionStatus) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <sale_id> <contact_id>",
		Short:   fmt.Sprintf("Mark a contact %s for a sale", action),
		Args:    cobra.ExactArgs(2),
		Example: fmt.Sprintf("  spx actions %s 3f2c... 9a1b...", use),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newClient().RecordAction(context.Background(), args[0], args[1], action)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			fmt.Printf("Contact %s marked %s.\n", a.ContactID, a.Action)
			return nil
		},
	}
}

func actionUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <sale_id> <contact_id>",
		Short: "Clear the decision for a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().UndoAction(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Action for contact %s cleared.\n", args[1])
			return nil
		},
	}
}

func smsCmd() *cobra.Command {
	var (
		message string
		sentAt  string
	)

	cmd := &cobra.Command{
		Use:   "sms <sale_id> <contact_id>",
		Short: "Log an SMS sent to a contact",
		Long: "Records a sent message. The contact goes on cooldown from the send time\n" +
			"for the configured number of days.",
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			var at time.Time
			if sentAt != "" {
				var err error
				if at, err = time.Parse(time.RFC3339, sentAt); err != nil {
					return fmt.Errorf("parsing --sent-at: %w", err)
				}
			}

			e, err := newClient().LogSMS(context.Background(), args[0], args[1], message, at)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(e)
			}
			fmt.Printf("SMS to contact %s logged at %s.\n", e.ContactID, e.SentAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "message text")
	cmd.Flags().StringVar(&sentAt, "sent-at", "", "send time in RFC 3339 (default now)")

	return cmd
}
