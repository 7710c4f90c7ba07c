package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

func favoritesCmd() *cobra.Command {
	favRoot := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite suburbs",
		Long:    "Pin up to five suburbs. `spx sales list --favorites` shows only their sales.",
	}

	show := func(favs []domain.SuburbFavorite, err error) error {
		if err != nil {
			return err
		}
		if jsonOutput() {
			return outputJSON(favs)
		}
		if len(favs) == 0 {
			fmt.Println("No favorite suburbs.")
			return nil
		}
		return printFavorites(os.Stdout, favs)
	}

	favRoot.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorite suburbs",
			RunE: func(_ *cobra.Command, _ []string) error {
				return show(newClient().ListFavorites(context.Background()))
			},
		},
		&cobra.Command{
			Use:   "add <suburb>",
			Short: "Pin a suburb",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return show(newClient().AddFavorite(context.Background(), args[0]))
			},
		},
		&cobra.Command{
			Use:   "remove <suburb>",
			Short: "Unpin a suburb",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return show(newClient().RemoveFavorite(context.Background(), args[0]))
			},
		},
		&cobra.Command{
			Use:     "reorder <suburb>...",
			Short:   "Set the order of every pinned suburb",
			Args:    cobra.MinimumNArgs(1),
			Example: `  spx favorites reorder Northgate Eastside Westfield`,
			RunE: func(_ *cobra.Command, args []string) error {
				return show(newClient().ReorderFavorites(context.Background(), args))
			},
		},
	)

	return favRoot
}

func settingsCmd() *cobra.Command {
	settingsRoot := &cobra.Command{
		Use:   "settings",
		Short: "View and change user settings",
	}

	settingsRoot.AddCommand(&cobra.Command{
		Use:   "cooldown [days]",
		Short: "Show or set the cooldown window (3, 7, 14 or 30 days)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if len(args) == 1 {
				days, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parsing days: %w", err)
				}
				if err := c.SetCooldown(context.Background(), days); err != nil {
					return err
				}
			}

			days, err := c.GetCooldown(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]int{"days": days})
			}
			fmt.Printf("Cooldown window: %d days\n", days)
			return nil
		},
	})

	return settingsRoot
}

func progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress [suburb...]",
		Short: "Show outreach progress per suburb",
		Long:  "Without arguments, reports on your favorite suburbs.",
		RunE: func(_ *cobra.Command, args []string) error {
			rows, err := newClient().SuburbProgress(context.Background(), args)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(rows)
			}
			if len(rows) == 0 {
				fmt.Println("No progress yet.")
				return nil
			}
			return printSuburbProgress(os.Stdout, rows)
		},
	}
}
