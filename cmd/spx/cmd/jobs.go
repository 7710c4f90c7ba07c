package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "View background job history",
		Long: "View the execution history of background jobs (geocode_backfill).\n" +
			"Each run records status, rows updated and any error.",
	}

	jobsRoot.AddCommand(
		jobsListCmd(),
		jobsHistoryCmd(),
		jobsGeocodeCmd(),
	)

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List latest run per job",
		Example: `  spx jobs list
  spx jobs list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			runs, err := newClient().ListJobs(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No job runs found.")
				return nil
			}
			return printJobRunsTable(os.Stdout, runs)
		},
	}
}

func jobsHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history <job_name>",
		Short:   "Show run history for a job",
		Args:    cobra.ExactArgs(1),
		Example: `  spx jobs history geocode_backfill --limit 5`,
		RunE: func(_ *cobra.Command, args []string) error {
			runs, err := newClient().GetJobHistory(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Printf("No runs found for job %q.\n", args[0])
				return nil
			}
			return printJobRunsTable(os.Stdout, runs)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of runs (server default 20)")
	return cmd
}

func jobsGeocodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "geocode",
		Short: "Run the geocode backfill now",
		RunE: func(_ *cobra.Command, _ []string) error {
			res, err := newClient().RunGeocode(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			fmt.Printf("Geocoded %d sales and %d contacts (%d failures).\n",
				res.SalesGeocoded, res.ContactsGeocoded, res.Failures)
			if res.DailyLimitHit {
				fmt.Println("Daily lookup limit reached; the rest will run tomorrow.")
			}
			return nil
		},
	}
}
