package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/sale-prospector/internal/api/client"
)

func salesCmd() *cobra.Command {
	salesRoot := &cobra.Command{
		Use:   "sales",
		Short: "Browse sales and their prospecting feeds",
		Long: "List recent sales, show the contacts worth messaging about a sale,\n" +
			"and mark a sale complete once its outreach is done.",
	}

	salesRoot.AddCommand(
		salesListCmd(),
		salesGetCmd(),
		salesFeedCmd(),
		salesCompleteCmd(),
	)

	return salesRoot
}

func salesListCmd() *cobra.Command {
	var params apiclient.ListSalesParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sales",
		Example: `  spx sales list --range 7d
  spx sales list --favorites --price under500k
  spx sales list --range custom --start 2026-01-01 --end 2026-01-31 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			page, err := newClient().ListSales(context.Background(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(page)
			}
			if len(page.Sales) == 0 {
				fmt.Println("No sales found.")
				return nil
			}
			return printSalesTable(os.Stdout, page)
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.DateRange, "range", "", "date range (7d, 30d, 90d, all, custom)")
	f.StringVar(&params.Start, "start", "", "custom range start (YYYY-MM-DD)")
	f.StringVar(&params.End, "end", "", "custom range end (YYYY-MM-DD)")
	f.StringVar(&params.PriceBand, "price", "", "price band (any, under500k, 500k-1m, over1m)")
	f.StringVar(&params.Suburb, "suburb", "", "suburb")
	f.IntVar(&params.MinBedrooms, "min-beds", 0, "minimum bedrooms")
	f.StringVarP(&params.Query, "query", "q", "", "search address or suburb")
	f.IntVar(&params.Offset, "offset", 0, "pagination offset")
	f.BoolVar(&params.Favorites, "favorites", false, "only favorite suburbs")

	return cmd
}

func salesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <sale_id>",
		Short: "Show sale details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newClient().GetSale(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			return printSaleDetail(os.Stdout, s)
		},
	}
}

func salesFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed <sale_id>",
		Short: "Show who to message about a sale",
		Long: "Shows the sale's contacts grouped as hot, never contacted, previously\n" +
			"contacted, on cooldown, contacted and ignored, in message order.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := newClient().GetFeed(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(f)
			}
			return printFeed(os.Stdout, f)
		},
	}
}

func salesCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <sale_id>",
		Short: "Mark every remaining contact as ignored",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res, err := newClient().CompleteSale(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			fmt.Printf("Sale %s complete, %d contacts marked ignored.\n", res.SaleID, res.Resolved)
			return nil
		},
	}
}
