package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/sale-prospector/internal/store"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Run one geocode backfill and exit",
	Long: "Looks up coordinates for one batch of sales and contacts that have none.\n" +
		"The run is recorded in the job history like a scheduled run.",
	RunE: runGeocode,
}

func runGeocode(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), int32(cfg.Database.PoolSize)) //nolint:gosec // validated pool size
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()

	sched, err := newScheduler(cfg, s, log)
	if err != nil {
		return err
	}

	res, err := sched.RunGeocodeBackfill(ctx)
	if err != nil {
		return fmt.Errorf("geocode backfill: %w", err)
	}

	log.Info("geocode backfill finished",
		"sales", res.SalesGeocoded,
		"contacts", res.ContactsGeocoded,
		"failures", res.Failures,
		"daily_limit_hit", res.DailyLimitHit,
	)
	return nil
}
