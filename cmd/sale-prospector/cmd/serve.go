package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/sale-prospector/api/openapi"
	"github.com/donaldgifford/sale-prospector/internal/api/handlers"
	"github.com/donaldgifford/sale-prospector/internal/api/middleware"
	"github.com/donaldgifford/sale-prospector/internal/config"
	"github.com/donaldgifford/sale-prospector/internal/engine"
	"github.com/donaldgifford/sale-prospector/internal/store"
	"github.com/donaldgifford/sale-prospector/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, &cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			log.Error("telemetry shutdown failed", "error", err)
		}
	}()

	s, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), int32(cfg.Database.PoolSize)) //nolint:gosec // validated pool size
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	prospector := engine.NewProspector(s,
		engine.WithLogger(log),
		engine.WithDefaultCooldownDays(cfg.Cooldown.DefaultDays),
	)

	var geocodeRunner handlers.GeocodeRunner
	if cfg.Geocode.Enabled {
		sched, err := newScheduler(cfg, s, log)
		if err != nil {
			return err
		}
		sched.RecoverStaleJobRuns(ctx)
		sched.Start()
		defer func() { <-sched.Stop().Done() }()
		geocodeRunner = sched
	} else {
		log.Info("geocoding disabled, scheduler not started")
	}

	e := newEcho(cfg, log, s)

	api := humaecho.New(e, newHumaConfig())
	handlers.RegisterSaleRoutes(api, handlers.NewSalesHandler(prospector))
	handlers.RegisterActionRoutes(api, handlers.NewActionsHandler(prospector))
	handlers.RegisterFavoriteRoutes(api, handlers.NewFavoritesHandler(prospector))
	handlers.RegisterSettingsRoutes(api, handlers.NewSettingsHandler(prospector, prospector))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(s, geocodeRunner))
	openapi.RegisterRoutes(e, api)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newEcho builds the echo instance with middleware and the non-API routes.
func newEcho(cfg *config.Config, log *slog.Logger, p handlers.Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(p)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// newHumaConfig disables huma's own docs page; the swagger routes serve it.
func newHumaConfig() huma.Config {
	hc := huma.DefaultConfig("Sale Prospector API", Version)
	hc.Info.Description = "Ranks who to message about recent property sales and tracks outreach."
	hc.DocsPath = ""
	return hc
}
