package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/sale-prospector/internal/config"
	"github.com/donaldgifford/sale-prospector/internal/engine"
	"github.com/donaldgifford/sale-prospector/internal/geocode"
	"github.com/donaldgifford/sale-prospector/internal/notify"
	"github.com/donaldgifford/sale-prospector/internal/store"
)

// newTracedClient returns an HTTP client whose outbound calls are traced.
func newTracedClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func newNotifier(cfg *config.NotificationsConfig, log *slog.Logger) notify.Notifier {
	if cfg.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Discord.WebhookURL,
			notify.WithHTTPClient(newTracedClient(10*time.Second)),
		)
	}
	return notify.NewNoOpNotifier(log)
}

func newGeocoder(cfg *config.GeocodeConfig) *geocode.NominatimClient {
	limiter := geocode.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, cfg.RateLimit.DailyLimit)
	return geocode.NewNominatimClient(
		geocode.WithBaseURL(cfg.BaseURL),
		geocode.WithUserAgent(cfg.UserAgent),
		geocode.WithEmail(cfg.Email),
		geocode.WithHTTPClient(newTracedClient(15*time.Second)),
		geocode.WithRateLimiter(limiter),
	)
}

// newScheduler wires the geocode backfill and the cron schedule that runs it.
func newScheduler(cfg *config.Config, s store.Store, log *slog.Logger) (*engine.Scheduler, error) {
	b := engine.NewBackfiller(s, newGeocoder(&cfg.Geocode), newNotifier(&cfg.Notifications, log),
		engine.WithBackfillLogger(log),
		engine.WithBatchSize(cfg.Geocode.BatchSize),
		engine.WithCountry(cfg.Geocode.Country),
	)
	return engine.NewScheduler(b, s, cfg.Geocode.Interval, log)
}
