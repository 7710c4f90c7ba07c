package main

import "errors"

// KnownMetrics is the set of metric names exported by sale-prospector
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"spx_http_request_duration_seconds": true,
	"spx_http_requests_total":           true,
	"spx_http_unattributed_writes_total": true,

	// Health metrics.
	"spx_healthz_up": true,
	"spx_readyz_up":  true,

	// Feed and outreach metrics.
	"spx_feeds_computed_total":   true,
	"spx_feed_opportunities":     true,
	"spx_feed_duration_seconds":  true,
	"spx_actions_recorded_total": true,
	"spx_actions_undone_total":   true,
	"spx_sales_completed_total":  true,
	"spx_sms_logged_total":       true,

	// Geocoding metrics.
	"spx_geocode_calls_total":               true,
	"spx_geocode_failures_total":            true,
	"spx_geocode_daily_usage":               true,
	"spx_geocode_daily_limit_hits_total":    true,
	"spx_geocode_backfill_duration_seconds": true,

	// Scheduler metrics.
	"spx_scheduler_next_geocode_timestamp": true,
	"spx_job_runs_total":                   true,

	// Notification metrics.
	"spx_notifications_sent_total":      true,
	"spx_notifications_failed_total":    true,
	"spx_notification_duration_seconds": true,

	// Recording rules.
	"spx:http_requests:rate5m":         true,
	"spx:http_errors:rate5m":           true,
	"spx:feeds_computed:rate5m":        true,
	"spx:actions_recorded:rate5m":      true,
	"spx:geocode_calls:rate5m":         true,
	"spx:geocode_failures:rate5m":      true,
	"spx:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
