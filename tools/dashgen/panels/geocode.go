package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// GeocodeCallsRate shows geocoding lookups and failures per minute.
func GeocodeCallsRate() *timeseries.PanelBuilder {
	return withTable(series("Geocode Calls / min", "Geocoding lookups and failed lookups per minute", TSWidth), "mean", "max").
		WithTarget(PromQuery(`spx:geocode_calls:rate5m * 60`, "calls/min", "A")).
		WithTarget(PromQuery(`spx:geocode_failures:rate5m * 60`, "failures/min", "B"))
}

// DailyUsage tracks the rolling daily call count against the limit.
func DailyUsage() *timeseries.PanelBuilder {
	return series("Daily Usage", "Geocoding calls in the rolling 24-hour window", TSWidth).
		WithTarget(PromQuery(`spx_geocode_daily_usage`, "used", "A")).
		Thresholds(ThresholdsGreenYellowRed(GeocodeDailyLimit*0.8, GeocodeDailyLimit))
}

// NextBackfill shows time until the next scheduled backfill.
func NextBackfill() *stat.PanelBuilder {
	return single("Next Backfill", "Time until the next scheduled geocode backfill",
		jobMetric("spx_scheduler_next_geocode_timestamp")+` - time()`).
		Unit("s").
		ColorMode(common.BigValueColorModeBackground)
}

// LimitHits shows how often the daily limit stopped a backfill in the last
// 24 hours.
func LimitHits() *stat.PanelBuilder {
	return single("Limit Hits (24h)", "Times the daily geocoding limit was reached in the last 24 hours",
		increaseOver("spx_geocode_daily_limit_hits_total", "24h")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorMode(common.BigValueColorModeBackground)
}

// BackfillDuration shows the p95 backfill run time.
func BackfillDuration() *timeseries.PanelBuilder {
	return series("Backfill Duration (p95)", "95th percentile geocode backfill run duration", TSWidth).
		WithTarget(PromQuery(histogramQuantile(0.95, "spx_geocode_backfill_duration_seconds"), "p95", "A")).
		Unit("s")
}

// JobRuns shows scheduled job runs in the last hour by job and status.
func JobRuns() *timeseries.PanelBuilder {
	return withTable(series("Job Runs (1h)", "Scheduled job runs in the last hour by job and status", TSWidth), "last").
		WithTarget(PromQuery(
			fmt.Sprintf(`sum by (job_name, status) (%s)`, increaseOver("spx_job_runs_total", "1h")),
			"{{job_name}} {{status}}", "A",
		))
}
