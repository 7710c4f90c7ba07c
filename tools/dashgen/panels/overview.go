package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat shows the liveness gauge.
func HealthzStat() *stat.PanelBuilder {
	return upDown("Healthz", "Health check status (1 = ok, 0 = failing)", "spx_healthz_up")
}

// ReadyzStat shows the readiness gauge.
func ReadyzStat() *stat.PanelBuilder {
	return upDown("Readyz", "Readiness check status (1 = ready, 0 = database unreachable)", "spx_readyz_up")
}

// QuotaGauge shows rolling geocoding usage as a percentage of the daily
// limit.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Geocode Quota %").
		Description("Daily geocoding calls as percentage of the configured limit").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf("spx_geocode_daily_usage / %d * 100", GeocodeDailyLimit), "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(ColorSchemeThresholds())
}

// UptimeStat shows time since the server process started.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start",
		`time() - `+jobMetric("process_start_time_seconds")).
		Unit("s")
}
