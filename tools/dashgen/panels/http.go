package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RequestRate shows HTTP requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return withTable(series("Request Rate", "HTTP requests per second", TSWidth), "mean", "max").
		WithTarget(PromQuery(`spx:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps")
}

// LatencyPercentiles shows p50, p95 and p99 HTTP request latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const metric = "spx_http_request_duration_seconds"
	return withTable(series("Latency Percentiles", "HTTP request duration percentiles", TSWidth), "mean", "max").
		WithTarget(PromQuery(histogramQuantile(0.50, metric), "p50", "A")).
		WithTarget(PromQuery(histogramQuantile(0.95, metric), "p95", "B")).
		WithTarget(PromQuery(histogramQuantile(0.99, metric), "p99", "C")).
		Unit("s")
}

// ErrorRate shows 5xx responses as a percentage of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return series("Error Rate %", "HTTP 5xx error rate as percentage of total requests", TSWidth).
		WithTarget(PromQuery(`spx:http_errors:rate5m / spx:http_requests:rate5m * 100`, "error %", "A")).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}

// UnattributedWrites shows API writes that arrived without an X-User-ID,
// by route.
func UnattributedWrites() *timeseries.PanelBuilder {
	return withTable(series("Unattributed Writes (1h)",
		"Action, completion and SMS log writes received without a user id", TSWidth), "last").
		WithTarget(PromQuery(
			`sum by (method, path) (`+increaseOver("spx_http_unattributed_writes_total", "1h")+`)`,
			"{{method}} {{path}}", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds())
}
