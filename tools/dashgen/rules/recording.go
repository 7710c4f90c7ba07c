package rules

// RecordingRules returns the pre-computed rates used by dashboards and
// alert rules.
func RecordingRules() PrometheusRule {
	return newRuleCR("spx-recording-rules", "spx-recording",
		record("spx:http_requests:rate5m", `sum(rate(spx_http_requests_total[5m]))`),
		record("spx:http_errors:rate5m", `sum(rate(spx_http_requests_total{status=~"5.."}[5m]))`),
		record("spx:feeds_computed:rate5m", `rate(spx_feeds_computed_total[5m])`),
		record("spx:actions_recorded:rate5m", `sum(rate(spx_actions_recorded_total[5m]))`),
		record("spx:geocode_calls:rate5m", `rate(spx_geocode_calls_total[5m])`),
		record("spx:geocode_failures:rate5m", `rate(spx_geocode_failures_total[5m])`),
		record("spx:notification_duration:p95_5m",
			`histogram_quantile(0.95, sum(rate(spx_notification_duration_seconds_bucket[5m])) by (le))`),
	)
}
