package rules

// AlertRules returns the operational alerts for sale-prospector.
func AlertRules() PrometheusRule {
	return newRuleCR("spx-alerts", "spx-alerts",
		alert("SpxDown", `absent(up{job="sale-prospector"})`, "2m", SeverityCritical,
			"Sale Prospector is down",
			"The sale-prospector job has been absent for more than 2 minutes."),
		alert("SpxReadinessDown", `spx_readyz_up == 0`, "2m", SeverityCritical,
			"Sale Prospector readiness check is failing",
			"The database has been unreachable for more than 2 minutes."),
		alert("SpxHighErrorRate", `spx:http_errors:rate5m / spx:http_requests:rate5m > 0.05`, "5m", SeverityWarning,
			"High HTTP error rate on Sale Prospector",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		alert("SpxGeocodeFailures", `spx:geocode_failures:rate5m / spx:geocode_calls:rate5m > 0.5`, "15m", SeverityWarning,
			"Most geocoding lookups are failing",
			"More than half of geocoding lookups have failed for 15 minutes. Check the base URL and User-Agent."),
		alert("SpxGeocodeBackfillFailing",
			`increase(spx_job_runs_total{job_name="geocode_backfill",status="failed"}[3h]) > 2`, "0m", SeverityWarning,
			"Geocode backfill keeps failing",
			"More than two geocode backfill runs failed in the last 3 hours."),
		alert("SpxGeocodeLimitReached", `increase(spx_geocode_daily_limit_hits_total[5m]) > 0`, "0m", SeverityInfo,
			"Geocoding daily limit has been reached",
			"The daily geocoding budget is exhausted. Backfill resumes when the rolling window frees capacity."),
		alert("SpxNotificationFailures", `increase(spx_notifications_failed_total[5m]) > 0`, "1m", SeverityWarning,
			"Notification delivery failures detected",
			"One or more job reports (Discord webhooks) have failed to send."),
		alert("SpxUnattributedWrites", `sum(increase(spx_http_unattributed_writes_total[1h])) > 0`, "0m", SeverityInfo,
			"API writes arriving without a user",
			"Actions or completions were sent without X-User-ID in the last hour. Check the UI or CLI is configured with a user."),
	)
}
