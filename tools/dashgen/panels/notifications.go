package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ReportsRate shows backfill job reports delivered in the last hour.
func ReportsRate() *timeseries.PanelBuilder {
	return series("Job Reports Sent (1h)", "Backfill job reports delivered to Discord in the last hour", NarrowTS).
		WithTarget(PromQuery(increaseOver("spx_notifications_sent_total", "1h"), "sent", "A"))
}

// NotificationLatency shows p95 Discord webhook latency.
func NotificationLatency() *timeseries.PanelBuilder {
	return series("Notification Latency (p95)", "95th percentile Discord webhook latency", NarrowTS).
		WithTarget(PromQuery(`spx:notification_duration:p95_5m`, "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1, 5))
}

// NotificationFailures shows failed job report deliveries in the last day.
func NotificationFailures() *stat.PanelBuilder {
	return single("Notification Failures (24h)", "Failed job report deliveries in the last 24 hours",
		increaseOver("spx_notifications_failed_total", "24h")).
		Height(TSHeight).
		Span(NarrowTS).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
