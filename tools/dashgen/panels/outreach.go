package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// FeedsRate shows sale feeds computed per minute.
func FeedsRate() *timeseries.PanelBuilder {
	return series("Feeds / min", "Sale feeds computed per minute", NarrowTS).
		WithTarget(PromQuery(`spx:feeds_computed:rate5m * 60`, "feeds/min", "A"))
}

// FeedDuration shows the p95 time to build a feed.
func FeedDuration() *timeseries.PanelBuilder {
	return series("Feed Duration (p95)", "95th percentile time to build a sale feed", NarrowTS).
		WithTarget(PromQuery(histogramQuantile(0.95, "spx_feed_duration_seconds"), "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(0.5, 2))
}

// OpportunitiesPerFeed shows the median number of matched contacts per feed.
func OpportunitiesPerFeed() *timeseries.PanelBuilder {
	return series("Opportunities per Feed (p50)", "Median number of matched contacts per computed feed", NarrowTS).
		WithTarget(PromQuery(histogramQuantile(0.50, "spx_feed_opportunities"), "p50", "A"))
}

// ActionsByType shows contacted/ignored decisions and undos per minute.
func ActionsByType() *timeseries.PanelBuilder {
	return withTable(series("Actions / min", "Contacted and ignored decisions recorded per minute", TSWidth), "mean", "max").
		WithTarget(PromQuery(
			fmt.Sprintf(`sum by (action) (rate(%s[5m])) * 60`, jobMetric("spx_actions_recorded_total")),
			"{{action}}", "A",
		)).
		WithTarget(PromQuery(
			fmt.Sprintf(`rate(%s[5m]) * 60`, jobMetric("spx_actions_undone_total")),
			"undone", "B",
		))
}

// SalesCompleted shows sales marked complete in the last 24 hours.
func SalesCompleted() *stat.PanelBuilder {
	return daily("Sales Completed (24h)", "Sales marked complete in the last 24 hours", "spx_sales_completed_total")
}

// SMSLogged shows SMS log entries written in the last 24 hours.
func SMSLogged() *stat.PanelBuilder {
	return daily("SMS Logged (24h)", "SMS log entries written in the last 24 hours", "spx_sms_logged_total")
}

// daily is a tall stat of a counter's 24h increase with a sparkline.
func daily(title, description, counter string) *stat.PanelBuilder {
	return single(title, description, increaseOver(counter, "24h")).
		Height(TSHeight).
		GraphMode(common.BigValueGraphModeArea)
}
