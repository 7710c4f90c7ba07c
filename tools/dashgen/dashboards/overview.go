// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/sale-prospector/tools/dashgen/panels"
)

// BuildOverview constructs the SPX Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("SPX Overview").
		Uid("spx-overview").
		Tags([]string{"spx", "sale-prospector"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.UnattributedWrites()))

	// Row 3: Feeds.
	b.WithRow(dashboard.NewRowBuilder("Feeds").
		WithPanel(panels.FeedsRate()).
		WithPanel(panels.FeedDuration()).
		WithPanel(panels.OpportunitiesPerFeed()))

	// Row 4: Outreach.
	b.WithRow(dashboard.NewRowBuilder("Outreach").
		WithPanel(panels.ActionsByType()).
		WithPanel(panels.SalesCompleted()).
		WithPanel(panels.SMSLogged()))

	// Row 5: Geocoding.
	b.WithRow(dashboard.NewRowBuilder("Geocoding").
		WithPanel(panels.GeocodeCallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.NextBackfill()).
		WithPanel(panels.LimitHits()).
		WithPanel(panels.BackfillDuration()).
		WithPanel(panels.JobRuns()))

	// Row 6: Notifications.
	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.ReportsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
