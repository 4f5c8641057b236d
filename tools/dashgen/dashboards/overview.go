// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/mws-toolkit/tools/dashgen/panels"
)

// UID is the stable dashboard identifier.
const UID = "mws-sync-overview"

// BuildOverview constructs the mws-sync overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("MWS Sync Overview").
		Uid(UID).
		Tags([]string{"mws", "mws-sync"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("MWS API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.ThrottledRate()).
		WithPanel(panels.QuotaRemaining()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.PagesFetched()))

	b.WithRow(dashboard.NewRowBuilder("Sync").
		WithPanel(panels.OrdersUpsertedRate()).
		WithPanel(panels.JobDuration()).
		WithPanel(panels.JobFailures()).
		WithPanel(panels.CheckpointAge()).
		WithPanel(panels.ReportsArchived()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
