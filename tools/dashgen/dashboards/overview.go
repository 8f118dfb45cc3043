// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/shopstore/tools/dashgen/panels"
)

// BuildOverview constructs the shopstore marketplace dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Shopstore Marketplaces").
		Uid("shopstore-overview").
		Tags([]string{"shopstore", "marketplace"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.RequestsStat()).
		WithPanel(panels.FailureStat()).
		WithPanel(panels.LoginsStat()).
		WithPanel(panels.ListingsStat()))

	b.WithRow(dashboard.NewRowBuilder("Marketplace APIs").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.OperationRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.FailureRate()).
		WithPanel(panels.TransportErrors()))

	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.ListingsRate()).
		WithPanel(panels.ProductsRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
