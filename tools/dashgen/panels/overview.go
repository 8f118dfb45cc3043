package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func counterStat(title, description, expr string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea).
		TextMode(common.BigValueTextModeValue)
}

// RequestsStat returns a stat panel with the marketplace calls of the last 24h.
func RequestsStat() *stat.PanelBuilder {
	return counterStat(
		"API Calls (24h)",
		"Marketplace API requests that received a response",
		`sum(increase(shopstore_api_requests_total[24h]))`,
	)
}

// LoginsStat returns a stat panel with successful token exchanges.
func LoginsStat() *stat.PanelBuilder {
	return counterStat(
		"Logins (24h)",
		"Successful OAuth code exchanges across vendors",
		`sum(increase(shopstore_logins_total[24h]))`,
	)
}

// ListingsStat returns a stat panel with listings accepted by marketplaces.
func ListingsStat() *stat.PanelBuilder {
	return counterStat(
		"Listings Created (24h)",
		"Listings accepted by Amazon or Mercado Livre",
		`sum(increase(shopstore_listings_created_total[24h]))`,
	)
}

// FailureStat returns a stat panel with the non-2xx share of responses.
func FailureStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Failure %").
		Description("Share of marketplace responses outside 2xx over 5 minutes").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(shopstore:api_failures:rate5m) / sum(shopstore:api_requests:rate5m) * 100`,
			"", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(5, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}
