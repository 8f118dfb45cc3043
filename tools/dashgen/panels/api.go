package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

func rateSeries(title, description string, span uint32) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(span).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RequestRate returns a timeseries panel with the request rate per vendor.
func RequestRate() *timeseries.PanelBuilder {
	return rateSeries("Request Rate", "Marketplace API requests per second by vendor", TSWidth).
		WithTarget(PromQuery(byVendor(`shopstore:api_requests:rate5m`), VendorLegend, "A")).
		Unit("reqps").
		Thresholds(ThresholdsGreenOnly())
}

// OperationRate returns a timeseries panel with the request rate per
// adapter operation (login, create_product, ...).
func OperationRate() *timeseries.PanelBuilder {
	return rateSeries("Requests by Operation", "Requests per second by adapter operation", TSWidth).
		WithTarget(PromQuery(
			`sum by (operation) (shopstore:api_requests:rate5m)`,
			"{{operation}}", "A",
		)).
		Unit("reqps").
		Thresholds(ThresholdsGreenOnly())
}

// LatencyPercentiles returns a timeseries panel with p50 and p95 request
// latency per vendor.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return rateSeries("Latency Percentiles", "Marketplace API request duration percentiles", TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum by (le, vendor) (rate(shopstore_api_request_duration_seconds_bucket[5m])))`,
			"p50 {{vendor}}", "A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le, vendor) (rate(shopstore_api_request_duration_seconds_bucket[5m])))`,
			"p95 {{vendor}}", "B",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(2, 5))
}

// FailureRate returns a timeseries panel with the non-2xx share of
// responses per vendor.
func FailureRate() *timeseries.PanelBuilder {
	return rateSeries("Failure Rate %", "Responses outside 2xx as a share of all responses", TSWidth).
		WithTarget(PromQuery(
			byVendor(`shopstore:api_failures:rate5m`)+` / `+byVendor(`shopstore:api_requests:rate5m`)+` * 100`,
			VendorLegend, "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(5, 10)).
		ColorScheme(ColorSchemeThresholds())
}

// TransportErrors returns a timeseries panel with requests that never got
// a response (DNS, TLS, timeouts, cancellations).
func TransportErrors() *timeseries.PanelBuilder {
	return rateSeries("Transport Errors", "Requests that failed before a response was received", FullWidth).
		WithTarget(PromQuery(
			`sum by (vendor, operation) (shopstore:api_transport_errors:rate5m)`,
			"{{vendor}} {{operation}}", "A",
		)).
		Unit("reqps").
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.05)).
		ColorScheme(ColorSchemeThresholds())
}

// ListingsRate returns a timeseries panel with listings created per vendor.
func ListingsRate() *timeseries.PanelBuilder {
	return rateSeries("Listings Created", "Listings accepted per second by vendor", TSWidth).
		WithTarget(PromQuery(byVendor(`shopstore:listings_created:rate5m`), VendorLegend, "A")).
		Unit("ops").
		Thresholds(ThresholdsGreenOnly())
}

// ProductsRate returns a timeseries panel with catalog products returned
// per vendor.
func ProductsRate() *timeseries.PanelBuilder {
	return rateSeries("Products Fetched", "Products returned by seller catalog calls", TSWidth).
		WithTarget(PromQuery(byVendor(`shopstore:products_fetched:rate5m`), VendorLegend, "A")).
		Unit("ops").
		Thresholds(ThresholdsGreenOnly())
}
