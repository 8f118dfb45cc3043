package rules

// RecordingRules returns the rate pre-aggregations used by the dashboard
// and the alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("shopstore-recording-rules", RuleGroup{
		Name:     "shopstore.api.recording",
		Interval: "30s",
		Rules: []Rule{
			{
				Record: "shopstore:api_requests:rate5m",
				Expr:   `sum by (vendor, operation) (rate(shopstore_api_requests_total[5m]))`,
			},
			{
				Record: "shopstore:api_failures:rate5m",
				Expr:   `sum by (vendor, operation) (rate(shopstore_api_requests_total{status!~"2.."}[5m]))`,
			},
			{
				Record: "shopstore:api_transport_errors:rate5m",
				Expr:   `sum by (vendor, operation) (rate(shopstore_api_errors_total[5m]))`,
			},
			{
				Record: "shopstore:listings_created:rate5m",
				Expr:   `sum by (vendor) (rate(shopstore_listings_created_total[5m]))`,
			},
			{
				Record: "shopstore:products_fetched:rate5m",
				Expr:   `sum by (vendor) (rate(shopstore_products_fetched_total[5m]))`,
			},
		},
	})
}
