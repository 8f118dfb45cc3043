package rules

func severity(level string) map[string]string {
	return map[string]string{"severity": level}
}

// AlertRules returns the alerting rules for marketplace API health.
func AlertRules() PrometheusRule {
	return newPrometheusRule("shopstore-alerts", RuleGroup{
		Name: "shopstore.api.alerts",
		Rules: []Rule{
			{
				Alert: "ShopstoreHighFailureRate",
				Expr: `sum by (vendor) (shopstore:api_failures:rate5m)` +
					` / sum by (vendor) (shopstore:api_requests:rate5m) > 0.1`,
				For:    "10m",
				Labels: severity("warning"),
				Annotations: map[string]string{
					"summary":     "{{ $labels.vendor }} API failure rate above 10%",
					"description": "More than 10% of {{ $labels.vendor }} responses were outside 2xx for 10 minutes.",
				},
			},
			{
				Alert:  "ShopstoreAuthRejected",
				Expr:   `sum by (vendor) (rate(shopstore_api_requests_total{status=~"401|403"}[5m])) > 0`,
				For:    "5m",
				Labels: severity("warning"),
				Annotations: map[string]string{
					"summary":     "{{ $labels.vendor }} rejects the access token",
					"description": "{{ $labels.vendor }} keeps answering 401/403; the stored token is likely expired and a new login is required.",
				},
			},
			{
				Alert:  "ShopstoreTransportErrors",
				Expr:   `sum by (vendor) (shopstore:api_transport_errors:rate5m) > 0.05`,
				For:    "5m",
				Labels: severity("critical"),
				Annotations: map[string]string{
					"summary":     "{{ $labels.vendor }} API unreachable",
					"description": "Requests to {{ $labels.vendor }} are failing before a response is received.",
				},
			},
			{
				Alert: "ShopstoreSlowRequests",
				Expr: `histogram_quantile(0.95, sum by (le, vendor)` +
					` (rate(shopstore_api_request_duration_seconds_bucket[5m]))) > 5`,
				For:    "10m",
				Labels: severity("warning"),
				Annotations: map[string]string{
					"summary":     "{{ $labels.vendor }} p95 latency above 5s",
					"description": "The 95th percentile of {{ $labels.vendor }} request duration has been above 5 seconds for 10 minutes.",
				},
			},
			{
				Alert:  "ShopstoreListingsRejected",
				Expr:   `sum by (vendor) (rate(shopstore_api_requests_total{operation="create_product",status=~"4.."}[15m])) > 0`,
				For:    "15m",
				Labels: severity("info"),
				Annotations: map[string]string{
					"summary":     "{{ $labels.vendor }} rejects new listings",
					"description": "Listing creation on {{ $labels.vendor }} keeps returning 4xx; check the payloads being sent.",
				},
			},
		},
	})
}
