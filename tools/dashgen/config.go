package main

import "errors"

// KnownMetrics is the set of metric names exported by the shopstore
// adapters plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// Marketplace API metrics.
	"shopstore_api_requests_total":                  true,
	"shopstore_api_request_duration_seconds":        true,
	"shopstore_api_request_duration_seconds_bucket": true,
	"shopstore_api_errors_total":                    true,

	// Adapter metrics.
	"shopstore_logins_total":           true,
	"shopstore_listings_created_total": true,
	"shopstore_products_fetched_total": true,

	// Recording rules.
	"shopstore:api_requests:rate5m":         true,
	"shopstore:api_failures:rate5m":         true,
	"shopstore:api_transport_errors:rate5m": true,
	"shopstore:listings_created:rate5m":     true,
	"shopstore:products_fetched:rate5m":     true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
