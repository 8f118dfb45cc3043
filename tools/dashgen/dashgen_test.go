package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/shopstore/tools/dashgen/dashboards"
	"github.com/donaldgifford/shopstore/tools/dashgen/rules"
	"github.com/donaldgifford/shopstore/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "empty output dir", cfg: Config{DashboardEnabled: true}},
		{name: "nothing enabled", cfg: Config{OutputDir: "/tmp"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tt.cfg.Validate())
		})
	}
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "shopstore-overview", *dash.Uid)
	require.NotNil(t, dash.Title)
	assert.Equal(t, "Shopstore Marketplaces", *dash.Title)

	require.NotNil(t, dash.Templating)
	require.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 3)
	inner := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			inner += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 11, inner)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "shopstore-recording-rules", cr.Metadata.Name)

	for _, r := range cr.Rules() {
		assert.False(t, r.IsAlert(), r.Name())
		assert.True(t, strings.HasPrefix(r.Record, "shopstore:"), r.Record)
		assert.True(t, KnownMetrics[r.Record], "recording rule %s missing from KnownMetrics", r.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "shopstore-alerts", cr.Metadata.Name)

	all := cr.Rules()
	require.NotEmpty(t, all)
	for _, r := range all {
		assert.True(t, r.IsAlert(), r.Name())
		assert.NotEmpty(t, r.For, r.Alert)
		assert.Contains(t, []string{"info", "warning", "critical"}, r.Labels["severity"], r.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateRules_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    rules.Rule
		wantErr string
	}{
		{
			name:    "unknown metric",
			rule:    rules.Rule{Record: "shopstore:api_requests:rate5m", Expr: `rate(nope_total[5m])`},
			wantErr: `unknown metric "nope_total"`,
		},
		{
			name:    "bad promql",
			rule:    rules.Rule{Alert: "Broken", Expr: `sum by (`, Labels: map[string]string{"severity": "info"}},
			wantErr: "invalid PromQL",
		},
		{
			name:    "no name",
			rule:    rules.Rule{Expr: `shopstore_logins_total`},
			wantErr: "without record or alert name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cr := rules.PrometheusRule{
				Metadata: rules.Metadata{Name: "test"},
				Spec:     rules.Spec{Groups: []rules.RuleGroup{{Name: "g", Rules: []rules.Rule{tt.rule}}}},
			}
			res := validate.Rules(cr, KnownMetrics)
			require.False(t, res.Ok())
			assert.Contains(t, strings.Join(res.Errors, "\n"), tt.wantErr)
		})
	}
}

func TestValidateMetrics(t *testing.T) {
	t.Parallel()

	names, err := validate.Metrics(
		`sum by (vendor) (rate(shopstore_api_requests_total{status!~"2.."}[5m])) / sum(shopstore:api_requests:rate5m)`,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"shopstore:api_requests:rate5m", "shopstore_api_requests_total"}, names)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()

	written, err := run(cfg, false)
	require.NoError(t, err)
	require.Len(t, written, 3)

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "grafana", "data", "shopstore-overview.json"))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "shopstore-overview", doc["uid"])

	raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, "prometheus", "shopstore-alerts.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), generatedHeader))

	var cr rules.PrometheusRule
	require.NoError(t, yaml.Unmarshal(raw, &cr))
	assert.Equal(t, rules.AlertRules().Rules(), cr.Rules())
}

func TestRun_ValidateOnly(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()

	written, err := run(cfg, true)
	require.NoError(t, err)
	assert.Empty(t, written)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
