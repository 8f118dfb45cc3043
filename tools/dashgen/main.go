// Command dashgen generates the Grafana dashboard and Prometheus rules for
// the shopstore marketplace API metrics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/shopstore/tools/dashgen/dashboards"
	"github.com/donaldgifford/shopstore/tools/dashgen/rules"
	"github.com/donaldgifford/shopstore/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	written, err := run(cfg, *validateOnly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *validateOnly {
		fmt.Println("validation passed")
		return
	}
	for _, p := range written {
		fmt.Printf("dashgen: wrote %s\n", p)
	}
}

// artifact is one generated file relative to the output directory.
type artifact struct {
	path string
	data []byte
}

// run builds and validates every enabled artifact and, unless
// validateOnly is set, writes them. It returns the written paths.
func run(cfg Config, validateOnly bool) ([]string, error) {
	artifacts, err := build(cfg)
	if err != nil {
		return nil, err
	}
	if validateOnly {
		return nil, nil
	}

	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o644); err != nil { //nolint:gosec // generated config is world-readable
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func build(cfg Config) ([]artifact, error) {
	var out []artifact

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, fmt.Errorf("building dashboard: %w", err)
		}
		if res := validate.Dashboard(dash, KnownMetrics); !res.Ok() {
			return nil, fmt.Errorf("dashboard validation: %s", strings.Join(res.Errors, "; "))
		}
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding dashboard: %w", err)
		}
		out = append(out, artifact{
			path: filepath.Join("grafana", "data", "shopstore-overview.json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		for _, rf := range []struct {
			name string
			cr   rules.PrometheusRule
		}{
			{"shopstore-recording-rules.yaml", rules.RecordingRules()},
			{"shopstore-alerts.yaml", rules.AlertRules()},
		} {
			name, cr := rf.name, rf.cr
			if res := validate.Rules(cr, KnownMetrics); !res.Ok() {
				return nil, fmt.Errorf("%s validation: %s", name, strings.Join(res.Errors, "; "))
			}
			data, err := yaml.Marshal(cr)
			if err != nil {
				return nil, fmt.Errorf("encoding %s: %w", name, err)
			}
			out = append(out, artifact{
				path: filepath.Join("prometheus", name),
				data: append([]byte(generatedHeader), data...),
			})
		}
	}

	return out, nil
}
