package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/sale-prospector/tools/dashgen/dashboards"
	"github.com/donaldgifford/sale-prospector/tools/dashgen/rules"
	"github.com/donaldgifford/sale-prospector/tools/dashgen/validate"
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

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	arts, result, err := generate(cfg)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !result.Ok() {
		return fmt.Errorf("validation failed: %w", errors.Join(result.Errors...))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range arts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// generate builds every enabled artifact and validates its PromQL.
func generate(cfg Config) ([]artifact, validate.Result, error) {
	var (
		arts   []artifact
		result validate.Result
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, result, fmt.Errorf("building dashboard: %w", err)
		}
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, result, fmt.Errorf("marshaling dashboard: %w", err)
		}
		result.Merge(validate.DashboardJSON(data, KnownMetrics))
		arts = append(arts, artifact{
			path: filepath.Join("grafana", "data", "spx-overview.json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		for _, r := range []struct {
			file string
			cr   rules.PrometheusRule
		}{
			{file: "spx-recording-rules.yaml", cr: rules.RecordingRules()},
			{file: "spx-alerts.yaml", cr: rules.AlertRules()},
		} {
			result.Merge(validate.Rules(r.cr, KnownMetrics))
			data, err := yaml.Marshal(r.cr)
			if err != nil {
				return nil, result, fmt.Errorf("marshaling %s: %w", r.file, err)
			}
			arts = append(arts, artifact{
				path: filepath.Join("prometheus", r.file),
				data: append([]byte(generatedHeader), data...),
			})
		}
	}

	return arts, result, nil
}
