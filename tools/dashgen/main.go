// Command dashgen generates the Grafana dashboard and Prometheus rules for
// mws-sync.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/mws-toolkit/tools/dashgen/dashboards"
	"github.com/donaldgifford/mws-toolkit/tools/dashgen/rules"
	"github.com/donaldgifford/mws-toolkit/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

// artifact is one generated file relative to the output directory.
type artifact struct {
	path string
	data []byte
}

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

func run(cfg Config, validateOnly bool) error {
	artifacts, err := build(cfg)
	if err != nil {
		return err
	}
	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range artifacts {
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

// build renders and validates every enabled artifact.
func build(cfg Config) ([]artifact, error) {
	var out []artifact

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, fmt.Errorf("building dashboard: %w", err)
		}
		if res := validate.Dashboard(dash, KnownMetrics); !res.Ok() {
			return nil, validationError("dashboard", res)
		}
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding dashboard: %w", err)
		}
		out = append(out, artifact{
			path: filepath.Join("grafana", "data", dashboards.UID+".json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules()} {
			if res := validate.Rules(cr, KnownMetrics); !res.Ok() {
				return nil, validationError(cr.Metadata.Name, res)
			}
			data, err := yaml.Marshal(cr)
			if err != nil {
				return nil, fmt.Errorf("encoding %s: %w", cr.Metadata.Name, err)
			}
			out = append(out, artifact{
				path: filepath.Join("prometheus", cr.Metadata.Name+".yaml"),
				data: append([]byte(generatedHeader), data...),
			})
		}
	}
	return out, nil
}

func validationError(what string, res validate.Result) error {
	return errors.New(what + " failed validation:\n  " + strings.Join(res.Errors, "\n  "))
}
