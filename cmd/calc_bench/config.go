package main

import (
	"flag"
	"fmt"
)

type cliConfig struct {
	SuitePath string
	Warmup    int
	Runs      int
	Output    string
	Format    string
	LogLevel  string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/suites/basic.yaml", "Path to expression suite YAML")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs per case (overrides the suite when > 0)")
	flag.IntVar(&cfg.Runs, "runs", 0, "Number of measured runs per case (overrides the suite when > 0)")
	flag.StringVar(&cfg.Output, "output", "", "Write the JSON report to this path")
	flag.StringVar(&cfg.Format, "format", "table", "Stdout format: table or json")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	if c.Warmup < 0 || c.Runs < 0 {
		return fmt.Errorf("warmup and runs must not be negative")
	}
	switch c.Format {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
}
