package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/report"
	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/runner"
	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/suite"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/logging"
)

func main() {
	cfg := parseFlags()
	logging.Setup(cfg.LogLevel)

	failed, err := run(cfg)
	if err != nil {
		slog.Error("Bench failed", "error", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(2)
	}
}

func run(cfg cliConfig) (int, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		return 0, err
	}

	runCfg := runner.DefaultConfig()
	if s.Runs.Warmup > 0 {
		runCfg.WarmupRuns = s.Runs.Warmup
	}
	if s.Runs.Iterations > 0 {
		runCfg.Runs = s.Runs.Iterations
	}
	if cfg.Warmup > 0 {
		runCfg.WarmupRuns = cfg.Warmup
	}
	if cfg.Runs > 0 {
		runCfg.Runs = cfg.Runs
	}

	slog.Info("Running suite", "name", s.Name, "cases", len(s.Cases), "warmup", runCfg.WarmupRuns, "runs", runCfg.Runs)

	res, err := runner.New(runCfg, calculator.New()).Run(ctx, s)
	if err != nil {
		return 0, err
	}

	rep := report.New(cfg.SuitePath, runCfg, res)
	if cfg.Format == "json" {
		err = report.WriteJSON(rep, os.Stdout)
	} else {
		err = report.WriteTable(rep, os.Stdout)
	}
	if err != nil {
		return 0, err
	}

	if cfg.Output != "" {
		if err := report.WriteJSONFile(rep, cfg.Output); err != nil {
			return 0, err
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	return res.Failed, nil
}
