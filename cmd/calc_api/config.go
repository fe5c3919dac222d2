package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcAPIConfig struct {
	LogLevel      string
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*CalcAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &CalcAPIConfig{
		LogLevel:      os.Getenv("LOG_LEVEL"),
		StorageConfig: *storageCfg,
	}, nil
}
