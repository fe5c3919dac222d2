// Package main RPN Calc API
// @title RPN Calc API
// @version 1.0
// @description Arithmetic expression engine: tokenize, convert to postfix and evaluate
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/rpn-calc/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/rpn-calc/internal/api/server"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/internal/memory"
	"github.com/DjordjeVuckovic/rpn-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/logging"
	pkgserver "github.com/DjordjeVuckovic/rpn-calc/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	if err := run(); err != nil {
		slog.Error("RPN Calc API stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		return fmt.Errorf("load app configuration: %w", err)
	}
	logging.Setup(cfg.LogLevel)

	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		return fmt.Errorf("load server config: %w", err)
	}

	// The store outlives the server context so in-flight writes finish during shutdown.
	store, err := factory.NewStore(context.Background(), cfg.StorageConfig)
	if err != nil {
		return fmt.Errorf("create %s history store: %w", cfg.StorageConfig.Type, err)
	}
	defer store.Close()
	slog.Info("History store ready", "type", cfg.StorageConfig.Type)

	s := apiserver.New(sCfg, pkgserver.NewPingHealthChecker(store)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "RPN Calc API is running")
	})

	calc := calculator.New(calculator.WithHistory(store))
	router.NewCalcRouter(s.Echo, calc, store, memory.NewRegister()).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	return s.Start()
}
