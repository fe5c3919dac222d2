package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/internal/cli"
	"github.com/DjordjeVuckovic/rpn-calc/internal/memory"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/logging"
)

func main() {
	expression := flag.String("e", "", "Expression to evaluate; starts a REPL on stdin when empty")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()

	logging.Setup(*logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := cli.NewSession(calculator.New(), memory.NewRegister())

	if *expression != "" {
		fmt.Println(session.Handle(ctx, *expression))
		return
	}

	if err := session.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		slog.Error("REPL stopped", "error", err)
		os.Exit(1)
	}
}
