package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/myflix/myflix-client/internal/client/cli"
	"github.com/myflix/myflix-client/internal/client/config"
	"github.com/myflix/myflix-client/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn(ctx, "closing session database", "error", err)
		}
	}()

	app.Run(ctx)
}
