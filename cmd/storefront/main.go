package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mohteeflair/storefront/internal/client/cli"
	"github.com/mohteeflair/storefront/internal/config"
	"github.com/mohteeflair/storefront/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewText(os.Stderr, level)

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
