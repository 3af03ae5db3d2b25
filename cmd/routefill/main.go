package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"route-distance-enricher/internal/app"
	"route-distance-enricher/internal/config"
	"route-distance-enricher/internal/platform/logging"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the composition root: environment, logger, then a single
// enrichment run. Any error aborts with a non-zero exit and no output file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	path, err := app.Run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("done", zap.String("output", path))
	_ = logger.Sync()
}
