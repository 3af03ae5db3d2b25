package app

import (
	"context"
	"errors"
	"fmt"
	"route-distance-enricher/internal/adapters/credentials"
	"route-distance-enricher/internal/adapters/distance"
	"route-distance-enricher/internal/adapters/spreadsheet"
	"route-distance-enricher/internal/config"
	"route-distance-enricher/internal/services"
	"time"

	"go.uber.org/zap"
)

// Run executes one enrichment pass: load the sheet, load the API key, look up
// every route in order, then write the augmented table to a new timestamped
// workbook. It returns the output path.
//
// Any structural failure, or a lookup error that is not recoverable, aborts
// the run before an output file is created.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) (string, error) {
	return run(ctx, cfg, logger, time.Now)
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, now func() time.Time) (string, error) {
	if cfg == nil {
		return "", errors.New("run: config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sheet, err := spreadsheet.LoadRouteSheet(logger, cfg.InputPath, cfg.SheetName)
	if err != nil {
		return "", fmt.Errorf("run: %w", err)
	}
	logger.Info("routes loaded",
		zap.String("input", cfg.InputPath),
		zap.String("sheet", cfg.SheetName),
		zap.Int("rows", len(sheet.Requests)),
	)

	apiKey, err := credentials.LoadAPIKey(cfg.CredentialPath)
	if err != nil {
		return "", fmt.Errorf("run: %w", err)
	}

	provider, err := distance.NewGoogleRouteProvider(apiKey,
		distance.WithBaseURL(cfg.Routing.BaseURL),
		distance.WithTimeout(cfg.Routing.RequestTimeout),
		distance.WithLogger(logger),
	)
	if err != nil {
		return "", fmt.Errorf("run: %w", err)
	}

	fetcher, err := services.NewRouteFetcher(provider, services.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		Delay:       cfg.Retry.Delay,
	}, logger)
	if err != nil {
		return "", fmt.Errorf("run: %w", err)
	}

	results, err := fetcher.FetchAll(ctx, sheet.Requests)
	if err != nil {
		return "", fmt.Errorf("run: %w", err)
	}

	table, err := sheet.WithResults(results)
	if err != nil {
		return "", fmt.Errorf("run: %w", err)
	}

	path, err := spreadsheet.WriteRouteSheet(logger, table, cfg.OutputDir, now())
	if err != nil {
		return "", fmt.Errorf("run: %w", err)
	}

	found := 0
	for _, r := range results {
		if r.Found() {
			found++
		}
	}
	logger.Info("routes written",
		zap.String("output", path),
		zap.Int("rows", len(results)),
		zap.Int("found", found),
		zap.Int("not_found", len(results)-found),
	)

	return path, nil
}
