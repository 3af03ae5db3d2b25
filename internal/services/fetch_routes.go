package services

import (
	"context"
	"errors"
	"fmt"
	"route-distance-enricher/internal/domain"
	"route-distance-enricher/internal/ports"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RouteFetcher resolves one route result per request, strictly one request
// at a time and in input order.
type RouteFetcher struct {
	provider ports.RouteProvider
	policy   RetryPolicy
	logger   *zap.Logger
	wait     func(ctx context.Context, d time.Duration) error
}

func NewRouteFetcher(provider ports.RouteProvider, policy RetryPolicy, logger *zap.Logger) (*RouteFetcher, error) {
	if provider == nil {
		return nil, errors.New("new route fetcher: provider must be non-nil")
	}
	if policy.MaxAttempts < 1 {
		return nil, fmt.Errorf("new route fetcher: max attempts must be at least 1, got %d", policy.MaxAttempts)
	}
	if policy.Delay < 0 {
		return nil, fmt.Errorf("new route fetcher: delay must not be negative, got %s", policy.Delay)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RouteFetcher{
		provider: provider,
		policy:   policy,
		logger:   logger,
		wait:     sleepContext,
	}, nil
}

// FetchRoute looks up a single request.
//
// Each attempt either succeeds, fails recoverably, or fails fatally. A
// recoverable failure is followed by one policy delay and another attempt,
// unless it was the last attempt, in which case the request resolves to the
// "Not found" sentinel and no delay is taken. A fatal failure is returned, as
// is any failure once ctx is done.
//
// A request with a blank origin or destination resolves to the sentinel
// without calling the provider.
func (f *RouteFetcher) FetchRoute(ctx context.Context, req domain.RouteRequest) (domain.RouteResult, error) {
	log := f.logger.With(
		zap.Int("row", req.Row+1),
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
	)

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		log.Warn("blank address, skipping lookup")
		return domain.NotFoundResult(), nil
	}

	for attempt := 0; attempt < f.policy.MaxAttempts; attempt++ {
		log.Info("requesting route", zap.Int("attempt", attempt+1))

		res, err := f.provider.GetRoute(ctx, req.Origin, req.Destination)
		if err == nil {
			log.Info("route found",
				zap.String("distance", res.Distance),
				zap.String("duration", res.Duration),
			)
			return res, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.RouteResult{}, fmt.Errorf("fetch route row %d: %w", req.Row+1, ctxErr)
		}

		if !IsRecoverable(err) {
			return domain.RouteResult{}, fmt.Errorf(
				"fetch route row %d %q -> %q: %w",
				req.Row+1, req.Origin, req.Destination, err,
			)
		}

		if attempt == f.policy.MaxAttempts-1 {
			log.Warn("max retries exceeded", zap.Int("attempts", f.policy.MaxAttempts), zap.Error(err))
			return domain.NotFoundResult(), nil
		}

		log.Warn("route lookup failed", zap.Int("attempt", attempt+1), zap.Error(err))
		log.Info("retrying", zap.Duration("after", f.policy.Delay))

		if err := f.wait(ctx, f.policy.Delay); err != nil {
			return domain.RouteResult{}, fmt.Errorf("fetch route row %d: wait for retry: %w", req.Row+1, err)
		}
	}

	// Unreachable while MaxAttempts >= 1.
	return domain.NotFoundResult(), nil
}

// FetchAll returns exactly one result per request, in request order.
// It stops at the first fatal error.
func (f *RouteFetcher) FetchAll(ctx context.Context, reqs []domain.RouteRequest) ([]domain.RouteResult, error) {
	results := make([]domain.RouteResult, 0, len(reqs))
	for _, req := range reqs {
		res, err := f.FetchRoute(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetch all: after %d of %d routes: %w", len(results), len(reqs), err)
		}
		results = append(results, res)
	}

	return results, nil
}
