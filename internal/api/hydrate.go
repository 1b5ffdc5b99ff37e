package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"fleet-monitor/dashboard/internal/domain"
	"fleet-monitor/dashboard/internal/fleet"
	"fleet-monitor/dashboard/internal/metrics"
)

// Hydrate performs the one-time bulk load of vehicles and alerts into
// the store, retrying each fetch with a fixed delay. Hydration failure
// is not fatal: the store stays at its zero-valued defaults and streamed
// updates fill it in as they arrive.
func Hydrate(ctx context.Context, c *Client, store *fleet.Store, alertLimit, retries int, delay time.Duration, logger zerolog.Logger) {
	vehicles, err := withRetries(ctx, retries, delay, func() ([]domain.VehicleState, error) {
		return c.FetchVehicles(ctx)
	})
	if err != nil {
		logger.Warn().Err(err).Msg("vehicle hydration failed, starting empty")
	} else {
		store.HydrateVehicles(vehicles)
		logger.Info().Int("vehicles", len(vehicles)).Msg("vehicle table hydrated")
	}

	alerts, err := withRetries(ctx, retries, delay, func() ([]domain.Alert, error) {
		return c.FetchAlerts(ctx, domain.AlertTypeAll, alertLimit)
	})
	if err != nil {
		logger.Warn().Err(err).Msg("alert hydration failed, starting empty")
		return
	}
	store.HydrateAlerts(alerts)
	logger.Info().Int("alerts", len(alerts)).Msg("alert list hydrated")
}

func withRetries[T any](ctx context.Context, retries int, delay time.Duration, fetch func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			metrics.HydrateRetries.Add(1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}

		out, err := fetch()
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return zero, lastErr
}
