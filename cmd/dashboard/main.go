// dashboard aggregates live fleet telemetry into an in-memory state
// store: it hydrates the current fleet over REST, consumes streamed
// telemetry batches and alerts, and serves the aggregated view over
// HTTP for presentation layers.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"fleet-monitor/dashboard/internal/api"
	"fleet-monitor/dashboard/internal/config"
	"fleet-monitor/dashboard/internal/fleet"
	"fleet-monitor/dashboard/internal/server"
	"fleet-monitor/dashboard/internal/stream"
)

// source is what main needs from either stream implementation.
type source interface {
	Run(ctx context.Context)
	SendToggle(enabled bool) error
}

func main() {
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Optional .env for local development.
	godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := fleet.NewStore(cfg.Thresholds, cfg.MaxAlerts)

	var src source
	switch cfg.StreamSource {
	case "redis":
		rs, err := stream.NewRedisSource(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.FleetID, store, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis source init failed")
		}
		defer rs.Close()
		src = rs
	case "websocket":
		src = stream.NewWebSocketSource(
			cfg.WSURL,
			time.Duration(cfg.ReconnectDelayMS)*time.Millisecond,
			time.Duration(cfg.WriteTimeoutMS)*time.Millisecond,
			store,
			logger,
		)
	default:
		logger.Fatal().Str("source", cfg.StreamSource).Msg("unknown stream source")
	}

	client := api.NewClient(cfg.APIBaseURL)
	api.Hydrate(ctx, client, store, cfg.AlertFetchLimit, cfg.HydrateRetries,
		time.Duration(cfg.HydrateRetryDelayMS)*time.Millisecond, logger)

	go src.Run(ctx)

	srv := server.New(store, src, logger)
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: srv.Routes(),
	}

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("state API listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs

	logger.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("http shutdown incomplete")
	}
}
