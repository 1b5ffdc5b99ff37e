package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"fleet-monitor/dashboard/internal/metrics"
)

// RedisSource consumes the ingestion tier's pub/sub channels directly
// instead of going through the websocket bridge. Channel naming follows
// the ingestion side: fleet:<id>:telemetry and fleet:<id>:alerts.
type RedisSource struct {
	client  *redis.Client
	fleetID string
	handler Handler
	logger  zerolog.Logger
}

func NewRedisSource(ctx context.Context, addr, password string, db int, fleetID string, h Handler, logger zerolog.Logger) (*RedisSource, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisSource{
		client:  client,
		fleetID: fleetID,
		handler: h,
		logger:  logger.With().Str("component", "redis-source").Logger(),
	}, nil
}

func (s *RedisSource) telemetryChannel() string {
	return fmt.Sprintf("fleet:%s:telemetry", s.fleetID)
}

func (s *RedisSource) alertChannel() string {
	return fmt.Sprintf("fleet:%s:alerts", s.fleetID)
}

func (s *RedisSource) commandChannel() string {
	return fmt.Sprintf("fleet:%s:commands", s.fleetID)
}

// Run blocks consuming both channels until ctx is cancelled. The client
// handles reconnection and resubscription internally.
func (s *RedisSource) Run(ctx context.Context) {
	sub := s.client.Subscribe(ctx, s.telemetryChannel(), s.alertChannel())
	defer sub.Close()

	s.logger.Info().
		Str("telemetry", s.telemetryChannel()).
		Str("alerts", s.alertChannel()).
		Msg("subscribed")

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.dispatch(msg)

		case <-ctx.Done():
			return
		}
	}
}

func (s *RedisSource) dispatch(msg *redis.Message) {
	payload := []byte(msg.Payload)
	switch msg.Channel {
	case s.telemetryChannel():
		decodeBatch(payload, s.handler)
	case s.alertChannel():
		decodeAlert(payload, s.handler)
	}
}

// SendToggle publishes the flag to the fleet command channel.
func (s *RedisSource) SendToggle(enabled bool) error {
	payload, err := json.Marshal(togglePayload{Enabled: enabled})
	if err != nil {
		return err
	}
	if err := s.client.Publish(context.Background(), s.commandChannel(), payload).Err(); err != nil {
		return fmt.Errorf("publish toggle failed: %w", err)
	}
	metrics.TogglesSent.Add(1)
	return nil
}

func (s *RedisSource) Close() error {
	return s.client.Close()
}
