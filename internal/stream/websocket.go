package stream

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"fleet-monitor/dashboard/internal/metrics"
)

// envelope frames one server-pushed message with its topic.
type envelope struct {
	Topic string          `json:"topic"`
	Body  json.RawMessage `json:"body"`
}

// command frames one client-published message with its destination.
type command struct {
	Destination string      `json:"destination"`
	Body        interface{} `json:"body"`
}

// WebSocketSource maintains a persistent connection to the dashboard
// websocket endpoint, dispatching telemetry and alert messages to the
// handler and reconnecting after a fixed delay on any failure.
type WebSocketSource struct {
	url            string
	reconnectDelay time.Duration
	writeTimeout   time.Duration
	handler        Handler
	logger         zerolog.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWebSocketSource(url string, reconnectDelay, writeTimeout time.Duration, h Handler, logger zerolog.Logger) *WebSocketSource {
	return &WebSocketSource{
		url:            url,
		reconnectDelay: reconnectDelay,
		writeTimeout:   writeTimeout,
		handler:        h,
		logger:         logger.With().Str("component", "ws-source").Logger(),
	}
}

// Run blocks until ctx is cancelled, reconnecting on every failure.
func (s *WebSocketSource) Run(ctx context.Context) {
	for {
		if err := s.connectAndRead(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("stream connection lost")
		}
		if ctx.Err() != nil {
			return
		}

		metrics.StreamReconnects.Add(1)
		select {
		case <-time.After(s.reconnectDelay):
		case <-ctx.Done():
			return
		}
	}
}

func (s *WebSocketSource) connectAndRead(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.logger.Info().Str("url", s.url).Msg("stream connected")

	// Unblock ReadMessage when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	defer func() {
		s.mu.Lock()
		s.conn = nil
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		s.dispatch(data)
	}
}

func (s *WebSocketSource) dispatch(data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		metrics.DecodeFailures.Add(1)
		s.logger.Debug().Err(err).Msg("undecodable stream frame")
		return
	}

	switch env.Topic {
	case TopicVehicles:
		decodeBatch(env.Body, s.handler)
	case TopicAlerts:
		decodeAlert(env.Body, s.handler)
	default:
		s.logger.Debug().Str("topic", env.Topic).Msg("frame for unknown topic")
	}
}

// SendToggle publishes the alert-notifications flag to the backend.
// Fire-and-forget: if the stream is down the command is dropped.
func (s *WebSocketSource) SendToggle(enabled bool) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()

	if conn == nil {
		s.logger.Warn().Msg("toggle dropped, stream not connected")
		return nil
	}

	msg := command{
		Destination: ToggleDestination,
		Body:        togglePayload{Enabled: enabled},
	}
	conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	if err := conn.WriteJSON(msg); err != nil {
		return err
	}
	metrics.TogglesSent.Add(1)
	return nil
}
