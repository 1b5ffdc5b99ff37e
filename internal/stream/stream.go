// Package stream delivers telemetry batches and alert events from the
// backend's publish-subscribe transport to the fleet state store, and
// carries the one outbound command (the alert-notifications toggle).
package stream

import (
	"encoding/json"

	"fleet-monitor/dashboard/internal/domain"
	"fleet-monitor/dashboard/internal/metrics"
)

// Handler receives decoded stream events. *fleet.Store satisfies it.
type Handler interface {
	ApplyTelemetryBatch(batch []domain.TelemetrySample)
	RecordAlert(alert domain.Alert)
}

const (
	TopicVehicles = "/topic/vehicles"
	TopicAlerts   = "/topic/alerts"

	ToggleDestination = "/app/toggleAlerts"
)

// togglePayload is the body of the outbound toggle command.
type togglePayload struct {
	Enabled bool `json:"enabled"`
}

func decodeBatch(data []byte, h Handler) bool {
	var batch []domain.TelemetrySample
	if err := json.Unmarshal(data, &batch); err != nil {
		metrics.DecodeFailures.Add(1)
		return false
	}
	metrics.BatchesReceived.Add(1)
	metrics.SamplesApplied.Add(int64(len(batch)))
	h.ApplyTelemetryBatch(batch)
	return true
}

func decodeAlert(data []byte, h Handler) bool {
	var alert domain.Alert
	if err := json.Unmarshal(data, &alert); err != nil {
		metrics.DecodeFailures.Add(1)
		return false
	}
	metrics.AlertsReceived.Add(1)
	h.RecordAlert(alert)
	return true
}
