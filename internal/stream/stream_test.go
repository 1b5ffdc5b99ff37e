package stream

import (
	"testing"

	"fleet-monitor/dashboard/internal/domain"
)

type recordingHandler struct {
	batches [][]domain.TelemetrySample
	alerts  []domain.Alert
}

func (h *recordingHandler) ApplyTelemetryBatch(batch []domain.TelemetrySample) {
	h.batches = append(h.batches, batch)
}

func (h *recordingHandler) RecordAlert(alert domain.Alert) {
	h.alerts = append(h.alerts, alert)
}

func TestDecodeBatch(t *testing.T) {
	h := &recordingHandler{}
	payload := []byte(`[
		{"vehicleId":"GP 1","latitude":-26.2,"longitude":28.04,"speed":88.5,"fuelLevel":42,"engineTemp":95,"timestamp":"2026-09-01T10:00:00Z"},
		{"vehicleId":"GP 2","latitude":-26.1,"longitude":28.00,"speed":130,"fuelLevel":5,"engineTemp":120,"timestamp":"2026-09-01T10:00:01Z"}
	]`)

	if !decodeBatch(payload, h) {
		t.Fatal("decodeBatch returned false for valid payload")
	}
	if len(h.batches) != 1 {
		t.Fatalf("batches = %d, want 1", len(h.batches))
	}
	batch := h.batches[0]
	if len(batch) != 2 {
		t.Fatalf("batch size = %d, want 2", len(batch))
	}
	if batch[0].VehicleID != "GP 1" || batch[0].Speed != 88.5 {
		t.Errorf("first sample = %+v", batch[0])
	}
	if batch[1].VehicleID != "GP 2" || batch[1].EngineTemp != 120 {
		t.Errorf("second sample = %+v", batch[1])
	}
}

func TestDecodeBatchMalformed(t *testing.T) {
	h := &recordingHandler{}
	if decodeBatch([]byte(`{"not":"a batch"}`), h) {
		t.Error("decodeBatch should fail on a non-array payload")
	}
	if len(h.batches) != 0 {
		t.Error("handler should not be invoked for malformed payloads")
	}
}

func TestDecodeAlert(t *testing.T) {
	h := &recordingHandler{}
	payload := []byte(`{"id":7,"vehicleId":"GP 2","alertType":"LOW_FUEL","severity":"CRITICAL","message":"Vehicle GP 2 fuel low at 5.0%","timestamp":"2026-09-01T10:00:01Z"}`)

	if !decodeAlert(payload, h) {
		t.Fatal("decodeAlert returned false for valid payload")
	}
	if len(h.alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(h.alerts))
	}
	a := h.alerts[0]
	if a.ID != 7 || a.AlertType != domain.AlertLowFuel || a.Severity != domain.SeverityCritical {
		t.Errorf("alert = %+v", a)
	}
}

func TestDecodeAlertMalformed(t *testing.T) {
	h := &recordingHandler{}
	if decodeAlert([]byte(`not json`), h) {
		t.Error("decodeAlert should fail on garbage")
	}
	if len(h.alerts) != 0 {
		t.Error("handler should not be invoked for malformed payloads")
	}
}
