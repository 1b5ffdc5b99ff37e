package fleet

import (
	"sync"

	"fleet-monitor/dashboard/internal/domain"
)

// Store is the single owner of the live fleet state: the per-vehicle
// snapshot table, the bounded alert list, the alert-notifications flag,
// and the derived metrics. All mutation goes through its methods; one
// lock serializes mutations so the metrics snapshot is never stale
// relative to the table it was derived from.
type Store struct {
	mu sync.RWMutex

	thresholds domain.Thresholds
	maxAlerts  int

	vehicles      map[string]domain.VehicleState
	alerts        []domain.Alert
	alertsEnabled bool
	metrics       domain.FleetMetrics
}

func NewStore(thresholds domain.Thresholds, maxAlerts int) *Store {
	return &Store{
		thresholds:    thresholds,
		maxAlerts:     maxAlerts,
		vehicles:      make(map[string]domain.VehicleState),
		alertsEnabled: true,
	}
}

// HydrateVehicles replaces the whole vehicle table with the given list.
// Duplicate identifiers are deduplicated last-entry-wins. Metrics are
// recomputed before the call returns; an empty list yields zero metrics.
func (s *Store) HydrateVehicles(vehicles []domain.VehicleState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := make(map[string]domain.VehicleState, len(vehicles))
	for _, v := range vehicles {
		table[v.VehicleID] = v
	}
	s.vehicles = table
	s.metrics = ComputeMetrics(s.vehicles, s.thresholds)
}

// ApplyTelemetryBatch normalizes each sample and upserts it into the
// table in the order given. A later sample always overwrites the stored
// entry regardless of timestamps (arrival order wins). Metrics are
// recomputed once for the whole batch; an empty batch is a no-op.
func (s *Store) ApplyTelemetryBatch(batch []domain.TelemetrySample) {
	if len(batch) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sample := range batch {
		s.vehicles[sample.VehicleID] = domain.FromSample(sample)
	}
	s.metrics = ComputeMetrics(s.vehicles, s.thresholds)
}

// RecordAlert prepends the alert and truncates the list to the retention
// bound. The alert is stored as-is; validation is a boundary concern.
func (s *Store) RecordAlert(alert domain.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append([]domain.Alert{alert}, s.alerts...)
	if len(s.alerts) > s.maxAlerts {
		s.alerts = s.alerts[:s.maxAlerts]
	}
}

// HydrateAlerts replaces the alert list verbatim. If the supplied list
// exceeds the retention bound only the first maxAlerts entries (assumed
// newest-first) are kept.
func (s *Store) HydrateAlerts(alerts []domain.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(alerts) > s.maxAlerts {
		alerts = alerts[:s.maxAlerts]
	}
	s.alerts = append([]domain.Alert(nil), alerts...)
}

// ToggleAlertNotifications flips the flag and returns the new value so
// the caller can forward it to the stream adapter.
func (s *Store) ToggleAlertNotifications() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alertsEnabled = !s.alertsEnabled
	return s.alertsEnabled
}

// Vehicles returns a copy of the current vehicle table.
func (s *Store) Vehicles() map[string]domain.VehicleState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.VehicleState, len(s.vehicles))
	for id, v := range s.vehicles {
		out[id] = v
	}
	return out
}

// Alerts returns a copy of the retained alert list, newest first.
func (s *Store) Alerts() []domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Alert(nil), s.alerts...)
}

func (s *Store) AlertsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alertsEnabled
}

// Metrics returns the snapshot derived by the most recent table mutation.
func (s *Store) Metrics() domain.FleetMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

func (s *Store) Thresholds() domain.Thresholds {
	return s.thresholds
}
