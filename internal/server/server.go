// Package server exposes the aggregated fleet state over HTTP for
// presentation layers: read-only JSON views of the store plus the
// alert-notifications toggle.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"fleet-monitor/dashboard/internal/domain"
	"fleet-monitor/dashboard/internal/fleet"
	"fleet-monitor/dashboard/internal/metrics"
)

// Toggler forwards the flag to the stream transport. Both stream
// sources satisfy it.
type Toggler interface {
	SendToggle(enabled bool) error
}

type Server struct {
	store   *fleet.Store
	toggler Toggler
	logger  zerolog.Logger
}

func New(store *fleet.Store, toggler Toggler, logger zerolog.Logger) *Server {
	return &Server{
		store:   store,
		toggler: toggler,
		logger:  logger.With().Str("component", "server").Logger(),
	}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/vehicles", s.handleVehicles)
	mux.HandleFunc("GET /api/alerts", s.handleAlerts)
	mux.HandleFunc("GET /api/fleet/metrics", s.handleFleetMetrics)
	mux.HandleFunc("POST /api/alerts/toggle", s.handleToggle)
	mux.HandleFunc("GET /metrics", metrics.HandleMetrics)
	return mux
}

// handleVehicles returns every current vehicle snapshot as a list.
func (s *Server) handleVehicles(w http.ResponseWriter, r *http.Request) {
	table := s.store.Vehicles()
	out := make([]domain.VehicleState, 0, len(table))
	for _, v := range table {
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, out)
}

// handleAlerts returns the retained alert feed, newest first, optionally
// filtered with ?type=OVERSPEED|LOW_FUEL|ENGINE_OVERHEAT.
func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	selected := domain.AlertTypeAll
	if t := r.URL.Query().Get("type"); t != "" {
		selected = domain.AlertType(t)
	}
	writeJSON(w, http.StatusOK, fleet.FilterAlerts(s.store.Alerts(), selected))
}

func (s *Server) handleFleetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Metrics())
}

// handleToggle flips the store flag and forwards the new value to the
// stream transport. The forward is fire-and-forget.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	enabled := s.store.ToggleAlertNotifications()
	if err := s.toggler.SendToggle(enabled); err != nil {
		s.logger.Warn().Err(err).Msg("toggle forward failed")
	}
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": enabled})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers already sent; nothing useful to do.
		return
	}
}
