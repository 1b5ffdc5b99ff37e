package fleet

import "fleet-monitor/dashboard/internal/domain"

// FilterAlerts returns the subsequence of alerts whose type equals the
// selection, preserving newest-first order. The AlertTypeAll sentinel
// returns the input unchanged.
func FilterAlerts(alerts []domain.Alert, t domain.AlertType) []domain.Alert {
	if t == domain.AlertTypeAll {
		return alerts
	}

	out := make([]domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.AlertType == t {
			out = append(out, a)
		}
	}
	return out
}
