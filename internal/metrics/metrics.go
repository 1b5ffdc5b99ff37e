package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

var (
	BatchesReceived  atomic.Int64
	SamplesApplied   atomic.Int64
	AlertsReceived   atomic.Int64
	StreamReconnects atomic.Int64
	DecodeFailures   atomic.Int64
	HydrateRetries   atomic.Int64
	TogglesSent      atomic.Int64
)

func HandleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "dashboard_batches_received_total %d\n", BatchesReceived.Load())
	fmt.Fprintf(w, "dashboard_samples_applied_total %d\n", SamplesApplied.Load())
	fmt.Fprintf(w, "dashboard_alerts_received_total %d\n", AlertsReceived.Load())
	fmt.Fprintf(w, "dashboard_stream_reconnects_total %d\n", StreamReconnects.Load())
	fmt.Fprintf(w, "dashboard_decode_failures_total %d\n", DecodeFailures.Load())
	fmt.Fprintf(w, "dashboard_hydrate_retries_total %d\n", HydrateRetries.Load())
	fmt.Fprintf(w, "dashboard_toggles_sent_total %d\n", TogglesSent.Load())
}
