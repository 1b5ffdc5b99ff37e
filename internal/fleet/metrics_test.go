package fleet

import (
	"testing"

	"fleet-monitor/dashboard/internal/domain"
)

func tableOf(vehicles ...domain.VehicleState) map[string]domain.VehicleState {
	out := make(map[string]domain.VehicleState, len(vehicles))
	for _, v := range vehicles {
		out[v.VehicleID] = v
	}
	return out
}

func TestComputeMetricsEmpty(t *testing.T) {
	got := ComputeMetrics(nil, domain.DefaultThresholds())
	if got != (domain.FleetMetrics{}) {
		t.Errorf("ComputeMetrics(empty) = %+v, want zero value", got)
	}
}

func TestComputeMetricsThresholdBoundaries(t *testing.T) {
	th := domain.DefaultThresholds()

	tests := []struct {
		name    string
		vehicle domain.VehicleState
		want    domain.FleetMetrics
	}{
		{
			name:    "speed exactly at limit is not overspeed",
			vehicle: vehicle("GP 1", 120, 50, 80),
			want:    domain.FleetMetrics{TotalOnline: 1, AverageSpeed: 120},
		},
		{
			name:    "speed just above limit is overspeed",
			vehicle: vehicle("GP 1", 120.1, 50, 80),
			want:    domain.FleetMetrics{TotalOnline: 1, AverageSpeed: 120.1, OverspeedCount: 1},
		},
		{
			name:    "fuel exactly at warning level is not low",
			vehicle: vehicle("GP 1", 50, 15, 80),
			want:    domain.FleetMetrics{TotalOnline: 1, AverageSpeed: 50},
		},
		{
			name:    "fuel just below warning level is low",
			vehicle: vehicle("GP 1", 50, 14.9, 80),
			want:    domain.FleetMetrics{TotalOnline: 1, AverageSpeed: 50, LowFuelCount: 1},
		},
		{
			name:    "temp exactly at warning level is not overheat",
			vehicle: vehicle("GP 1", 50, 50, 100),
			want:    domain.FleetMetrics{TotalOnline: 1, AverageSpeed: 50},
		},
		{
			name:    "temp just above warning level is overheat",
			vehicle: vehicle("GP 1", 50, 50, 100.5),
			want:    domain.FleetMetrics{TotalOnline: 1, AverageSpeed: 50, OverheatCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMetrics(tableOf(tt.vehicle), th)
			if got != tt.want {
				t.Errorf("ComputeMetrics = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeMetricsIndependentCounts(t *testing.T) {
	// One vehicle can contribute to all three counts at once.
	got := ComputeMetrics(tableOf(vehicle("GP 1", 150, 5, 115)), domain.DefaultThresholds())
	if got.OverspeedCount != 1 || got.LowFuelCount != 1 || got.OverheatCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", got.OverspeedCount, got.LowFuelCount, got.OverheatCount)
	}
}

func TestComputeMetricsAverageRounding(t *testing.T) {
	tests := []struct {
		name   string
		speeds []float64
		want   float64
	}{
		{"exact tenth", []float64{100, 130}, 115.0},
		{"half rounds up", []float64{99.25}, 99.3},
		{"below half rounds down", []float64{99.24}, 99.2},
		{"two decimals", []float64{100.33, 100.38}, 100.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicles := make([]domain.VehicleState, len(tt.speeds))
			for i, sp := range tt.speeds {
				vehicles[i] = vehicle(string(rune('A'+i)), sp, 50, 80)
			}
			got := ComputeMetrics(tableOf(vehicles...), domain.DefaultThresholds())
			if got.AverageSpeed != tt.want {
				t.Errorf("AverageSpeed = %v, want %v", got.AverageSpeed, tt.want)
			}
		})
	}
}

func TestComputeMetricsDeterministic(t *testing.T) {
	table := tableOf(
		vehicle("GP 1", 100, 50, 80),
		vehicle("GP 2", 130, 5, 120),
		vehicle("WC 3", 60, 90, 70),
	)
	th := domain.DefaultThresholds()

	first := ComputeMetrics(table, th)
	for i := 0; i < 5; i++ {
		if got := ComputeMetrics(table, th); got != first {
			t.Fatalf("run %d: ComputeMetrics = %+v, want %+v", i, got, first)
		}
	}
}
