package fleet

import (
	"math"

	"fleet-monitor/dashboard/internal/domain"
)

// ComputeMetrics derives fleet-wide metrics from the full vehicle table
// in a single pass. Pure: the result depends only on the table contents.
func ComputeMetrics(vehicles map[string]domain.VehicleState, t domain.Thresholds) domain.FleetMetrics {
	total := len(vehicles)
	if total == 0 {
		return domain.FleetMetrics{}
	}

	var speedSum float64
	var overspeed, lowFuel, overheat int
	for _, v := range vehicles {
		speedSum += v.LastSpeed
		if v.LastSpeed > t.SpeedLimit {
			overspeed++
		}
		if v.LastFuelLevel < t.FuelWarning {
			lowFuel++
		}
		if v.LastEngineTemp > t.TempWarning {
			overheat++
		}
	}

	return domain.FleetMetrics{
		TotalOnline:    total,
		AverageSpeed:   roundTenth(speedSum / float64(total)),
		OverspeedCount: overspeed,
		LowFuelCount:   lowFuel,
		OverheatCount:  overheat,
	}
}

// roundTenth rounds half-up on the tenths digit.
func roundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
