package domain

type AlertType string

const (
	AlertOverspeed      AlertType = "OVERSPEED"
	AlertLowFuel        AlertType = "LOW_FUEL"
	AlertEngineOverheat AlertType = "ENGINE_OVERHEAT"

	// AlertTypeAll is the filter sentinel meaning "no filter".
	AlertTypeAll AlertType = "ALL"
)

type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "WARNING"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// TelemetrySample is one point-in-time reading reported by a vehicle.
// Field names match the wire format delivered on the telemetry topic.
type TelemetrySample struct {
	VehicleID  string  `json:"vehicleId"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Speed      float64 `json:"speed"`
	FuelLevel  float64 `json:"fuelLevel"`
	EngineTemp float64 `json:"engineTemp"`
	Timestamp  string  `json:"timestamp"`
}

// VehicleState is the most recently applied sample for one vehicle.
type VehicleState struct {
	VehicleID      string  `json:"vehicleId"`
	LastLatitude   float64 `json:"lastLatitude"`
	LastLongitude  float64 `json:"lastLongitude"`
	LastSpeed      float64 `json:"lastSpeed"`
	LastFuelLevel  float64 `json:"lastFuelLevel"`
	LastEngineTemp float64 `json:"lastEngineTemp"`
	LastUpdated    string  `json:"lastUpdated"`
}

// Alert is an immutable record of a detected abnormal condition.
// ID is server-assigned and absent on stream-delivered alerts.
type Alert struct {
	ID        int64         `json:"id,omitempty"`
	VehicleID string        `json:"vehicleId"`
	AlertType AlertType     `json:"alertType"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp"`
}

// FleetMetrics is derived from the vehicle table, never mutated directly.
type FleetMetrics struct {
	TotalOnline    int     `json:"totalOnline"`
	AverageSpeed   float64 `json:"averageSpeed"`
	OverspeedCount int     `json:"overspeedCount"`
	LowFuelCount   int     `json:"lowFuelCount"`
	OverheatCount  int     `json:"overheatCount"`
}

// Thresholds are fixed at startup and read-only thereafter. The warning
// levels feed the fleet metrics counts; the critical levels only affect
// status classification.
type Thresholds struct {
	SpeedLimit  float64
	FuelWarning float64
	TempWarning float64

	SpeedCritical float64
	FuelCritical  float64
	TempCritical  float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SpeedLimit:    120,
		FuelWarning:   15,
		TempWarning:   100,
		SpeedCritical: 140,
		FuelCritical:  10,
		TempCritical:  110,
	}
}

// FromSample maps a telemetry sample onto the vehicle-state shape.
// Pure field copy: no unit conversion, no validation, no clamping.
func FromSample(s TelemetrySample) VehicleState {
	return VehicleState{
		VehicleID:      s.VehicleID,
		LastLatitude:   s.Latitude,
		LastLongitude:  s.Longitude,
		LastSpeed:      s.Speed,
		LastFuelLevel:  s.FuelLevel,
		LastEngineTemp: s.EngineTemp,
		LastUpdated:    s.Timestamp,
	}
}

type VehicleStatus string

const (
	StatusNormal   VehicleStatus = "normal"
	StatusWarning  VehicleStatus = "warning"
	StatusCritical VehicleStatus = "critical"
)

// StatusOf classifies a vehicle snapshot against the thresholds.
// Critical levels take precedence over warning levels.
func StatusOf(v VehicleState, t Thresholds) VehicleStatus {
	if v.LastSpeed > t.SpeedCritical || v.LastFuelLevel < t.FuelCritical || v.LastEngineTemp > t.TempCritical {
		return StatusCritical
	}
	if v.LastSpeed > t.SpeedLimit || v.LastFuelLevel < t.FuelWarning || v.LastEngineTemp > t.TempWarning {
		return StatusWarning
	}
	return StatusNormal
}
