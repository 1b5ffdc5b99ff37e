package config

import (
	"os"
	"strconv"

	"fleet-monitor/dashboard/internal/domain"
)

type Config struct {
	// HTTP
	HTTPPort string

	// Stream source: "websocket" or "redis"
	StreamSource string

	// WebSocket
	WSURL            string
	ReconnectDelayMS int
	WriteTimeoutMS   int

	// Redis pub/sub
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	FleetID       string

	// Bulk fetch
	APIBaseURL          string
	AlertFetchLimit     int
	HydrateRetries      int
	HydrateRetryDelayMS int

	// Alert retention
	MaxAlerts int

	Thresholds domain.Thresholds
}

func Load() *Config {
	t := domain.DefaultThresholds()
	t.SpeedLimit = getEnvFloat("SPEED_LIMIT", t.SpeedLimit)
	t.FuelWarning = getEnvFloat("FUEL_WARNING", t.FuelWarning)
	t.TempWarning = getEnvFloat("TEMP_WARNING", t.TempWarning)

	return &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8002"),
		StreamSource:        getEnv("STREAM_SOURCE", "websocket"),
		WSURL:               getEnv("WS_URL", "ws://localhost:8080/ws"),
		ReconnectDelayMS:    getEnvInt("WS_RECONNECT_DELAY_MS", 3000),
		WriteTimeoutMS:      getEnvInt("WS_WRITE_TIMEOUT_MS", 5000),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		FleetID:             getEnv("FLEET_ID", "default"),
		APIBaseURL:          getEnv("API_BASE_URL", "http://localhost:8080/api"),
		AlertFetchLimit:     getEnvInt("ALERT_FETCH_LIMIT", 100),
		HydrateRetries:      getEnvInt("HYDRATE_RETRIES", 5),
		HydrateRetryDelayMS: getEnvInt("HYDRATE_RETRY_DELAY_MS", 2000),
		MaxAlerts:           getEnvInt("MAX_ALERTS_DISPLAY", 200),
		Thresholds:          t,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
