package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Public Open-Meteo endpoints; no API key required.
const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

type AppConfig struct {
	Port   string
	DBPath string

	// Upstream endpoints for geocoding and forecast lookups.
	GeocodingURL string
	ForecastURL  string

	// HTTPTimeout is the fixed per-call deadline for outbound requests.
	// There is no retry or backoff on top of it.
	HTTPTimeout time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}
	cfg.Port = getenvDefault("PORT", "8080")
	cfg.DBPath = getenvDefault("DB_PATH", "weather.db")
	cfg.GeocodingURL = getenvDefault("GEOCODING_URL", defaultGeocodingURL)
	cfg.ForecastURL = getenvDefault("FORECAST_URL", defaultForecastURL)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "5s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
