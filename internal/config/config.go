// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/Accelerator586/SunnyWeather/internal/logger"
)

// Config holds all application settings, populated from environment variables.
type Config struct {
	// Weather API access.
	Token       string
	BaseURL     string
	HTTPTimeout time.Duration

	// Saved place persistence. MongoURI selects the mongo store when set,
	// otherwise the file store at PlaceFile is used.
	PlaceFile     string
	MongoURI      string
	MongoDatabase string

	// HTTP API surface.
	Port       string
	CORSOrigin string
}

// Load reads configuration from a .env file (if present) and the
// environment, applying defaults where unset.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info(fmt.Sprintf("no .env file loaded: %v", err))
	}

	timeoutStr := envOrDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid HTTP_TIMEOUT")
	}

	placeFile := os.Getenv("PLACE_FILE")
	if placeFile == "" {
		placeFile, err = defaultPlaceFile()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default place file: %w", err)
		}
	}

	cfg := &Config{
		Token:         os.Getenv("CAIYUN_TOKEN"),
		BaseURL:       envOrDefault("CAIYUN_BASE_URL", "https://api.caiyunapp.com"),
		HTTPTimeout:   timeout,
		PlaceFile:     placeFile,
		MongoURI:      os.Getenv("DB_CONN_STRING"),
		MongoDatabase: envOrDefault("DB_NAME", "sunnyweather"),
		Port:          envOrDefault("PORT", "8080"),
		CORSOrigin:    envOrDefault("ORIGIN", "*"),
	}

	if cfg.Token == "" {
		return nil, errors.New("CAIYUN_TOKEN is required")
	}

	return cfg, nil
}

func defaultPlaceFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sunnyweather", "place.json"), nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
