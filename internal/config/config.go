// Package config reads the server's environment into a Config.
// Only cmd/server imports it; everything below main gets plain values.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/ahmednasr/trending-hub/server/internal/github"
	"github.com/ahmednasr/trending-hub/server/internal/service"
	"github.com/ahmednasr/trending-hub/server/internal/trending"
)

// Config is the flat set of runtime options.
type Config struct {
	// Network
	Port        string
	CORSOrigins string

	// External services
	TrendingURL  string
	GitHubAPIURL string

	// Refresh
	RefreshSchedule string // five-field cron, evaluated in local time
	RefreshTimeout  time.Duration

	// Outbound timeouts
	FetchTimeout    time.Duration
	UpstreamTimeout time.Duration

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	LogLevel string
}

// Load parses the environment (and an optional .env file) into Config.
// Every option has a default; nothing is required.
func Load() Config {
	// A missing .env is fine.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "3000"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		TrendingURL:     getEnv("TRENDING_URL", trending.DefaultBaseURL),
		GitHubAPIURL:    getEnv("GITHUB_API_URL", github.DefaultBaseURL),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", service.DefaultRefreshSchedule),
		RefreshTimeout:  getDuration("REFRESH_TIMEOUT_SEC", 60),
		FetchTimeout:    getDuration("FETCH_TIMEOUT_SEC", 15),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT_SEC", 10),
		ReadTimeout:     getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout:    getDuration("WRITE_TIMEOUT_SEC", 30),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv returns the value of key, or defaultVal when unset or empty.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads a positive integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			return time.Duration(sec) * time.Second
		}
		log.Warnf("invalid %s=%q; using default %ds", key, v, defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}
