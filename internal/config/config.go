package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Upstream provider
	UpstreamBaseURL string        // env: UPSTREAM_BASE_URL
	UpstreamTimeout time.Duration // env: UPSTREAM_TIMEOUT, default 5s

	// Rate limiting
	RateLimitMax    int           // env: RATE_LIMIT_MAX, default 500
	RateLimitWindow time.Duration // env: RATE_LIMIT_WINDOW, default 60s

	// Puzzle day boundary
	PuzzleTimezone string // env: PUZZLE_TIMEZONE, the provider's day-boundary zone

	// CORS
	CORSOrigins string // Comma-separated allowed origins; empty means any origin

	// Site Branding
	SiteTitle string // env: SITE_TITLE, default: "Wordle Answer"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/wordlecache?sslmode=disable"),

		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "https://www.nytimes.com/svc/wordle/v2"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 5*time.Second),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 500),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		PuzzleTimezone: getEnv("PUZZLE_TIMEZONE", "America/New_York"),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		SiteTitle: getEnv("SITE_TITLE", "Wordle Answer"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
