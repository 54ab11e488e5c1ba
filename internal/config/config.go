// Package config reads the gallery server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/acmgallery/gallery/pkg/gallery"
	"github.com/acmgallery/gallery/pkg/logging"
)

// Config holds the server configuration.
type Config struct {
	// Port the HTTP server listens on
	Port string

	// RedisURL is the Redis address for session state. Empty keeps
	// sessions in process memory.
	RedisURL string

	// SessionTTL is how long an idle visitor keeps their carousel position
	SessionTTL time.Duration

	// LogLevel and LogPretty configure pkg/logging
	LogLevel  logging.LogLevel
	LogPretty bool

	// CatalogPath is an optional YAML catalog replacing the built-in photos
	CatalogPath string

	// ItemsPerPage is the number of carousel cards per page
	ItemsPerPage int

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Port:            "8080",
		RedisURL:        "",
		SessionTTL:      30 * time.Minute,
		LogLevel:        logging.LevelInfo,
		ItemsPerPage:    gallery.ItemsPerPage,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads PORT, REDIS_URL, SESSION_TTL, LOG_LEVEL, LOG_PRETTY,
// GALLERY_CATALOG, ITEMS_PER_PAGE and SHUTDOWN_TIMEOUT.
func Load() (Config, error) {
	def := Default()

	cfg := Config{
		Port:        getEnv("PORT", def.Port),
		RedisURL:    getEnv("REDIS_URL", def.RedisURL),
		LogLevel:    logging.LogLevel(getEnv("LOG_LEVEL", string(def.LogLevel))),
		CatalogPath: getEnv("GALLERY_CATALOG", def.CatalogPath),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", def.SessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", def.ShutdownTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ItemsPerPage, err = getInt("ITEMS_PER_PAGE", def.ItemsPerPage); err != nil {
		return Config{}, err
	}
	if cfg.LogPretty, err = getBool("LOG_PRETTY", def.LogPretty); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("port must be numeric (got %q)", c.Port)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive (got %s)", c.SessionTTL)
	}
	if c.ItemsPerPage <= 0 {
		return fmt.Errorf("items_per_page must be positive (got %d)", c.ItemsPerPage)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive (got %s)", c.ShutdownTimeout)
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}
