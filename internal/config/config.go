// Package config reads CLI settings from a .env file and the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Log    LogConfig
	Report ReportConfig
	Batch  BatchConfig
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

type ReportConfig struct {
	Author string
}

type BatchConfig struct {
	Workers int // 0 means one per CPU
}

// Load reads the given env files (".env" when none are named), then the
// process environment. A missing file is not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("ISRCB_LOG_LEVEL", "warn")),
			Format: strings.ToLower(getEnv("ISRCB_LOG_FORMAT", "text")),
		},
		Report: ReportConfig{
			Author: getEnv("ISRCB_REPORT_AUTHOR", ""),
		},
		Batch: BatchConfig{
			Workers: getEnvAsInt("ISRCB_WORKERS", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("ISRCB_LOG_FORMAT must be text or json, got %q", c.Log.Format)
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("ISRCB_WORKERS must not be negative, got %d", c.Batch.Workers)
	}

	return nil
}

// NewLogger builds the logger described by the config, writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("ISRCB_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}
