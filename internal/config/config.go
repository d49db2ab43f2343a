// Package config loads server configuration from the environment,
// an optional .env file and command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/iudanet/contentfactory/internal/server/storage/backend"
)

// Config holds server settings
type Config struct {
	ListenAddr      string
	DataDir         string
	SQLitePath      string
	LogLevel        string
	LogFormat       string
	Backend         backend.Kind
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	AuthRateWindow  time.Duration
	AuthRateLimit   int
	Serverless      bool
	SecureCookies   bool
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		DataDir:         "./data",
		LogLevel:        "info",
		LogFormat:       "json",
		Backend:         backend.KindAuto,
		SessionTTL:      30 * 24 * time.Hour,
		CleanupInterval: time.Hour,
		AuthRateLimit:   20,
		AuthRateWindow:  time.Minute,
	}
}

// LoadDotEnv loads variables from path into the process environment.
// Missing file is not an error; already set variables are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds the configuration from environment variables on top of defaults.
// The serverless signal is read here once and never re-read.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()
	var errs []error

	cfg.ListenAddr = getEnv(lookup, "LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = getEnv(lookup, "DATA_DIR", cfg.DataDir)
	cfg.SQLitePath = getEnv(lookup, "SQLITE_PATH", cfg.SQLitePath)
	cfg.LogLevel = getEnv(lookup, "LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv(lookup, "LOG_FORMAT", cfg.LogFormat)

	kind, err := backend.ParseKind(getEnv(lookup, "STORAGE_BACKEND", string(cfg.Backend)))
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.Backend = kind
	}

	cfg.SessionTTL = getEnvDuration(lookup, "SESSION_TTL", cfg.SessionTTL, &errs)
	cfg.CleanupInterval = getEnvDuration(lookup, "SESSION_CLEANUP_INTERVAL", cfg.CleanupInterval, &errs)
	cfg.AuthRateWindow = getEnvDuration(lookup, "AUTH_RATE_WINDOW", cfg.AuthRateWindow, &errs)
	cfg.AuthRateLimit = getEnvInt(lookup, "AUTH_RATE_LIMIT", cfg.AuthRateLimit, &errs)

	cfg.Serverless = isSet(lookup, "VERCEL") || isSet(lookup, "SERVERLESS")

	// Secure cookie по умолчанию в production
	env, _ := lookup("ENV")
	cfg.SecureCookies = env == "production"
	if v, ok := lookup("COOKIE_SECURE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("COOKIE_SECURE: %w", err))
		}
		cfg.SecureCookies = b
	}

	return cfg, errors.Join(errs...)
}

// RegisterFlags binds flags that override cfg
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ListenAddr, "addr", c.ListenAddr, "HTTP listen address")
	fs.StringVar(&c.DataDir, "data-dir", c.DataDir, "Data directory for file and sqlite storage")
	fs.StringVar(&c.SQLitePath, "sqlite-path", c.SQLitePath, "SQLite database path (default <data-dir>/contentfactory.db)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.Func("storage", "Storage backend: auto, file, sqlite, memory", func(s string) error {
		kind, err := backend.ParseKind(s)
		if err != nil {
			return err
		}
		c.Backend = kind
		return nil
	})
	fs.DurationVar(&c.SessionTTL, "session-ttl", c.SessionTTL, "Session lifetime")
	fs.DurationVar(&c.CleanupInterval, "cleanup-interval", c.CleanupInterval, "Expired session cleanup interval")
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var errs []error
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("listen address is required"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("session TTL must be positive"))
	}
	if c.CleanupInterval <= 0 {
		errs = append(errs, errors.New("cleanup interval must be positive"))
	}
	if c.AuthRateLimit <= 0 || c.AuthRateWindow <= 0 {
		errs = append(errs, errors.New("auth rate limit must be positive"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel converts a level name to slog.Level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func getEnv(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, exists := lookup(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(lookup func(string) (string, bool), key string, defaultValue int, errs *[]error) int {
	valueStr, exists := lookup(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return value
}

func getEnvDuration(lookup func(string) (string, bool), key string, defaultValue time.Duration, errs *[]error) time.Duration {
	valueStr, exists := lookup(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return value
}

func isSet(lookup func(string) (string, bool), key string) bool {
	v, _ := lookup(key)
	return v == "1"
}
