package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds service configuration loaded from environment variables.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// MaxBody is the largest accepted render request body in bytes.
	MaxBody     int64
	CORSOrigins []string
	LogLevel    slog.Level
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		MaxBody:      1 << 20,
		CORSOrigins:  []string{"*"},
		LogLevel:     slog.LevelInfo,
	}
}

// LoadConfig reads ROOMRENDER_* variables from the environment. The given
// .env files (or ".env" when none are given) are loaded first; missing files
// are ignored. Variables already set in the environment take precedence.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("server: load env: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Addr = getEnv("ROOMRENDER_ADDR", cfg.Addr)

	var err error
	if cfg.ReadTimeout, err = durationEnv("ROOMRENDER_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = durationEnv("ROOMRENDER_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("ROOMRENDER_MAX_BODY"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("server: ROOMRENDER_MAX_BODY: invalid size %q", v)
		}
		cfg.MaxBody = n
	}

	if v := os.Getenv("ROOMRENDER_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = cfg.CORSOrigins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if v := os.Getenv("ROOMRENDER_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("server: ROOMRENDER_LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("server: %s: invalid duration %q", key, v)
	}
	return d, nil
}
