package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "EXPRLEX_"

// Config configures the exprlex service.
type Config struct {
	// Port is the TCP port the HTTP API listens on.
	Port string `json:"port"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`

	// CacheSize is the number of distinct inputs whose results are memoized.
	CacheSize int `json:"cache_size"`

	// MaxInputBytes bounds the size of a single expression accepted over HTTP.
	MaxInputBytes int `json:"max_input_bytes"`

	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Port:          "8080",
		LogLevel:      "info",
		CacheSize:     4096,
		MaxInputBytes: 64 << 10,
		ReadTimeout:   30 * time.Second,
		WriteTimeout:  60 * time.Second,
		IdleTimeout:   120 * time.Second,
	}
}

// FromEnv returns DefaultConfig overlaid with EXPRLEX_* environment
// variables.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvPrefix + "PORT"); ok && v != "" {
		cfg.Port = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"CACHE_SIZE", &cfg.CacheSize},
		{"MAX_INPUT_BYTES", &cfg.MaxInputBytes},
	}
	for _, f := range ints {
		v, ok := lookup(EnvPrefix + f.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "%s%s should be an integer", EnvPrefix, f.name)
		}
		*f.dst = n
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"READ_TIMEOUT", &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"IDLE_TIMEOUT", &cfg.IdleTimeout},
	}
	for _, f := range durations {
		v, ok := lookup(EnvPrefix + f.name)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "%s%s should be a duration", EnvPrefix, f.name)
		}
		*f.dst = d
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Port == "":
		return errors.New("port is required")
	case c.CacheSize <= 0:
		return errors.Errorf("cache size must be positive, got %d", c.CacheSize)
	case c.MaxInputBytes <= 0:
		return errors.Errorf("max input bytes must be positive, got %d", c.MaxInputBytes)
	case c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0:
		return errors.New("timeouts must be positive")
	}
	return nil
}
