// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultPort               = 3000
	DefaultDurationSeconds    = 90.0
	DefaultMaxTranscriptBytes = 1 << 20  // 1 MiB of text
	DefaultMaxBodyBytes       = 50 << 20 // 50 MiB, room for base64 audio
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultWorkers            = 4
	maxDurationSeconds        = 24 * 60 * 60
	envPrefix                 = "TALK_COACH_"
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port             int  `json:"port,omitempty" yaml:"port"`
	RateLimitEnabled bool `json:"rate_limit_enabled,omitempty" yaml:"rate_limit_enabled"`

	// Assessment
	DefaultDurationSeconds float64 `json:"default_duration_seconds,omitempty" yaml:"default_duration_seconds"` // Policy estimate when no duration is known
	Workers                int     `json:"workers,omitempty" yaml:"workers"`                                   // Parallel assessments in batch mode

	// Limits
	MaxTranscriptBytes int64 `json:"max_transcript_bytes,omitempty" yaml:"max_transcript_bytes"` // Largest transcript accepted
	MaxBodyBytes       int64 `json:"max_body_bytes,omitempty" yaml:"max_body_bytes"`             // Largest HTTP request body accepted

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level"`   // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty" yaml:"log_format"` // text or json
	Verbose   bool   `json:"verbose,omitempty" yaml:"verbose"`       // Print detailed human-readable summaries
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:                   DefaultPort,
		RateLimitEnabled:       true,
		DefaultDurationSeconds: DefaultDurationSeconds,
		Workers:                DefaultWorkers,
		MaxTranscriptBytes:     DefaultMaxTranscriptBytes,
		MaxBodyBytes:           DefaultMaxBodyBytes,
		LogLevel:               DefaultLogLevel,
		LogFormat:              DefaultLogFormat,
	}
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the
// extension is .yaml or .yml. RateLimitEnabled is true unless the file sets it.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// rate limiting stays on unless the file turns it off
	cfg := Config{RateLimitEnabled: true}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero values are allowed; they are replaced by defaults when merged.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.DefaultDurationSeconds < 0 || c.DefaultDurationSeconds > maxDurationSeconds {
		return fmt.Errorf("config error: 'default_duration_seconds' must be between 0 and %d", maxDurationSeconds)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.MaxTranscriptBytes < 0 {
		return fmt.Errorf("config error: 'max_transcript_bytes' must be non-negative")
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("config error: 'max_body_bytes' must be non-negative")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config error: 'log_format' must be 'text' or 'json'")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DefaultDurationSeconds == 0 {
		result.DefaultDurationSeconds = defaults.DefaultDurationSeconds
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.MaxTranscriptBytes == 0 {
		result.MaxTranscriptBytes = defaults.MaxTranscriptBytes
	}
	if result.MaxBodyBytes == 0 {
		result.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from TALK_COACH_* environment variables
// (TALK_COACH_PORT, TALK_COACH_LOG_LEVEL, ...).
func (c *Config) ApplyEnv() error {
	if err := envOverrideInt(&c.Port, "PORT"); err != nil {
		return err
	}
	if err := envOverrideFloat(&c.DefaultDurationSeconds, "DEFAULT_DURATION_SECONDS"); err != nil {
		return err
	}
	if err := envOverrideInt(&c.Workers, "WORKERS"); err != nil {
		return err
	}
	if err := envOverrideInt64(&c.MaxTranscriptBytes, "MAX_TRANSCRIPT_BYTES"); err != nil {
		return err
	}
	if err := envOverrideInt64(&c.MaxBodyBytes, "MAX_BODY_BYTES"); err != nil {
		return err
	}
	envOverride(&c.LogLevel, "LOG_LEVEL")
	envOverride(&c.LogFormat, "LOG_FORMAT")
	envOverrideBool(&c.RateLimitEnabled, "RATE_LIMIT_ENABLED")
	envOverrideBool(&c.Verbose, "VERBOSE")
	return nil
}

func envOverride(field *string, key string) {
	if val := os.Getenv(envPrefix + key); val != "" {
		*field = val
	}
}

func envOverrideBool(field *bool, key string) {
	if val := os.Getenv(envPrefix + key); val != "" {
		*field = strings.EqualFold(val, "true") || val == "1"
	}
}

func envOverrideInt(field *int, key string) error {
	if val := os.Getenv(envPrefix + key); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s%s %q: %w", envPrefix, key, val, err)
		}
		*field = parsed
	}
	return nil
}

func envOverrideInt64(field *int64, key string) error {
	if val := os.Getenv(envPrefix + key); val != "" {
		parsed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s%s %q: %w", envPrefix, key, val, err)
		}
		*field = parsed
	}
	return nil
}

func envOverrideFloat(field *float64, key string) error {
	if val := os.Getenv(envPrefix + key); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid %s%s %q: %w", envPrefix, key, val, err)
		}
		*field = parsed
	}
	return nil
}
