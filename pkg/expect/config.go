package expect

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognised by ApplyEnv.
const (
	envTruncateThreshold = "VITEST_TRUNCATE_THRESHOLD"
	envIncludeDiff       = "VITEST_INCLUDE_DIFF"
	envSoftFailureLimit  = "VITEST_SOFT_FAILURE_LIMIT"
	envVerbose           = "VITEST_VERBOSE"
)

// Config holds ambient configuration for an entry point. It is
// read through on every matcher invocation, so changes between
// registration and invocation take effect.
type Config struct {
	// TruncateThreshold caps the rendered length of values in
	// failure messages. Zero disables truncation.
	TruncateThreshold int `json:"truncate_threshold" yaml:"truncate_threshold"`

	// IncludeDiff appends a unified diff of expected/actual
	// to failure messages when both were provided.
	IncludeDiff bool `json:"include_diff" yaml:"include_diff"`

	// SoftFailureLimit caps the number of failures a soft
	// sink created by the entry point keeps. Zero means
	// unbounded.
	SoftFailureLimit int `json:"soft_failure_limit" yaml:"soft_failure_limit"`

	// Verbose enables debug logging of registration and
	// dispatch events.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// NewConfig creates a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		TruncateThreshold: 256,
		IncludeDiff:       true,
	}
}

// LoadConfigFile reads a YAML configuration file over the
// defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file %s: %w", path, err,
		)
	}
	return cfg, nil
}

// ApplyEnv overlays recognised environment variables onto the
// config. The lookup function defaults to os.LookupEnv; tests
// inject their own. Malformed values are ignored.
func (c *Config) ApplyEnv(
	lookup func(key string) (string, bool),
) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(envTruncateThreshold); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.TruncateThreshold = n
		}
	}
	if v, ok := lookup(envIncludeDiff); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.IncludeDiff = b
		}
	}
	if v, ok := lookup(envSoftFailureLimit); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.SoftFailureLimit = n
		}
	}
	if v, ok := lookup(envVerbose); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
}
