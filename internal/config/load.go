package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/imamik/janitor/internal/util/ptr"
)

// Environment variables read by ApplyEnv.
const (
	EnvHostedZoneID          = "HOSTED_ZONE_ID"
	EnvRegion                = "AWS_REGION"
	EnvDryRun                = "JANITOR_DRY_RUN"
	EnvConcurrent            = "JANITOR_CONCURRENT"
	EnvAllowEmptyGroundTruth = "JANITOR_ALLOW_EMPTY_GROUND_TRUTH"
	EnvLogGroupsEnabled      = "JANITOR_LOG_GROUPS_ENABLED"
	EnvQueuesEnabled         = "JANITOR_QUEUES_ENABLED"
	EnvDNSEnabled            = "JANITOR_DNS_ENABLED"
	EnvReportBucket          = "JANITOR_REPORT_BUCKET"
	EnvMetricsFile           = "JANITOR_METRICS_FILE"
	EnvAWSEndpoint           = "JANITOR_AWS_ENDPOINT"
)

// Load reads a configuration file without validating it; the caller
// validates once every layer has been applied. A missing file at the
// default path yields the default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Default(), nil
		}
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseConfig(data)
}

// LoadFromBytes parses and validates a configuration.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parseConfig parses YAML data into a Config struct. Unknown keys are
// rejected so a typo cannot silently re-enable a kind.
func parseConfig(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables read through getenv. Invalid
// boolean values are reported rather than ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvHostedZoneID); v != "" {
		c.HostedZoneID = v
	}
	if v := getenv(EnvRegion); v != "" {
		c.Region = v
	}
	if v := getenv(EnvReportBucket); v != "" {
		c.Report.Bucket = v
	}
	if v := getenv(EnvMetricsFile); v != "" {
		c.MetricsFile = v
	}
	if v := getenv(EnvAWSEndpoint); v != "" {
		c.AWS.Endpoint = v
	}

	bools := []struct {
		env string
		set func(bool)
	}{
		{EnvDryRun, func(b bool) { c.DryRun = b }},
		{EnvConcurrent, func(b bool) { c.Concurrent = b }},
		{EnvAllowEmptyGroundTruth, func(b bool) { c.AllowEmptyGroundTruth = b }},
		{EnvLogGroupsEnabled, func(b bool) { c.LogGroups.Enabled = ptr.Bool(b) }},
		{EnvQueuesEnabled, func(b bool) { c.Queues.Enabled = ptr.Bool(b) }},
		{EnvDNSEnabled, func(b bool) { c.DNS.Enabled = ptr.Bool(b) }},
	}
	for _, b := range bools {
		v := getenv(b.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", v, b.env, err)
		}
		b.set(parsed)
	}
	return nil
}

// EnvWithFile returns a getenv that falls back to the variables of a dotenv
// file. Variables already set in getenv win, as with godotenv.Load, but the
// process environment is left untouched.
func EnvWithFile(path string, getenv func(string) string) (func(string) string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return vars[key]
	}, nil
}
