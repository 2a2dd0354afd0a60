package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/janitor/internal/util/ptr"
)

// DefaultConfigFilename is the config file looked up when none is given.
const DefaultConfigFilename = "janitor.yaml"

// Config is the janitor configuration.
type Config struct {
	// Region is the AWS region to clean up. Empty uses the SDK default chain.
	Region string `yaml:"region,omitempty"`

	// HostedZoneID is the Route 53 zone holding worker records. DNS cleanup
	// is skipped when it is empty.
	HostedZoneID string `yaml:"hosted_zone_id,omitempty"`

	DryRun     bool `yaml:"dry_run,omitempty"`
	Concurrent bool `yaml:"concurrent,omitempty"`

	// AllowEmptyGroundTruth lets a pass proceed when no instance exists at
	// all. Every resource carrying an instance ID is then deleted.
	AllowEmptyGroundTruth bool `yaml:"allow_empty_ground_truth,omitempty"`

	LogGroups KindConfig `yaml:"log_groups,omitempty"`
	Queues    KindConfig `yaml:"queues,omitempty"`
	DNS       KindConfig `yaml:"dns,omitempty"`

	Report ReportConfig `yaml:"report,omitempty"`

	// MetricsFile is where pass metrics are written for the node exporter
	// textfile collector.
	MetricsFile string `yaml:"metrics_file,omitempty"`

	AWS AWSConfig `yaml:"aws,omitempty"`
}

// KindConfig toggles and narrows one resource kind.
type KindConfig struct {
	// Enabled defaults to true when unset.
	Enabled *bool `yaml:"enabled,omitempty"`
	// Prefix narrows the listing. Ignored for DNS.
	Prefix string `yaml:"prefix,omitempty"`
}

// IsEnabled reports whether the kind runs.
func (k KindConfig) IsEnabled() bool {
	return ptr.Deref(k.Enabled, true)
}

// ReportConfig configures the pass report upload.
type ReportConfig struct {
	Bucket string `yaml:"bucket,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
	// Endpoint points the upload at an S3-compatible store.
	Endpoint string `yaml:"endpoint,omitempty"`
}

// AWSConfig tunes the AWS clients.
type AWSConfig struct {
	// RetryMaxAttempts bounds the SDK transport retries. Zero keeps the SDK
	// default.
	RetryMaxAttempts int `yaml:"retry_max_attempts,omitempty"`
	// Endpoint overrides the endpoint of every AWS service, for local stacks.
	Endpoint string `yaml:"endpoint,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{}
}

// DNSEnabled reports whether DNS records are reconciled.
func (c *Config) DNSEnabled() bool {
	return c.DNS.IsEnabled() && c.HostedZoneID != ""
}

// HasReport returns true if pass reports are uploaded.
func (c *Config) HasReport() bool {
	return c.Report.Bucket != ""
}

// EnabledKinds lists the kinds that will run, for logging.
func (c *Config) EnabledKinds() []string {
	var kinds []string
	if c.LogGroups.IsEnabled() {
		kinds = append(kinds, "log-group")
	}
	if c.Queues.IsEnabled() {
		kinds = append(kinds, "queue")
	}
	if c.DNSEnabled() {
		kinds = append(kinds, "dns-record")
	}
	return kinds
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []error

	if ptr.Deref(c.DNS.Enabled, false) && c.HostedZoneID == "" {
		errs = append(errs, errors.New("hosted_zone_id is required when dns.enabled is true"))
	}
	if c.HostedZoneID != "" && strings.ContainsAny(c.HostedZoneID, " /") {
		errs = append(errs, fmt.Errorf("hosted_zone_id %q must be a bare zone ID", c.HostedZoneID))
	}
	if c.DNS.Prefix != "" {
		errs = append(errs, errors.New("dns.prefix is not supported, zones are always scanned whole"))
	}
	if len(c.EnabledKinds()) == 0 {
		errs = append(errs, errors.New("at least one of log_groups, queues or dns must be enabled"))
	}
	if c.AWS.RetryMaxAttempts < 0 {
		errs = append(errs, errors.New("aws.retry_max_attempts must not be negative"))
	}
	if c.Report.Bucket == "" && (c.Report.Prefix != "" || c.Report.Endpoint != "") {
		errs = append(errs, errors.New("report.bucket is required when report.prefix or report.endpoint is set"))
	}

	return errors.Join(errs...)
}
