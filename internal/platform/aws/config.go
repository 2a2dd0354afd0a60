package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// ConfigOptions tunes how the shared AWS configuration is loaded.
type ConfigOptions struct {
	// Region overrides the region from the environment or shared config.
	Region string
	// Endpoint overrides the base endpoint of every service, e.g. for LocalStack.
	Endpoint string
	// RetryMaxAttempts overrides the SDK retryer's attempt count when > 0.
	RetryMaxAttempts int
}

// LoadConfig loads credentials and settings from the default chain
// (environment, shared files, instance role).
func LoadConfig(ctx context.Context, opts ConfigOptions) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.RetryMaxAttempts > 0 {
		loadOpts = append(loadOpts, config.WithRetryMaxAttempts(opts.RetryMaxAttempts))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if opts.Endpoint != "" {
		cfg.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return cfg, nil
}
