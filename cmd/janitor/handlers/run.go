// Package handlers executes the janitor CLI commands.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-logr/logr"

	"github.com/imamik/janitor/internal/config"
	"github.com/imamik/janitor/internal/janitor"
	"github.com/imamik/janitor/internal/logging"
	"github.com/imamik/janitor/internal/metrics"
	platformaws "github.com/imamik/janitor/internal/platform/aws"
	"github.com/imamik/janitor/internal/platform/s3"
	"github.com/imamik/janitor/internal/report"
)

// RunOptions carries the run command flags. Zero values leave the
// configuration untouched.
type RunOptions struct {
	ConfigPath  string
	EnvFile     string
	DryRun      *bool
	Concurrent  *bool
	ZoneID      string
	Region      string
	MetricsFile string
	LogFormat   string
	Verbosity   int
}

// Services are the AWS capabilities a pass needs.
type Services struct {
	Instances janitor.InstanceLister
	LogGroups janitor.LogGroupService
	Queues    janitor.QueueService
	Records   janitor.RecordService
}

// Factory function variables for run - can be replaced in tests.
var (
	loadConfigFile = config.Load
	getenv         = os.Getenv
	loadAWSConfig  = platformaws.LoadConfig

	newServices = func(cfg aws.Config) Services {
		return Services{
			Instances: platformaws.NewInstances(cfg),
			LogGroups: platformaws.NewLogGroups(cfg),
			Queues:    platformaws.NewQueues(cfg),
			Records:   platformaws.NewRecords(cfg),
		}
	}

	newReportWriter = func(cfg aws.Config, endpoint string) report.ObjectWriter {
		return s3.NewClient(cfg, endpoint)
	}

	logOutput     io.Writer = os.Stderr
	summaryOutput io.Writer = os.Stdout
	now                     = time.Now
)

// Run handles the run command.
//
// It resolves the configuration, runs a single janitor pass, uploads the
// pass report and writes metrics when configured, and prints a summary.
// The returned error names the stage that failed.
func Run(ctx context.Context, opts RunOptions) error {
	format, err := logging.ParseFormat(opts.LogFormat)
	if err != nil {
		return err
	}
	log := logging.New(logOutput, format, opts.Verbosity)

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	log.Info("[Config] Starting pass", "region", cfg.Region, "zone", cfg.HostedZoneID,
		"kinds", cfg.EnabledKinds(), "dryRun", cfg.DryRun, "concurrent", cfg.Concurrent)

	awsCfg, err := loadAWSConfig(ctx, platformaws.ConfigOptions{
		Region:           cfg.Region,
		Endpoint:         cfg.AWS.Endpoint,
		RetryMaxAttempts: cfg.AWS.RetryMaxAttempts,
	})
	if err != nil {
		return err
	}

	j, err := janitor.New(janitorOptions(cfg, newServices(awsCfg), log))
	if err != nil {
		return fmt.Errorf("failed to set up janitor: %w", err)
	}

	rep, passErr := j.Run(ctx)

	if cfg.HasReport() {
		uploader := report.NewUploader(newReportWriter(awsCfg, cfg.Report.Endpoint), cfg.Report.Bucket, cfg.Report.Prefix, log)
		if _, err := uploader.Upload(ctx, rep); err != nil {
			// The pass outcome stands regardless of where its report ends up.
			log.Error(err, "[Report] Upload failed", "bucket", cfg.Report.Bucket)
		}
	}

	writeMetrics(cfg.MetricsFile, rep, log)

	_, _ = fmt.Fprint(summaryOutput, renderSummary(rep, logging.IsTerminal(summaryOutput)))

	if passErr != nil {
		if janitor.IsGroundTruthFailure(passErr) {
			return fmt.Errorf("pass aborted while collecting ground truth, nothing was deleted: %w", passErr)
		}
		return fmt.Errorf("pass finished with failures: %w", passErr)
	}
	return nil
}

// resolveConfig layers file, environment and flags, then validates.
func resolveConfig(opts RunOptions) (*config.Config, error) {
	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	env := getenv
	if opts.EnvFile != "" {
		env, err = config.EnvWithFile(opts.EnvFile, getenv)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if opts.DryRun != nil {
		cfg.DryRun = *opts.DryRun
	}
	if opts.Concurrent != nil {
		cfg.Concurrent = *opts.Concurrent
	}
	if opts.ZoneID != "" {
		cfg.HostedZoneID = opts.ZoneID
	}
	if opts.Region != "" {
		cfg.Region = opts.Region
	}
	if opts.MetricsFile != "" {
		cfg.MetricsFile = opts.MetricsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// janitorOptions maps the configuration onto janitor options. Disabled
// kinds get no service at all so the janitor never lists them.
func janitorOptions(cfg *config.Config, svc Services, log logr.Logger) janitor.Options {
	opts := janitor.Options{
		Instances:             svc.Instances,
		DryRun:                cfg.DryRun,
		Concurrent:            cfg.Concurrent,
		AllowEmptyGroundTruth: cfg.AllowEmptyGroundTruth,
		Logger:                log,
		Now:                   now,
	}
	if cfg.LogGroups.IsEnabled() {
		opts.LogGroups = svc.LogGroups
		opts.LogGroupPrefix = cfg.LogGroups.Prefix
	}
	if cfg.Queues.IsEnabled() {
		opts.Queues = svc.Queues
		opts.QueuePrefix = cfg.Queues.Prefix
	}
	if cfg.DNSEnabled() {
		opts.Records = svc.Records
		opts.ZoneID = cfg.HostedZoneID
	}
	return opts
}

func writeMetrics(path string, rep *janitor.Report, log logr.Logger) {
	if path == "" {
		return
	}
	recorder := metrics.NewRecorder()
	recorder.Observe(rep)
	if err := recorder.WriteFile(path); err != nil {
		log.Error(err, "[Metrics] Write failed")
		return
	}
	log.V(1).Info("[Metrics] Written", "path", path)
}
