package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/janitor/cmd/janitor/handlers"
	"github.com/imamik/janitor/internal/util/ptr"
)

// Run returns the run command.
func Run() *cobra.Command {
	var (
		opts       handlers.RunOptions
		dryRun     bool
		concurrent bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one cleanup pass",
		Long: `Run lists every EC2 instance in the region and deletes the resources
whose names embed an instance ID that is no longer listed:
  - CloudWatch log groups
  - SQS queues
  - Route 53 records in the configured hosted zone (one change batch)

Resources without an instance ID in their name are never touched. If the
instance listing fails the pass stops before anything is deleted.

Settings are read from the config file, then the environment
(HOSTED_ZONE_ID, AWS_REGION, JANITOR_*), then these flags.

Example:
  janitor run -c janitor.yaml --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("dry-run") {
				opts.DryRun = ptr.Bool(dryRun)
			}
			if cmd.Flags().Changed("concurrent") {
				opts.Concurrent = ptr.Bool(concurrent)
			}
			return handlers.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: janitor.yaml if present)")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Read environment variables from a dotenv file (process environment wins)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log what would be deleted without deleting anything")
	cmd.Flags().BoolVar(&concurrent, "concurrent", false, "Scan resource kinds in parallel")
	cmd.Flags().StringVar(&opts.ZoneID, "zone", "", "Route 53 hosted zone ID (overrides HOSTED_ZONE_ID)")
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region (overrides AWS_REGION)")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write pass metrics to this file for the textfile collector")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "auto", "Log format: auto, text or json")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	return cmd
}
