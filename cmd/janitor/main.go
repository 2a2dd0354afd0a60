// Package main is the entry point for the janitor CLI.
//
// janitor deletes CloudWatch log groups, SQS queues and Route 53 records
// left behind by retired EC2 workers. Each invocation runs one pass and is
// meant to be scheduled periodically.
//
// For detailed usage information, run:
//
//	janitor --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/janitor/cmd/janitor/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
