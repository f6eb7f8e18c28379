// Package cli is the cobra command surface. Each command maps 1:1 to
// one engine operation: load config, build the engine, run the
// operation, save state when it mutated anything.
package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/spf13/cobra"
)

// configFlag is the --config override, empty means search.
var configFlag string

// rootCmd is the base command all subcommands hang off.
var rootCmd = &cobra.Command{
	Use:   "nodewatch",
	Short: "Fleet health monitoring from your terminal",
	Long: `nodewatch probes a configured fleet of nodes, collects resource
metrics over SSH, evaluates thresholds, and raises alerts through the
channels you configure.

Start with 'nodewatch init' to scaffold a config, then 'nodewatch cycle'
for a one-shot run or 'nodewatch daemon' for continuous monitoring.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}

// Config returns the --config flag value.
func Config() string {
	return configFlag
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// An ExitError is a bare status carrier: the command already
		// rendered its output, so exit without printing anything more.
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}

		if machineMode {
			_ = WriteJSONFromError(os.Stdout, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
