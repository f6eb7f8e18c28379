package cli

import (
	"time"

	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/rileyhilliard/nodewatch/internal/watch"
	"github.com/spf13/cobra"
)

var watchIntervalFlag string

// watchCmd runs the live-refreshing dashboard loop.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard that refreshes on an interval",
	Long: `Run a full monitoring cycle on an interval and keep the fleet
dashboard on screen. Press q to quit, r to refresh immediately.

Examples:
  nodewatch watch
  nodewatch watch --interval 10s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchIntervalFlag, "interval", "5s", "refresh interval (e.g., 5s, 1m)")
}

func watchCommand() error {
	interval, err := parseInterval(watchIntervalFlag)
	if err != nil {
		return err
	}

	eng, err := buildEngine()
	if err != nil {
		return err
	}
	defer func() { _ = eng.SaveState() }()

	return watch.Run(eng, interval)
}

// parseInterval parses a refresh interval flag.
func parseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			"'"+flag+"' doesn't look like a valid interval",
			"Try something like 5s, 30s, or 2m")
	}
	return d, nil
}
