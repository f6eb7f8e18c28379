package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/nodewatch/internal/logger"
	"github.com/rileyhilliard/nodewatch/internal/telemetry"
	"github.com/rileyhilliard/nodewatch/pkg/sshutil"
	"github.com/spf13/cobra"
)

// daemonCmd runs the interval scheduler until interrupted.
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Monitor the fleet continuously",
	Long: `Run a monitoring cycle every check_interval and save state after
each one. When telemetry.listen is configured, Prometheus counters are
served on /metrics for scraping. Stops cleanly on SIGINT/SIGTERM.

Examples:
  nodewatch daemon
  NODEWATCH_DEBUG=1 nodewatch daemon`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return daemonCommand()
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func daemonCommand() error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer sshutil.CloseAgent()

	log := logger.NewEnvLogger("[daemon]")

	if listen := eng.Config().Telemetry.Listen; listen != "" {
		go func() {
			log.Info("serving /metrics on %s", listen)
			if err := telemetry.Serve(ctx, listen); err != nil {
				log.Error("telemetry listener: %v", err)
			}
		}()
	}

	return eng.Run(ctx)
}
