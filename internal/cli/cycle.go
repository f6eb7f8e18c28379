package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/nodewatch/internal/engine"
	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/spf13/cobra"
)

var cycleJSON bool

// cycleCmd runs one full check+collect pass and saves state.
var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Run one full monitoring cycle",
	Long: `Health-check and collect metrics for every configured node, raise
whatever alerts the results warrant, save state, and print the fleet
dashboard. This is exactly what the daemon does on each interval.

Exits 2 when critical alerts are active, so cron jobs and scripts can
react without parsing the output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = cycleJSON
		return cycleCommand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(cycleCmd)
	cycleCmd.Flags().BoolVar(&cycleJSON, "json", false, "output in JSON format")
}

func cycleCommand(cmd *cobra.Command) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	eng.RunCycle(cmd.Context())

	if err := eng.SaveState(); err != nil {
		return err
	}

	d := eng.Dashboard()
	if cycleJSON {
		if err := WriteJSONSuccess(os.Stdout, d); err != nil {
			return err
		}
	} else {
		fmt.Print(renderDashboard(d))
	}
	return cycleExitErr(d)
}

// cycleExitErr translates the finished cycle into an exit status for
// scripts: 2 when critical alerts are active, 0 otherwise. The status
// rides an ExitError so Execute exits without printing anything extra.
func cycleExitErr(d engine.Dashboard) error {
	if d.CriticalAlerts > 0 {
		return errors.NewExitError(2)
	}
	return nil
}
