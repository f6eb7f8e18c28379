package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dashboardJSON bool

// dashboardCmd prints the aggregated fleet view from recorded history.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the fleet dashboard",
	Long: `Aggregate the recorded history into a fleet view: node statuses,
latest resource readings, and active alerts. Reads persisted state only,
no probes are run.

Examples:
  nodewatch dashboard
  nodewatch dashboard --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = dashboardJSON
		return dashboardCommand()
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "output in JSON format")
}

func dashboardCommand() error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	if dashboardJSON {
		return WriteJSONSuccess(os.Stdout, eng.Dashboard())
	}
	fmt.Print(renderDashboard(eng.Dashboard()))
	return nil
}
