package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusJSON bool

// statusCmd shows one node's latest check, metrics, and alerts.
var statusCmd = &cobra.Command{
	Use:   "status <node>",
	Short: "Show one node's latest state",
	Long: `Print a node's most recent health check, most recent resource
snapshot, and its unresolved alerts. Reads persisted state only.

Examples:
  nodewatch status web-1
  nodewatch status web-1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = statusJSON
		return statusCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output in JSON format")
}

func statusCommand(nodeID string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	if err := resolveNode(eng, nodeID); err != nil {
		return err
	}

	status := eng.Status(nodeID)

	if statusJSON {
		return WriteJSONSuccess(os.Stdout, status)
	}
	fmt.Print(renderStatus(status))
	return nil
}
