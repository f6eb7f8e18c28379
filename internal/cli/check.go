package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rileyhilliard/nodewatch/internal/health"
	"github.com/spf13/cobra"
)

var checkJSON bool

// checkCmd health-checks one node or the whole fleet.
var checkCmd = &cobra.Command{
	Use:   "check [node]",
	Short: "Health-check a node or the whole fleet",
	Long: `Probe a node's reachability: ping, SSH port, and HTTP when the node
serves web traffic. Without an argument, every configured node is checked.

Results are appended to history and evaluated against alert rules.

Examples:
  nodewatch check
  nodewatch check web-1
  nodewatch check web-1 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = checkJSON
		return checkCommand(cmd.Context(), args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output in JSON format")
}

func checkCommand(ctx context.Context, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	nodeIDs := eng.NodeIDs()
	if len(args) == 1 {
		if err := resolveNode(eng, args[0]); err != nil {
			return err
		}
		nodeIDs = args[:1]
	}

	checks := make([]health.Check, 0, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		check, err := eng.CheckNode(ctx, nodeID)
		if err != nil {
			return err
		}
		checks = append(checks, check)
	}

	if err := eng.SaveState(); err != nil {
		return err
	}

	if checkJSON {
		return WriteJSONSuccess(os.Stdout, checks)
	}
	for _, check := range checks {
		fmt.Print(renderCheck(check))
	}
	return nil
}
