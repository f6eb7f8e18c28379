package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rileyhilliard/nodewatch/internal/metrics"
	"github.com/spf13/cobra"
)

var collectJSON bool

// collectCmd samples resource usage from one node or the whole fleet.
var collectCmd = &cobra.Command{
	Use:   "collect [node]",
	Short: "Collect resource metrics from a node or the whole fleet",
	Long: `Sample CPU, memory, disk, and load average from nodes over SSH.

Collection is best-effort: an unreachable node is skipped for this
cycle rather than reported as an error. Samples are appended to history
and evaluated against the configured thresholds.

Examples:
  nodewatch collect
  nodewatch collect web-1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = collectJSON
		return collectCommand(cmd.Context(), args)
	},
}

func init() {
	rootCmd.AddCommand(collectCmd)
	collectCmd.Flags().BoolVar(&collectJSON, "json", false, "output in JSON format")
}

func collectCommand(ctx context.Context, args []string) error {
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

	collected := make([]metrics.Snapshot, 0, len(nodeIDs))
	var skipped []string
	for _, nodeID := range nodeIDs {
		snap, err := eng.CollectNode(ctx, nodeID)
		if err != nil {
			return err
		}
		if snap == nil {
			skipped = append(skipped, nodeID)
			continue
		}
		collected = append(collected, *snap)
	}

	if err := eng.SaveState(); err != nil {
		return err
	}

	if collectJSON {
		return WriteJSONSuccess(os.Stdout, map[string]interface{}{
			"collected": collected,
			"skipped":   skipped,
		})
	}

	for _, snap := range collected {
		fmt.Print(renderSnapshot(snap))
	}
	for _, nodeID := range skipped {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%s: no metrics this cycle", nodeID)))
	}
	return nil
}
