package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/rileyhilliard/nodewatch/internal/util"
	"github.com/spf13/cobra"
)

var configShowJSON bool

// configCmd groups config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print the configuration as loaded: file values merged over the
defaults, with the state directory expanded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = configShowJSON
		return configShowCommand()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

func configShowCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if configShowJSON {
		return WriteJSONSuccess(os.Stdout, cfg)
	}

	fmt.Printf("state_dir: %s\n", cfg.StateDir)
	fmt.Printf("monitoring:\n")
	fmt.Printf("  enabled:        %t\n", cfg.Monitoring.Enabled)
	fmt.Printf("  check_interval: %s\n", cfg.Monitoring.CheckInterval)
	fmt.Printf("  timeouts:       ping %s, ssh %s, http %s\n",
		cfg.Monitoring.PingTimeout, cfg.Monitoring.SSHTimeout, cfg.Monitoring.HTTPTimeout)
	fmt.Printf("  history caps:   %d health, %d metrics\n",
		cfg.Monitoring.History.HealthMax, cfg.Monitoring.History.MetricsMax)
	fmt.Printf("  thresholds:     cpu %.0f/%.0f, memory %.0f/%.0f, disk %.0f/%.0f\n",
		cfg.Monitoring.Thresholds.CPU.Warning, cfg.Monitoring.Thresholds.CPU.Critical,
		cfg.Monitoring.Thresholds.Memory.Warning, cfg.Monitoring.Thresholds.Memory.Critical,
		cfg.Monitoring.Thresholds.Disk.Warning, cfg.Monitoring.Thresholds.Disk.Critical)

	channels := []string{"console"}
	if cfg.Alerts.WebhookURL != "" {
		channels = append(channels, "webhook")
	}
	if cfg.Alerts.ChatWebhookURL != "" {
		channels = append(channels, "chat")
	}
	if cfg.Alerts.Email != "" {
		channels = append(channels, "email")
	}
	fmt.Printf("alert channels: %s\n", util.JoinOrNone(channels))

	nodeIDs := make([]string, 0, len(cfg.Nodes))
	for id := range cfg.Nodes {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)

	fmt.Printf("nodes (%d):\n", len(nodeIDs))
	for _, id := range nodeIDs {
		node := cfg.Nodes[id]
		detail := node.IP
		if node.SSH != "" {
			detail += " ssh=" + node.SSH
		}
		if node.HasWebserver {
			detail += " webserver"
		}
		fmt.Printf("  %-16s %s\n", id, detail)
	}

	return nil
}
