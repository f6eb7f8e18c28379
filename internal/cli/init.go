package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/nodewatch/internal/config"
	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/rileyhilliard/nodewatch/pkg/sshutil"
	"github.com/spf13/cobra"
)

var (
	initForce     bool
	initNodeFlag  string
	initIPFlag    string
	initSSHFlag   string
	initWebserver bool
)

// initCmd scaffolds a .nodewatch.yaml in the current directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .nodewatch.yaml configuration",
	Long: `Scaffold a monitoring config in the current directory with default
thresholds and your first node. Without flags, prompts interactively and
offers aliases from ~/.ssh/config as SSH targets.

Examples:
  nodewatch init
  nodewatch init --node web-1 --ip 192.0.2.10
  nodewatch init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config")
	initCmd.Flags().StringVar(&initNodeFlag, "node", "", "first node's name (skips prompts)")
	initCmd.Flags().StringVar(&initIPFlag, "ip", "", "first node's IP address")
	initCmd.Flags().StringVar(&initSSHFlag, "ssh", "", "first node's SSH target for metrics")
	initCmd.Flags().BoolVar(&initWebserver, "webserver", false, "probe the node over HTTP too")
}

func initCommand() error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !initForce {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config file already exists: %s", configPath),
			"Use --force to overwrite")
	}

	cfg := config.DefaultConfig()

	name, node, err := firstNode()
	if err != nil {
		return err
	}
	cfg.Nodes[name] = node

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("Wrote %s with node '%s'.\n", configPath, name)
	fmt.Println("Next: nodewatch check " + name)
	return nil
}

// firstNode gets the first node entry from flags or prompts.
func firstNode() (string, config.Node, error) {
	if initNodeFlag != "" {
		if initIPFlag == "" {
			return "", config.Node{}, errors.New(errors.ErrConfig,
				"--node requires --ip",
				"Pass the node's IP address, e.g. --ip 192.0.2.10")
		}
		return initNodeFlag, config.Node{
			IP:           initIPFlag,
			SSH:          initSSHFlag,
			HasWebserver: initWebserver,
		}, nil
	}

	var name, ip, sshTarget string
	var webserver bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Node name").
				Description("A stable name for this node in dashboards and alerts").
				Placeholder("web-1").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("node name is required")
					}
					if strings.ContainsAny(s, " \t\n") {
						return fmt.Errorf("node name cannot contain whitespace")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("IP address").
				Description("Address for reachability probes (ping, SSH port, HTTP)").
				Placeholder("192.0.2.10").
				Value(&ip).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("IP address is required")
					}
					return nil
				}),
		),
		huh.NewGroup(sshTargetField(&sshTarget)),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Does this node serve HTTP?").
				Description("Adds an HTTP probe to its health checks").
				Value(&webserver),
		),
	)

	if err := form.Run(); err != nil {
		return "", config.Node{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Re-run with flags instead: nodewatch init --node <name> --ip <addr>")
	}

	return strings.TrimSpace(name), config.Node{
		IP:           strings.TrimSpace(ip),
		SSH:          strings.TrimSpace(sshTarget),
		HasWebserver: webserver,
	}, nil
}

// sshTargetField offers ~/.ssh/config aliases when any exist, falling
// back to a free-form input.
func sshTargetField(value *string) huh.Field {
	hosts, err := sshutil.ParseSSHConfig()
	if err == nil {
		// Aliases without a usable key would just fail at collect time.
		hosts = sshutil.FilterHostsWithKeys(hosts)
	}
	if err != nil || len(hosts) == 0 {
		return huh.NewInput().
			Title("SSH target for metrics (optional)").
			Description("hostname, user@host, or SSH config alias; empty uses the IP").
			Placeholder("admin@192.0.2.10").
			Value(value)
	}

	options := []huh.Option[string]{huh.NewOption("(use the IP address)", "")}
	for _, h := range hosts {
		label := h.Alias
		if desc := h.Description(); desc != h.Alias {
			label = fmt.Sprintf("%s (%s)", h.Alias, desc)
		}
		options = append(options, huh.NewOption(label, h.Alias))
	}

	return huh.NewSelect[string]().
		Title("SSH target for metrics").
		Description("Aliases from ~/.ssh/config").
		Options(options...).
		Value(value)
}
