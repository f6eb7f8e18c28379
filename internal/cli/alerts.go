package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	alertsJSON bool
	alertsAll  bool
)

// alertsCmd lists alerts; subcommands mutate their lifecycle.
var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List and manage alerts",
	Long: `List active alerts, or every alert ever raised with --all.
Use the ack and resolve subcommands to work an alert.

Examples:
  nodewatch alerts
  nodewatch alerts --all
  nodewatch alerts ack 4f1c...
  nodewatch alerts resolve 4f1c...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = alertsJSON
		return alertsListCommand()
	},
}

// alertsAckCmd marks an alert as seen without resolving it.
var alertsAckCmd = &cobra.Command{
	Use:   "ack <alert-id>",
	Short: "Acknowledge an alert",
	Long: `Mark an alert as seen by an operator. Acknowledged alerts stay
active and keep suppressing duplicates until resolved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return alertsAckCommand(args[0])
	},
}

// alertsResolveCmd closes an alert out.
var alertsResolveCmd = &cobra.Command{
	Use:   "resolve <alert-id>",
	Short: "Resolve an alert",
	Long: `Mark an alert as no longer active. The record is kept for the
--all listing, and a new breach of the same condition will alert again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return alertsResolveCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(alertsCmd)
	alertsCmd.AddCommand(alertsAckCmd)
	alertsCmd.AddCommand(alertsResolveCmd)
	alertsCmd.Flags().BoolVar(&alertsJSON, "json", false, "output in JSON format")
	alertsCmd.Flags().BoolVar(&alertsAll, "all", false, "include resolved alerts")
}

func alertsListCommand() error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	alerts := eng.Alerts().Active()
	if alertsAll {
		alerts = eng.Alerts().All()
	}

	if alertsJSON {
		return WriteJSONSuccess(os.Stdout, alerts)
	}
	fmt.Print(renderAlerts(alerts))
	return nil
}

func alertsAckCommand(id string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	if err := eng.Alerts().Acknowledge(id); err != nil {
		return err
	}
	if err := eng.SaveState(); err != nil {
		return err
	}

	fmt.Printf("Acknowledged %s\n", id)
	return nil
}

func alertsResolveCommand(id string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	if err := eng.Alerts().Resolve(id); err != nil {
		return err
	}
	if err := eng.SaveState(); err != nil {
		return err
	}

	fmt.Printf("Resolved %s\n", id)
	return nil
}
