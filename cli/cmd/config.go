package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/config"
	"github.com/open-grid/grid-cli/cli/pkg/network"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage local grid configuration",
	Long: `Read and write .grid/config.local.json.

Keys:
  network   default network for commands (overridden by --network)
  operator  operator address, informational
  scan-url  scan API base URL override`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, err := network.FindProjectRoot()
		if err != nil {
			return err
		}
		if err := config.NewManager(projectRoot).Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, err := network.FindProjectRoot()
		if err != nil {
			return err
		}
		value, err := config.NewManager(projectRoot).Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, err := network.FindProjectRoot()
		if err != nil {
			return err
		}
		cfg, err := config.NewManager(projectRoot).List()
		if err != nil {
			return err
		}
		fmt.Printf("network:  %s\n", orUnset(cfg.Network))
		fmt.Printf("operator: %s\n", orUnset(cfg.Operator))
		fmt.Printf("scan-url: %s\n", orUnset(cfg.ScanURL))
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func init() {
	configCmd.GroupID = "management"
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
