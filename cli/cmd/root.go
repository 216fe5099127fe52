package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/config"
	"github.com/open-grid/grid-cli/cli/pkg/monitor"
	"github.com/open-grid/grid-cli/cli/pkg/network"
	"github.com/open-grid/grid-cli/cli/pkg/registry"
	"github.com/open-grid/grid-cli/cli/pkg/relay"
)

var (
	networkFlag    string
	nonInteractive bool
	debugFlag      bool
	timeoutFlag    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "grid",
	Short: "Operate EnergyMonitor deployments across test networks",
	Long: `Grid manages the Open Grid energy monitor contracts replicated across
EVM test networks: deploy, wire peers, fund, register nodes, push
readings, and inspect cross-chain sync state.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&networkFlag, "network", "n", "", "Network to operate on (from grid.toml)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Timeout for on-chain operations (default 2m)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Commands self-register via init() in their respective files.
	rootCmd.AddCommand(versionCmd)
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadRuntime merges flags, GRID_* env vars, and the local config file.
func loadRuntime(cmd *cobra.Command) (*config.RuntimeConfig, error) {
	return config.BuildRuntime(cmd.Root().PersistentFlags())
}

// currentNetwork resolves the selected network from grid.toml.
func currentNetwork(cfg *config.RuntimeConfig) (*network.Resolver, *network.NetworkInfo, error) {
	resolver, err := network.NewResolver(cfg.ProjectRoot)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Network == "" {
		return nil, nil, fmt.Errorf("no network selected: pass --network or run 'grid config set network <name>'")
	}

	info, err := resolver.Resolve(cfg.Network)
	if err != nil {
		return nil, nil, err
	}
	return resolver, info, nil
}

func registryPath(cfg *config.RuntimeConfig) string {
	return filepath.Join(cfg.ProjectRoot, "deployments.json")
}

// monitorAddress finds the EnergyMonitor address for a network: the
// grid.toml pin wins, the deployment registry is the fallback.
func monitorAddress(cfg *config.RuntimeConfig, info *network.NetworkInfo) (common.Address, error) {
	if info.HasMonitor() {
		return info.Monitor, nil
	}

	reg, err := registry.NewManager(registryPath(cfg))
	if err != nil {
		return common.Address{}, err
	}
	if d := reg.Monitor(info.ChainID); d != nil {
		return d.Address, nil
	}

	return common.Address{}, fmt.Errorf("no monitor deployment known for %s: run 'grid deploy' first", info.Name)
}

// dialMonitor connects to a network's monitor contract.
func dialMonitor(ctx context.Context, cfg *config.RuntimeConfig, info *network.NetworkInfo) (*monitor.Client, error) {
	address, err := monitorAddress(cfg, info)
	if err != nil {
		return nil, err
	}
	return monitor.Dial(ctx, info.RpcUrl, address, info.ChainID)
}

// scanClient builds the scan API client, honoring the scan_url override
// from the local config file.
func scanClient(cfg *config.RuntimeConfig) (*relay.Client, error) {
	local, err := config.NewManager(cfg.ProjectRoot).Load()
	if err != nil {
		return nil, err
	}

	client := relay.NewClient()
	if local.ScanURL != "" {
		client = relay.NewClientWithURL(local.ScanURL)
	}
	client.SetDebug(cfg.Debug)
	return client, nil
}

// startSpinner creates and starts a progress spinner.
func startSpinner(message string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Color("cyan", "bold")
	s.Start()
	return s
}
