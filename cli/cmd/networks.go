package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/network"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List available networks from grid.toml",
	Long: `List all networks configured in the [rpc_endpoints] section of
grid.toml, with their chain IDs and endpoint IDs, and check that each
RPC actually answers with the expected chain ID.`,
	RunE: runNetworks,
}

func init() {
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)
}

func runNetworks(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	resolver, err := network.NewResolver(cfg.ProjectRoot)
	if err != nil {
		return err
	}

	names := resolver.Networks()
	if len(names) == 0 {
		fmt.Println("No networks configured in grid.toml [rpc_endpoints]")
		return nil
	}

	fmt.Println("🌐 Available Networks:")
	fmt.Println()

	for _, name := range names {
		info, err := resolver.Resolve(name)
		if err != nil {
			fmt.Printf("  ❌ %s - Error: %v\n", name, err)
			continue
		}

		if err := pingNetwork(cmd.Context(), info); err != nil {
			fmt.Printf("  ❌ %s - Chain ID: %d, EID: %d - %v\n", name, info.ChainID, info.Eid, err)
			continue
		}
		fmt.Printf("  ✅ %s - Chain ID: %d, EID: %d\n", name, info.ChainID, info.Eid)
	}

	return nil
}

func pingNetwork(ctx context.Context, info *network.NetworkInfo) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, info.RpcUrl)
	if err != nil {
		return fmt.Errorf("unreachable: %v", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("unreachable: %v", err)
	}
	if chainID.Uint64() != info.ChainID {
		if name := network.ChainName(chainID.Uint64()); name != "" {
			return fmt.Errorf("RPC reports chain %d (%s)", chainID.Uint64(), name)
		}
		return fmt.Errorf("RPC reports chain %d", chainID.Uint64())
	}
	return nil
}
