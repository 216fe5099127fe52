package cmd

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/config"
	"github.com/open-grid/grid-cli/cli/pkg/gas"
	"github.com/open-grid/grid-cli/cli/pkg/monitor"
	"github.com/open-grid/grid-cli/cli/pkg/network"
)

var costGasPrice string

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Estimate operation costs and sync fees",
	Long: `Show the estimated native cost of each monitor operation at a gas
price, plus live cross-chain sync fee quotes when the selected
network's monitor is reachable.

Without --gas-price the live suggested price of the selected network
is used.`,
	RunE: runCost,
}

var costConvertCmd = &cobra.Command{
	Use:   "convert <amount> <wei|gwei|ether>",
	Short: "Convert between wei, gwei and ether",
	Args:  cobra.ExactArgs(2),
	RunE:  runCostConvert,
}

func init() {
	costCmd.GroupID = "main"
	costCmd.Flags().StringVar(&costGasPrice, "gas-price", "", "Gas price in gwei (default: live suggested price)")
	costCmd.AddCommand(costConvertCmd)
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	var gasPrice *big.Int
	priceSource := "flag"
	if costGasPrice != "" {
		if gasPrice, err = gas.ParseGwei(costGasPrice); err != nil {
			return err
		}
	}

	// A reachable monitor supplies the live gas price and sync quotes.
	resolver, info, netErr := currentNetwork(cfg)
	if netErr == nil {
		client, dialErr := dialMonitor(ctx, cfg, info)
		if dialErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot reach %s's monitor (%v); sync quotes unavailable\n", info.Name, dialErr)
		} else {
			defer client.Close()

			if gasPrice == nil {
				if gasPrice, err = client.Eth.SuggestGasPrice(ctx); err != nil {
					return fmt.Errorf("failed to get gas price: %w", err)
				}
				priceSource = info.Name
			}

			if err := printOperationCosts(gasPrice, priceSource); err != nil {
				return err
			}
			return printSyncQuotes(ctx, cfg, resolver, info, client)
		}
	}

	if gasPrice == nil {
		return fmt.Errorf("no reachable network for a live gas price: pass --gas-price")
	}
	return printOperationCosts(gasPrice, priceSource)
}

func printOperationCosts(gasPrice *big.Int, source string) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Operation", "Gas", "Cost (ETH)"})
	for _, op := range gas.Operations() {
		cost := gas.TxCost(gas.OperationGas[op], gasPrice)
		t.AppendRow(table.Row{op, gas.OperationGas[op], gas.FormatEther(cost)})
	}

	fmt.Printf("Costs at %s gwei (%s):\n", gas.FormatGwei(gasPrice), source)
	t.Render()
	return nil
}

func printSyncQuotes(ctx context.Context, cfg *config.RuntimeConfig, resolver *network.Resolver, info *network.NetworkInfo, client *monitor.Client) error {
	all, err := resolver.ResolveAll()
	if err != nil {
		return err
	}

	count, err := client.NodeCount(ctx)
	if err != nil || count.Sign() == 0 {
		// Quotes need a registered node; skip quietly.
		return nil
	}
	nodeID := big.NewInt(1)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Destination", "EID", "Native Fee (ETH)"})

	quoted := 0
	for _, remote := range all {
		if remote.Name == info.Name {
			continue
		}
		quote, err := client.QuoteSyncFee(ctx, remote.Eid, nodeID)
		if err != nil {
			t.AppendRow(table.Row{remote.Name, remote.Eid, "unavailable"})
			continue
		}
		t.AppendRow(table.Row{remote.Name, remote.Eid, gas.FormatEther(quote.NativeFee)})
		quoted++
	}

	fmt.Printf("\nSync fee quotes from %s (node %s):\n", info.Name, nodeID)
	t.Render()
	return nil
}

func runCostConvert(cmd *cobra.Command, args []string) error {
	var wei *big.Int
	var err error

	switch strings.ToLower(args[1]) {
	case "wei":
		var ok bool
		if wei, ok = new(big.Int).SetString(args[0], 10); !ok || wei.Sign() < 0 {
			return fmt.Errorf("invalid wei value: %s", args[0])
		}
	case "gwei":
		if wei, err = gas.ParseGwei(args[0]); err != nil {
			return err
		}
	case "ether", "eth":
		if wei, err = gas.ParseEther(args[0]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown unit %q: use wei, gwei, or ether", args[1])
	}

	fmt.Printf("  wei:   %s\n", wei.String())
	fmt.Printf("  gwei:  %s\n", gas.FormatGwei(wei))
	fmt.Printf("  ether: %s\n", gas.FormatEther(wei))
	return nil
}
