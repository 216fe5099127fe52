package cmd

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/config"
	"github.com/open-grid/grid-cli/cli/pkg/interactive"
	"github.com/open-grid/grid-cli/cli/pkg/monitor"
	"github.com/open-grid/grid-cli/cli/pkg/wallet"
)

var nodeLocation string

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Manage energy nodes on the selected network",
	Long: `Register, list, and toggle energy nodes on the monitor contract.
Node IDs are assigned by the contract, starting at 1.`,
}

var nodesRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new energy node",
	RunE:  runNodesRegister,
}

var nodesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered nodes",
	Run: func(cmd *cobra.Command, args []string) {
		checkError(runNodesList(cmd, args))
	},
}

var nodesActivateCmd = &cobra.Command{
	Use:   "activate [node-id]",
	Short: "Mark a node active",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNodesToggle(cmd, args, true)
	},
}

var nodesDeactivateCmd = &cobra.Command{
	Use:   "deactivate [node-id]",
	Short: "Mark a node inactive",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNodesToggle(cmd, args, false)
	},
}

func init() {
	nodesCmd.GroupID = "main"
	nodesRegisterCmd.Flags().StringVar(&nodeLocation, "location", "", "Node location, e.g. lat:40.7128,lon:-74.0060")
	if err := nodesRegisterCmd.MarkFlagRequired("location"); err != nil {
		panic(err)
	}
	nodesCmd.AddCommand(nodesRegisterCmd)
	nodesCmd.AddCommand(nodesListCmd)
	nodesCmd.AddCommand(nodesActivateCmd)
	nodesCmd.AddCommand(nodesDeactivateCmd)
	rootCmd.AddCommand(nodesCmd)
}

func runNodesRegister(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	_, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	signer, err := wallet.LoadSigner()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	client, err := dialMonitor(ctx, cfg, info)
	if err != nil {
		return err
	}
	defer client.Close()

	tx, err := client.RegisterNode(ctx, signer, nodeLocation)
	if err != nil {
		return err
	}

	s := startSpinner(fmt.Sprintf("Waiting for transaction %s", tx.Hash().Hex()))
	receipt, err := wallet.WaitMined(ctx, client.Eth, tx.Hash())
	s.Stop()
	if err != nil {
		return err
	}

	// The NodeRegistered event carries the assigned ID.
	for _, log := range receipt.Logs {
		event, err := client.Binding().UnpackNodeRegisteredEvent(log)
		if err != nil {
			continue
		}
		color.New(color.FgGreen).Printf("✓ ")
		fmt.Printf("Node %s registered at %s on %s\n", event.NodeId, event.Location, info.Name)
		return nil
	}

	color.New(color.FgGreen).Printf("✓ ")
	fmt.Printf("Node registered on %s (tx %s)\n", info.Name, tx.Hash().Hex())
	return nil
}

// loadNodes fetches all node records from the monitor, in ID order.
func loadNodes(ctx context.Context, client *monitor.Client) ([]monitor.EnergyMonitorNode, error) {
	count, err := client.NodeCount(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make([]monitor.EnergyMonitorNode, 0, count.Int64())
	for id := int64(1); id <= count.Int64(); id++ {
		node, err := client.Node(ctx, big.NewInt(id))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func runNodesList(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	_, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	client, err := dialMonitor(ctx, cfg, info)
	if err != nil {
		return err
	}
	defer client.Close()

	nodes, err := loadNodes(ctx, client)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		fmt.Printf("No nodes registered on %s\n", info.Name)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Location", "Active", "Registered", "Owner"})
	for _, node := range nodes {
		active := "✗"
		if node.Active {
			active = "✓"
		}
		registered := time.Unix(node.RegisteredAt.Int64(), 0).UTC().Format("2006-01-02 15:04")
		t.AppendRow(table.Row{node.Id, node.Location, active, registered, node.Owner.Hex()})
	}

	fmt.Printf("Nodes on %s:\n", info.Name)
	t.Render()

	activeCount := lo.CountBy(nodes, func(n monitor.EnergyMonitorNode) bool { return n.Active })
	fmt.Printf("%d nodes, %d active\n", len(nodes), activeCount)
	return nil
}

// pickNode resolves the node argument, falling back to an interactive
// picker over nodes currently in the opposite state.
func pickNode(ctx context.Context, cfg *config.RuntimeConfig, client *monitor.Client, args []string, wantActive bool) (*big.Int, error) {
	if len(args) == 1 {
		id, ok := new(big.Int).SetString(args[0], 10)
		if !ok || id.Sign() <= 0 {
			return nil, fmt.Errorf("invalid node ID: %s", args[0])
		}
		return id, nil
	}

	if cfg.NonInteractive {
		return nil, fmt.Errorf("node ID required in non-interactive mode")
	}

	nodes, err := loadNodes(ctx, client)
	if err != nil {
		return nil, err
	}
	candidates := lo.Filter(nodes, func(n monitor.EnergyMonitorNode, _ int) bool {
		return n.Active != wantActive
	})
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no nodes to toggle")
	}

	options := lo.Map(candidates, func(n monitor.EnergyMonitorNode, _ int) string {
		return fmt.Sprintf("Node %s — %s", n.Id, n.Location)
	})
	index, err := interactive.SelectOption("Select node", options)
	if err != nil {
		return nil, err
	}
	return candidates[index].Id, nil
}

func runNodesToggle(cmd *cobra.Command, args []string, active bool) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	_, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	signer, err := wallet.LoadSigner()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	client, err := dialMonitor(ctx, cfg, info)
	if err != nil {
		return err
	}
	defer client.Close()

	nodeID, err := pickNode(ctx, cfg, client, args, active)
	if err != nil {
		return err
	}

	node, err := client.Node(ctx, nodeID)
	if err != nil {
		return err
	}
	if node.Active == active {
		fmt.Printf("Node %s is already %s\n", nodeID, stateWord(active))
		return nil
	}

	tx, err := client.SetNodeActive(ctx, signer, nodeID, active)
	if err != nil {
		return err
	}

	s := startSpinner(fmt.Sprintf("Waiting for transaction %s", tx.Hash().Hex()))
	_, err = wallet.WaitMined(ctx, client.Eth, tx.Hash())
	s.Stop()
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("✓ ")
	fmt.Printf("Node %s is now %s on %s\n", nodeID, stateWord(active), info.Name)
	return nil
}

func stateWord(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
