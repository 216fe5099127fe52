package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/gas"
	"github.com/open-grid/grid-cli/cli/pkg/interactive"
	"github.com/open-grid/grid-cli/cli/pkg/wallet"
)

var (
	syncTo   string
	syncWait bool
)

var syncCmd = &cobra.Command{
	Use:   "sync <node-id>",
	Short: "Push a node's state to a remote network",
	Long: `Quote the cross-chain fee and call syncNode to replicate a node's
latest state to the destination network's monitor. The destination must
be wired as a peer first (grid peers set).`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.GroupID = "main"
	syncCmd.Flags().StringVar(&syncTo, "to", "", "Destination network")
	syncCmd.Flags().BoolVar(&syncWait, "wait", false, "Poll the scan API until the message is delivered")
	if err := syncCmd.MarkFlagRequired("to"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	resolver, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	dest, err := resolver.Resolve(syncTo)
	if err != nil {
		return err
	}
	if dest.Name == info.Name {
		return fmt.Errorf("cannot sync %s to itself", info.Name)
	}

	nodeID, err := parseNodeID(args[0])
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

	peer, err := client.Peer(ctx, dest.Eid)
	if err != nil {
		return err
	}
	if peer == ([32]byte{}) {
		return fmt.Errorf("%s is not wired to %s: run 'grid peers set %s' first", info.Name, dest.Name, dest.Name)
	}

	quote, err := client.QuoteSyncFee(ctx, dest.Eid, nodeID)
	if err != nil {
		return err
	}

	fmt.Printf("Syncing node %s: %s → %s (eid %d)\n", nodeID, info.Name, dest.Name, dest.Eid)
	fmt.Printf("  Native fee: %s ETH\n", gas.FormatEther(quote.NativeFee))

	if !cfg.NonInteractive && !interactive.Confirm("Send") {
		return fmt.Errorf("sync cancelled")
	}

	tx, err := client.SyncNode(ctx, signer, dest.Eid, nodeID, quote.NativeFee)
	if err != nil {
		return err
	}

	s := startSpinner(fmt.Sprintf("Waiting for transaction %s", tx.Hash().Hex()))
	receipt, err := wallet.WaitMined(ctx, client.Eth, tx.Hash())
	s.Stop()
	if err != nil {
		return err
	}

	var guid common.Hash
	for _, log := range receipt.Logs {
		event, err := client.Binding().UnpackNodeSyncedEvent(log)
		if err != nil {
			continue
		}
		guid = common.Hash(event.Guid)
		break
	}

	color.New(color.FgGreen).Printf("✓ ")
	if guid == (common.Hash{}) {
		fmt.Printf("Sync sent in %s (no NodeSynced event found)\n", tx.Hash().Hex())
		return nil
	}
	fmt.Printf("Sync message %s sent in %s\n", guid.Hex(), tx.Hash().Hex())

	if !syncWait {
		fmt.Printf("Track it with: grid retry %s --network %s\n", guid.Hex(), dest.Name)
		return nil
	}

	scan, err := scanClient(cfg)
	if err != nil {
		return err
	}

	s = startSpinner("Waiting for delivery")
	msg, err := scan.WaitDelivered(guid.Hex(), 5*time.Second, cfg.Timeout)
	s.Stop()
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("✓ ")
	fmt.Printf("Delivered on %s", dest.Name)
	if msg.DstTxHash != nil {
		fmt.Printf(" in %s", *msg.DstTxHash)
	}
	fmt.Println()
	return nil
}
