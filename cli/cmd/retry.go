package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/gas"
	"github.com/open-grid/grid-cli/cli/pkg/interactive"
	"github.com/open-grid/grid-cli/cli/pkg/monitor"
	"github.com/open-grid/grid-cli/cli/pkg/network"
	"github.com/open-grid/grid-cli/cli/pkg/relay"
	"github.com/open-grid/grid-cli/cli/pkg/wallet"
)

var retryFee string

var retryCmd = &cobra.Command{
	Use:   "retry <tx-hash|guid>",
	Short: "Re-execute a stuck cross-chain message",
	Long: `Look up a cross-chain message on the scan API by source transaction
hash or message GUID. For a failed or stored payload, re-execute it on
the destination monitor via retrySync and poll until delivered.

Delivered messages are left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runRetry,
}

func init() {
	retryCmd.GroupID = "main"
	retryCmd.Flags().StringVar(&retryFee, "fee", "0", "Native fee in ether to attach to the retry")
	rootCmd.AddCommand(retryCmd)
}

// findMessage resolves the argument as a GUID first, then as a source
// transaction hash.
func findMessage(scan *relay.Client, ref string) (*relay.Message, error) {
	if msg, err := scan.MessageByGUID(ref); err == nil {
		return msg, nil
	} else if !errors.Is(err, relay.ErrMessageNotFound) {
		return nil, err
	}

	if !strings.HasPrefix(ref, "0x") || len(ref) != 66 {
		return nil, fmt.Errorf("%s is neither a known GUID nor a transaction hash", ref)
	}

	messages, err := scan.MessagesByTx(common.HexToHash(ref))
	if err != nil {
		return nil, err
	}
	switch len(messages) {
	case 0:
		return nil, relay.ErrMessageNotFound
	case 1:
		return &messages[0], nil
	}

	options := make([]string, len(messages))
	for i, msg := range messages {
		options[i] = fmt.Sprintf("%s — eid %d → %d, %s", msg.GUID, msg.SrcEid, msg.DstEid, msg.Status.Label())
	}
	index, err := interactive.SelectOption("Transaction carries several messages", options)
	if err != nil {
		return nil, err
	}
	return &messages[index], nil
}

func runRetry(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	// Retry does not need a selected network: the destination comes
	// from the message itself.
	resolver, err := network.NewResolver(cfg.ProjectRoot)
	if err != nil {
		return err
	}

	scan, err := scanClient(cfg)
	if err != nil {
		return err
	}

	msg, err := findMessage(scan, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Message %s\n", msg.GUID)
	fmt.Printf("  Route:  eid %d → eid %d (nonce %d)\n", msg.SrcEid, msg.DstEid, msg.Nonce)
	fmt.Printf("  Status: %s\n", msg.Status.Label())

	switch {
	case msg.Status == relay.StatusDelivered:
		return fmt.Errorf("message is already delivered, nothing to retry")
	case msg.Status == relay.StatusInflight:
		return fmt.Errorf("message is still in flight, wait before retrying")
	case !msg.Status.Retryable():
		return fmt.Errorf("message status %s cannot be retried", msg.Status.Label())
	}

	dest, err := resolver.ByEid(msg.DstEid)
	if err != nil {
		return err
	}

	fee, err := gas.ParseEther(retryFee)
	if err != nil {
		return err
	}

	if !common.IsHexAddress(msg.Sender) {
		return fmt.Errorf("scan API returned an invalid sender: %s", msg.Sender)
	}
	sender := monitor.AddressToPeer(common.HexToAddress(msg.Sender))
	payload := common.FromHex(msg.Payload)
	if len(payload) == 0 {
		return fmt.Errorf("scan API returned an empty payload for %s", msg.GUID)
	}

	signer, err := wallet.LoadSigner()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	client, err := dialMonitor(ctx, cfg, dest)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Printf("Re-executing on %s (monitor %s, fee %s ETH)\n", dest.Name, client.Address.Hex(), gas.FormatEther(fee))
	if !cfg.NonInteractive && !interactive.Confirm("Retry") {
		return fmt.Errorf("retry cancelled")
	}

	tx, err := client.RetrySync(ctx, signer, msg.SrcEid, sender, msg.Nonce, payload, fee)
	if err != nil {
		return err
	}

	s := startSpinner(fmt.Sprintf("Waiting for transaction %s", tx.Hash().Hex()))
	_, err = wallet.WaitMined(ctx, client.Eth, tx.Hash())
	s.Stop()
	if err != nil {
		return err
	}

	s = startSpinner("Waiting for the scan API to confirm delivery")
	final, err := scan.WaitDelivered(msg.GUID, 5*time.Second, cfg.Timeout)
	s.Stop()
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("✓ ")
	fmt.Printf("Message %s delivered", final.GUID)
	if final.DstTxHash != nil {
		fmt.Printf(" in %s", *final.DstTxHash)
	}
	fmt.Println()
	return nil
}
