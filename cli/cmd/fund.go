package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/config"
	"github.com/open-grid/grid-cli/cli/pkg/gas"
	"github.com/open-grid/grid-cli/cli/pkg/interactive"
	"github.com/open-grid/grid-cli/cli/pkg/wallet"
)

var fundTo string

var fundCmd = &cobra.Command{
	Use:   "fund <amount-ether>",
	Short: "Send native tokens to the monitor contract",
	Long: `Transfer native gas tokens from the operator account to the monitor
contract on the selected network. Monitors spend native balance on
cross-chain message fees.

The recipient is the monitor contract by default; --to keeper targets
the operator address from 'grid config set operator', and a raw
address is accepted too. The amount is in ether units of the network's
native token.`,
	Args: cobra.ExactArgs(1),
	RunE: runFund,
}

func init() {
	fundCmd.GroupID = "main"
	fundCmd.Flags().StringVar(&fundTo, "to", "contract", "Recipient: contract, keeper, or an address")
	rootCmd.AddCommand(fundCmd)
}

// fundRecipient resolves the --to value: the monitor contract, the
// keeper (the configured operator address), or a raw address.
func fundRecipient(to string, contract common.Address, operator string) (common.Address, error) {
	switch {
	case to == "" || to == "contract":
		return contract, nil
	case to == "keeper":
		if !common.IsHexAddress(operator) {
			return common.Address{}, fmt.Errorf("keeper target needs an operator address: run 'grid config set operator <address>'")
		}
		return common.HexToAddress(operator), nil
	case common.IsHexAddress(to):
		return common.HexToAddress(to), nil
	}
	return common.Address{}, fmt.Errorf("invalid recipient %q: use contract, keeper, or an address", to)
}

func runFund(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	_, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	amount, err := gas.ParseEther(args[0])
	if err != nil {
		return err
	}
	if amount.Sign() == 0 {
		return fmt.Errorf("amount must be positive")
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

	local, err := config.NewManager(cfg.ProjectRoot).Load()
	if err != nil {
		return err
	}
	to, err := fundRecipient(fundTo, client.Address, local.Operator)
	if err != nil {
		return err
	}

	operatorBalance, err := client.Eth.BalanceAt(ctx, signer.Address(), nil)
	if err != nil {
		return fmt.Errorf("failed to get operator balance: %w", err)
	}
	if operatorBalance.Cmp(amount) < 0 {
		return fmt.Errorf("operator balance %s ETH is below the requested %s ETH",
			gas.FormatEther(operatorBalance), gas.FormatEther(amount))
	}

	recipientBalance, err := client.Eth.BalanceAt(ctx, to, nil)
	if err != nil {
		return fmt.Errorf("failed to get recipient balance: %w", err)
	}

	fmt.Printf("Funding on %s:\n", info.Name)
	fmt.Printf("  From:   %s (%s ETH)\n", signer.Address().Hex(), gas.FormatEther(operatorBalance))
	fmt.Printf("  To:     %s (%s ETH)\n", to.Hex(), gas.FormatEther(recipientBalance))
	fmt.Printf("  Amount: %s ETH\n", gas.FormatEther(amount))

	if !cfg.NonInteractive && !interactive.Confirm("Send") {
		return fmt.Errorf("funding cancelled")
	}

	tx, err := signer.SendTx(ctx, client.Eth, client.ChainID, &to, amount, nil)
	if err != nil {
		return err
	}

	s := startSpinner(fmt.Sprintf("Waiting for transaction %s", tx.Hash().Hex()))
	_, err = wallet.WaitMined(ctx, client.Eth, tx.Hash())
	s.Stop()
	if err != nil {
		return err
	}

	after, err := client.Eth.BalanceAt(ctx, to, nil)
	if err != nil {
		return fmt.Errorf("failed to get recipient balance: %w", err)
	}

	color.New(color.FgGreen).Printf("✓ ")
	fmt.Printf("Sent %s ETH; %s now holds %s ETH\n", gas.FormatEther(amount), to.Hex(), gas.FormatEther(after))
	return nil
}
