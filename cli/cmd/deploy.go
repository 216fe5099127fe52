package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/interactive"
	"github.com/open-grid/grid-cli/cli/pkg/monitor"
	"github.com/open-grid/grid-cli/cli/pkg/registry"
	"github.com/open-grid/grid-cli/cli/pkg/wallet"
)

var (
	deployArtifact string
	deployEndpoint string
	deployOwner    string
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the EnergyMonitor contract to the selected network",
	Long: `Deploy the EnergyMonitor contract from its Foundry build artifact.

The messaging endpoint address is required and network-specific. The
deployment is recorded in deployments.json for the other commands.`,
	RunE: runDeploy,
}

func init() {
	deployCmd.GroupID = "main"
	deployCmd.Flags().StringVar(&deployArtifact, "artifact", "", "Path to the Foundry artifact (default out/EnergyMonitor.sol/EnergyMonitor.json)")
	deployCmd.Flags().StringVar(&deployEndpoint, "endpoint", "", "Messaging endpoint address for this network")
	deployCmd.Flags().StringVar(&deployOwner, "owner", "", "Contract owner (default: operator address)")
	if err := deployCmd.MarkFlagRequired("endpoint"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	_, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	if !common.IsHexAddress(deployEndpoint) {
		return fmt.Errorf("invalid endpoint address: %s", deployEndpoint)
	}
	endpoint := common.HexToAddress(deployEndpoint)

	signer, err := wallet.LoadSigner()
	if err != nil {
		return err
	}

	owner := signer.Address()
	if deployOwner != "" {
		if !common.IsHexAddress(deployOwner) {
			return fmt.Errorf("invalid owner address: %s", deployOwner)
		}
		owner = common.HexToAddress(deployOwner)
	}

	artifactPath := deployArtifact
	if artifactPath == "" {
		artifactPath = monitor.DefaultArtifactPath(cfg.ProjectRoot)
	}
	artifact, err := monitor.LoadArtifact(artifactPath)
	if err != nil {
		return err
	}
	bytecode, err := artifact.Bin()
	if err != nil {
		return err
	}

	reg, err := registry.NewManager(registryPath(cfg))
	if err != nil {
		return err
	}
	if existing := reg.Monitor(info.ChainID); existing != nil {
		color.New(color.FgYellow).Printf("⚠ %s already has a monitor at %s\n", info.Name, existing.Address.Hex())
		if !cfg.NonInteractive && !interactive.Confirm("Deploy a new monitor anyway") {
			return fmt.Errorf("deployment cancelled")
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	client, err := monitor.Dial(ctx, info.RpcUrl, common.Address{}, info.ChainID)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Printf("Deploying EnergyMonitor to %s (chain %d)\n", info.Name, info.ChainID)
	fmt.Printf("  Endpoint: %s\n", endpoint.Hex())
	fmt.Printf("  Owner:    %s\n", owner.Hex())

	tx, err := monitor.Deploy(ctx, client.Eth, client.ChainID, signer, bytecode, endpoint, owner)
	if err != nil {
		return err
	}

	s := startSpinner(fmt.Sprintf("Waiting for transaction %s", tx.Hash().Hex()))
	receipt, err := wallet.WaitMined(ctx, client.Eth, tx.Hash())
	s.Stop()
	if err != nil {
		return err
	}

	deployment := &registry.Deployment{
		Address:     receipt.ContractAddress,
		Deployer:    signer.Address(),
		Endpoint:    endpoint,
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		Timestamp:   time.Now().UTC(),
	}
	if err := reg.RecordMonitor(info.Name, info.ChainID, deployment); err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("✓ ")
	fmt.Printf("EnergyMonitor deployed at %s (block %d)\n", receipt.ContractAddress.Hex(), receipt.BlockNumber.Uint64())
	return nil
}
