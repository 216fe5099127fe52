package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/config"
	"github.com/open-grid/grid-cli/cli/pkg/gas"
	"github.com/open-grid/grid-cli/cli/pkg/network"
	"github.com/open-grid/grid-cli/cli/pkg/wallet"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Diagnose every configured network",
	Long: `Check each network in grid.toml: RPC reachability, monitor code
presence, owner, node and data counts, peer wiring completeness, and
the operator's native balance.`,
	RunE: runStatus,
}

func init() {
	statusCmd.GroupID = "main"
	rootCmd.AddCommand(statusCmd)
}

// networkStatus is one row of the status table.
type networkStatus struct {
	info     *network.NetworkInfo
	err      error
	owner    string
	nodes    string
	data     string
	wired    string
	operator string
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	resolver, err := network.NewResolver(cfg.ProjectRoot)
	if err != nil {
		return err
	}

	all, err := resolver.ResolveAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No networks configured in grid.toml [rpc_endpoints]")
		return nil
	}

	// Balance checks are best-effort: status still works without the
	// operator key.
	signer, _ := wallet.LoadSigner()

	var rows []networkStatus
	for _, info := range all {
		rows = append(rows, checkNetwork(cmd.Context(), cfg, all, info, signer))
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Network", "Chain", "EID", "Owner", "Nodes", "Data", "Peers", "Operator"})
	for _, row := range rows {
		if row.err != nil {
			t.AppendRow(table.Row{"❌ " + row.info.Name, row.info.ChainID, row.info.Eid, row.err.Error(), "-", "-", "-", "-"})
			continue
		}
		t.AppendRow(table.Row{"✅ " + row.info.Name, row.info.ChainID, row.info.Eid, row.owner, row.nodes, row.data, row.wired, row.operator})
	}
	t.Render()
	return nil
}

func checkNetwork(ctx context.Context, cfg *config.RuntimeConfig, all []*network.NetworkInfo, info *network.NetworkInfo, signer *wallet.Signer) networkStatus {
	status := networkStatus{info: info}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := dialMonitor(ctx, cfg, info)
	if err != nil {
		status.err = err
		return status
	}
	defer client.Close()

	hasCode, err := client.HasCode(ctx)
	if err != nil {
		status.err = err
		return status
	}
	if !hasCode {
		status.err = fmt.Errorf("no code at %s", client.Address.Hex())
		return status
	}

	if owner, err := client.Owner(ctx); err == nil {
		status.owner = owner.Hex()[:10] + "…"
	} else {
		status.owner = "?"
	}

	if count, err := client.NodeCount(ctx); err == nil {
		status.nodes = count.String()
	} else {
		status.nodes = "?"
	}
	if count, err := client.DataCount(ctx); err == nil {
		status.data = count.String()
	} else {
		status.data = "?"
	}

	wired, total := 0, 0
	for _, remote := range all {
		if remote.Name == info.Name {
			continue
		}
		total++
		if peer, err := client.Peer(ctx, remote.Eid); err == nil && peer != ([32]byte{}) {
			wired++
		}
	}
	status.wired = fmt.Sprintf("%d/%d", wired, total)

	status.operator = "-"
	if signer != nil {
		if balance, err := client.Eth.BalanceAt(ctx, signer.Address(), nil); err == nil {
			status.operator = gas.FormatEther(balance) + " ETH"
		}
	}

	return status
}
