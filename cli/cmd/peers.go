package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/open-grid/grid-cli/cli/pkg/config"
	"github.com/open-grid/grid-cli/cli/pkg/monitor"
	"github.com/open-grid/grid-cli/cli/pkg/network"
	"github.com/open-grid/grid-cli/cli/pkg/wallet"
)

var peersPlanFile string

var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Wire and inspect cross-chain peer configuration",
	Long: `Manage the peer table of each EnergyMonitor: which remote monitor a
network trusts for each endpoint ID. Two monitors must be wired to each
other before syncNode messages flow between them.`,
}

var peersSetCmd = &cobra.Command{
	Use:   "set <remote-network>",
	Short: "Wire the current network's monitor to a remote monitor",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeersSet,
}

var peersApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Wire monitors according to a YAML plan",
	Long: `Apply a wiring plan. The plan lists networks to mesh fully, plus any
explicit one-way pairs:

  networks:
    - sepolia
    - base-sepolia
  pairs:
    - from: sepolia
      to: amoy

Peers that are already wired correctly are skipped.`,
	RunE: runPeersApply,
}

var peersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current network's peer table",
	RunE:  runPeersList,
}

func init() {
	peersCmd.GroupID = "main"
	peersApplyCmd.Flags().StringVar(&peersPlanFile, "plan", "peers.yaml", "Path to the wiring plan")
	peersCmd.AddCommand(peersSetCmd)
	peersCmd.AddCommand(peersApplyCmd)
	peersCmd.AddCommand(peersListCmd)
	rootCmd.AddCommand(peersCmd)
}

// wiringPlan is the YAML plan peersApplyCmd consumes.
type wiringPlan struct {
	Networks []string `yaml:"networks"`
	Pairs    []struct {
		From string `yaml:"from"`
		To   string `yaml:"to"`
	} `yaml:"pairs"`
}

// links expands the plan into one-way (from, to) wiring steps: a full
// mesh over Networks plus the explicit Pairs.
func (p *wiringPlan) links() [][2]string {
	var out [][2]string
	for _, from := range p.Networks {
		for _, to := range p.Networks {
			if from != to {
				out = append(out, [2]string{from, to})
			}
		}
	}
	for _, pair := range p.Pairs {
		out = append(out, [2]string{pair.From, pair.To})
	}
	return out
}

func runPeersSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	resolver, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	signer, err := wallet.LoadSigner()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	return wirePeer(ctx, cfg, resolver, signer, info.Name, args[0])
}

// wirePeer points `from`'s monitor at `to`'s monitor. Already-wired
// peers are left alone.
func wirePeer(ctx context.Context, cfg *config.RuntimeConfig, resolver *network.Resolver, signer *wallet.Signer, from, to string) error {
	if from == to {
		return fmt.Errorf("cannot wire %s to itself", from)
	}

	fromInfo, err := resolver.Resolve(from)
	if err != nil {
		return err
	}
	toInfo, err := resolver.Resolve(to)
	if err != nil {
		return err
	}

	toMonitor, err := monitorAddress(cfg, toInfo)
	if err != nil {
		return err
	}
	want := monitor.AddressToPeer(toMonitor)

	client, err := dialMonitor(ctx, cfg, fromInfo)
	if err != nil {
		return err
	}
	defer client.Close()

	current, err := client.Peer(ctx, toInfo.Eid)
	if err != nil {
		return err
	}
	if current == want {
		fmt.Printf("  %s → %s already wired (eid %d)\n", from, to, toInfo.Eid)
		return nil
	}

	tx, err := client.SetPeer(ctx, signer, toInfo.Eid, want)
	if err != nil {
		return err
	}

	s := startSpinner(fmt.Sprintf("Wiring %s → %s (eid %d)", from, to, toInfo.Eid))
	_, err = wallet.WaitMined(ctx, client.Eth, tx.Hash())
	s.Stop()
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("✓ ")
	fmt.Printf("%s now trusts %s's monitor %s for eid %d\n", from, to, toMonitor.Hex(), toInfo.Eid)
	return nil
}

func runPeersApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	resolver, err := network.NewResolver(cfg.ProjectRoot)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(peersPlanFile)
	if err != nil {
		return fmt.Errorf("failed to read wiring plan: %w", err)
	}
	var plan wiringPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return fmt.Errorf("failed to parse wiring plan: %w", err)
	}

	links := plan.links()
	if len(links) == 0 {
		return fmt.Errorf("wiring plan %s names no networks or pairs", peersPlanFile)
	}

	signer, err := wallet.LoadSigner()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout*time.Duration(len(links)))
	defer cancel()

	var failed int
	for _, link := range links {
		if err := wirePeer(ctx, cfg, resolver, signer, link[0], link[1]); err != nil {
			color.New(color.FgRed).Printf("✗ ")
			fmt.Printf("%s → %s: %v\n", link[0], link[1], err)
			failed++
		}
	}

	fmt.Printf("\nWired %d of %d links\n", len(links)-failed, len(links))
	if failed > 0 {
		return fmt.Errorf("%d links failed", failed)
	}
	return nil
}

func runPeersList(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	resolver, info, err := currentNetwork(cfg)
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

	all, err := resolver.ResolveAll()
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Remote", "EID", "Peer", "Wired"})

	for _, remote := range all {
		if remote.Name == info.Name {
			continue
		}
		peer, err := client.Peer(ctx, remote.Eid)
		if err != nil {
			return err
		}
		if peer == ([32]byte{}) {
			t.AppendRow(table.Row{remote.Name, remote.Eid, "-", "✗"})
			continue
		}
		t.AppendRow(table.Row{remote.Name, remote.Eid, monitor.PeerToAddress(peer).Hex(), "✓"})
	}

	fmt.Printf("Peer table of %s's monitor %s:\n", info.Name, client.Address.Hex())
	t.Render()
	return nil
}
