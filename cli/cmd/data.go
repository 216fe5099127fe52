package cmd

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-grid/grid-cli/cli/pkg/dataset"
	"github.com/open-grid/grid-cli/cli/pkg/monitor"
	"github.com/open-grid/grid-cli/cli/pkg/wallet"
)

var (
	dataNodeID          string
	dataLocation        string
	includeAnomalies    bool
	batchLimit          int
	batchNodeIDOverride string
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Submit and inspect energy readings",
	Long: `Push kWh readings to the monitor contract, one at a time or in bulk
from the data generator's CSV export. Readings are stored on chain in
milli-kWh.`,
}

var dataSubmitCmd = &cobra.Command{
	Use:   "submit <kwh>",
	Short: "Submit a single reading for a node",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataSubmit,
}

var dataBatchCmd = &cobra.Command{
	Use:   "batch <csv-file>",
	Short: "Submit readings from a generator CSV export",
	Long: `Submit every reading in a CSV export. Rows flagged as anomalies are
skipped unless --include-anomalies is set. Failed rows do not stop the
batch; a summary is printed at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: runDataBatch,
}

var dataLatestCmd = &cobra.Command{
	Use:   "latest <node-id>",
	Short: "Show a node's most recent reading",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataLatest,
}

func init() {
	dataCmd.GroupID = "main"
	dataSubmitCmd.Flags().StringVar(&dataNodeID, "node", "", "Node ID to submit for")
	dataSubmitCmd.Flags().StringVar(&dataLocation, "location", "", "Reading location (default: the node's location)")
	if err := dataSubmitCmd.MarkFlagRequired("node"); err != nil {
		panic(err)
	}
	dataBatchCmd.Flags().BoolVar(&includeAnomalies, "include-anomalies", false, "Submit rows flagged as anomalies")
	dataBatchCmd.Flags().IntVar(&batchLimit, "limit", 0, "Submit at most this many rows (0 = all)")
	dataBatchCmd.Flags().StringVar(&batchNodeIDOverride, "node", "", "Submit every row to this node ID instead of the CSV's node_id")
	dataCmd.AddCommand(dataSubmitCmd)
	dataCmd.AddCommand(dataBatchCmd)
	dataCmd.AddCommand(dataLatestCmd)
	rootCmd.AddCommand(dataCmd)
}

func parseNodeID(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 10)
	if !ok || id.Sign() <= 0 {
		return nil, fmt.Errorf("invalid node ID: %s", s)
	}
	return id, nil
}

func runDataSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	_, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	nodeID, err := parseNodeID(dataNodeID)
	if err != nil {
		return err
	}

	// kWh readings are decimal; the contract stores milli-kWh.
	kwhRat, ok := new(big.Rat).SetString(args[0])
	if !ok || kwhRat.Sign() < 0 {
		return fmt.Errorf("invalid kwh value: %s", args[0])
	}
	milli := new(big.Rat).Mul(kwhRat, big.NewRat(1000, 1))
	if !milli.IsInt() {
		return fmt.Errorf("kwh value %s has sub-milli precision", args[0])
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

	location := dataLocation
	if location == "" {
		node, err := client.Node(ctx, nodeID)
		if err != nil {
			return err
		}
		location = node.Location
	}

	tx, err := client.UpdateData(ctx, signer, nodeID, milli.Num(), location)
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
	fmt.Printf("Reading %s kWh recorded for node %s on %s\n", args[0], nodeID, info.Name)
	return nil
}

func runDataBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	_, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	readings, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	var nodeOverride *big.Int
	if batchNodeIDOverride != "" {
		if nodeOverride, err = parseNodeID(batchNodeIDOverride); err != nil {
			return err
		}
	}

	signer, err := wallet.LoadSigner()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	client, err := dialMonitor(ctx, cfg, info)
	if err != nil {
		return err
	}
	defer client.Close()

	var submitted, skipped, failed int
	for i, reading := range readings {
		if batchLimit > 0 && submitted >= batchLimit {
			break
		}
		if reading.Anomaly && !includeAnomalies {
			skipped++
			continue
		}

		nodeID := nodeOverride
		if nodeID == nil {
			if nodeID, err = parseNodeID(reading.NodeID); err != nil {
				fmt.Printf("  row %d: %v\n", i+1, err)
				failed++
				continue
			}
		}

		if err := submitReading(ctx, cfg.Timeout, client, signer, nodeID, &reading); err != nil {
			color.New(color.FgRed).Printf("  ✗ row %d (%s): %v\n", i+1, reading.DataID, err)
			failed++
			continue
		}
		submitted++
		fmt.Printf("  ✓ row %d: node %s, %.3f kWh\n", i+1, nodeID, reading.KWh)
	}

	fmt.Printf("\nBatch complete on %s: %d submitted, %d skipped, %d failed\n",
		info.Name, submitted, skipped, failed)
	if failed > 0 {
		return fmt.Errorf("%d rows failed", failed)
	}
	return nil
}

func submitReading(ctx context.Context, timeout time.Duration, client *monitor.Client, signer *wallet.Signer, nodeID *big.Int, reading *dataset.Reading) error {
	txCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tx, err := client.UpdateData(txCtx, signer, nodeID, reading.MilliKWh(), reading.Location)
	if err != nil {
		return err
	}
	_, err = wallet.WaitMined(txCtx, client.Eth, tx.Hash())
	return err
}

func runDataLatest(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	_, info, err := currentNetwork(cfg)
	if err != nil {
		return err
	}

	nodeID, err := parseNodeID(args[0])
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

	point, err := client.LatestData(ctx, nodeID)
	if err != nil {
		return err
	}
	if point.Timestamp.Sign() == 0 {
		fmt.Printf("No readings recorded for node %s on %s\n", nodeID, info.Name)
		return nil
	}

	kwh := new(big.Rat).SetFrac(point.Kwh, big.NewInt(1000))
	fmt.Printf("Latest reading for node %s on %s:\n", nodeID, info.Name)
	fmt.Printf("  Data ID:   %s\n", point.DataId)
	fmt.Printf("  Energy:    %s kWh\n", kwh.FloatString(3))
	fmt.Printf("  Location:  %s\n", point.Location)
	fmt.Printf("  Timestamp: %s\n", time.Unix(point.Timestamp.Int64(), 0).UTC().Format(time.RFC3339))
	return nil
}
