package monitor

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/open-grid/grid-cli/cli/pkg/wallet"
)

// Client wraps an RPC connection to one network's EnergyMonitor
// deployment.
type Client struct {
	Eth     *ethclient.Client
	Address common.Address
	ChainID *big.Int

	binding *EnergyMonitor
}

// Dial connects to an RPC endpoint and verifies its chain ID against
// the configured one.
func Dial(ctx context.Context, rpcURL string, address common.Address, expectedChainID uint64) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if expectedChainID != 0 && chainID.Uint64() != expectedChainID {
		eth.Close()
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", expectedChainID, chainID.Uint64())
	}

	return &Client{
		Eth:     eth,
		Address: address,
		ChainID: chainID,
		binding: NewEnergyMonitor(),
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.Eth.Close()
}

// Binding exposes the contract binding for callers that decode logs.
func (c *Client) Binding() *EnergyMonitor {
	return c.binding
}

// HasCode reports whether contract code is present at the monitor
// address.
func (c *Client) HasCode(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	code, err := c.Eth.CodeAt(ctx, c.Address, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return len(code) > 0, nil
}

func (c *Client) call(ctx context.Context, data []byte) ([]byte, error) {
	return c.Eth.CallContract(ctx, ethereum.CallMsg{
		To:   &c.Address,
		Data: data,
	}, nil)
}

// NodeCount returns the number of registered nodes.
func (c *Client) NodeCount(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, c.binding.PackNodeCount())
	if err != nil {
		return nil, fmt.Errorf("nodeCount call failed: %w", err)
	}
	return c.binding.UnpackNodeCount(out)
}

// DataCount returns the number of stored data points.
func (c *Client) DataCount(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, c.binding.PackDataCount())
	if err != nil {
		return nil, fmt.Errorf("dataCount call failed: %w", err)
	}
	return c.binding.UnpackDataCount(out)
}

// Owner returns the contract owner.
func (c *Client) Owner(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, c.binding.PackOwner())
	if err != nil {
		return common.Address{}, fmt.Errorf("owner call failed: %w", err)
	}
	return c.binding.UnpackOwner(out)
}

// Endpoint returns the messaging endpoint the monitor is attached to.
func (c *Client) Endpoint(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, c.binding.PackEndpoint())
	if err != nil {
		return common.Address{}, fmt.Errorf("endpoint call failed: %w", err)
	}
	return c.binding.UnpackEndpoint(out)
}

// Node fetches a node record by ID.
func (c *Client) Node(ctx context.Context, nodeID *big.Int) (EnergyMonitorNode, error) {
	out, err := c.call(ctx, c.binding.PackGetNode(nodeID))
	if err != nil {
		return EnergyMonitorNode{}, fmt.Errorf("getNode(%s) call failed: %w", nodeID, err)
	}
	return c.binding.UnpackGetNode(out)
}

// LatestData fetches the most recent data point for a node.
func (c *Client) LatestData(ctx context.Context, nodeID *big.Int) (EnergyMonitorDataPoint, error) {
	out, err := c.call(ctx, c.binding.PackGetLatestData(nodeID))
	if err != nil {
		return EnergyMonitorDataPoint{}, fmt.Errorf("getLatestData(%s) call failed: %w", nodeID, err)
	}
	return c.binding.UnpackGetLatestData(out)
}

// Peer returns the monitor wired for the given endpoint ID, or the zero
// value when unwired.
func (c *Client) Peer(ctx context.Context, eid uint32) ([32]byte, error) {
	out, err := c.call(ctx, c.binding.PackPeers(eid))
	if err != nil {
		return [32]byte{}, fmt.Errorf("peers(%d) call failed: %w", eid, err)
	}
	return c.binding.UnpackPeers(out)
}

// QuoteSyncFee quotes the fee for syncing a node's state to the given
// destination.
func (c *Client) QuoteSyncFee(ctx context.Context, dstEid uint32, nodeID *big.Int) (QuoteSyncFeeOutput, error) {
	out, err := c.call(ctx, c.binding.PackQuoteSyncFee(dstEid, nodeID, false))
	if err != nil {
		return QuoteSyncFeeOutput{}, fmt.Errorf("quoteSyncFee(%d) call failed: %w", dstEid, err)
	}
	return c.binding.UnpackQuoteSyncFee(out)
}

// RegisterNode submits a registerNode transaction.
func (c *Client) RegisterNode(ctx context.Context, signer *wallet.Signer, location string) (*types.Transaction, error) {
	return signer.SendTx(ctx, c.Eth, c.ChainID, &c.Address, big.NewInt(0), c.binding.PackRegisterNode(location))
}

// SetNodeActive submits a setNodeActive transaction.
func (c *Client) SetNodeActive(ctx context.Context, signer *wallet.Signer, nodeID *big.Int, active bool) (*types.Transaction, error) {
	return signer.SendTx(ctx, c.Eth, c.ChainID, &c.Address, big.NewInt(0), c.binding.PackSetNodeActive(nodeID, active))
}

// UpdateData submits an updateData transaction.
func (c *Client) UpdateData(ctx context.Context, signer *wallet.Signer, nodeID, kwh *big.Int, location string) (*types.Transaction, error) {
	return signer.SendTx(ctx, c.Eth, c.ChainID, &c.Address, big.NewInt(0), c.binding.PackUpdateData(nodeID, kwh, location))
}

// SetPeer submits a setPeer transaction wiring a remote monitor.
func (c *Client) SetPeer(ctx context.Context, signer *wallet.Signer, eid uint32, peer [32]byte) (*types.Transaction, error) {
	return signer.SendTx(ctx, c.Eth, c.ChainID, &c.Address, big.NewInt(0), c.binding.PackSetPeer(eid, peer))
}

// SyncNode submits a syncNode transaction carrying the quoted native
// fee.
func (c *Client) SyncNode(ctx context.Context, signer *wallet.Signer, dstEid uint32, nodeID, nativeFee *big.Int) (*types.Transaction, error) {
	return signer.SendTx(ctx, c.Eth, c.ChainID, &c.Address, nativeFee, c.binding.PackSyncNode(dstEid, nodeID))
}

// RetrySync re-executes a stored cross-chain payload, paying the given
// native fee.
func (c *Client) RetrySync(ctx context.Context, signer *wallet.Signer, srcEid uint32, sender [32]byte, nonce uint64, payload []byte, nativeFee *big.Int) (*types.Transaction, error) {
	return signer.SendTx(ctx, c.Eth, c.ChainID, &c.Address, nativeFee, c.binding.PackRetrySync(srcEid, sender, nonce, payload))
}

// Deploy broadcasts a contract creation transaction for the monitor and
// returns it. The caller waits for the receipt to learn the address.
func Deploy(ctx context.Context, eth *ethclient.Client, chainID *big.Int, signer *wallet.Signer, bytecode []byte, endpoint, owner common.Address) (*types.Transaction, error) {
	binding := NewEnergyMonitor()
	data := append(bytecode, binding.PackConstructor(endpoint, owner)...)
	return signer.SendTx(ctx, eth, chainID, nil, big.NewInt(0), data)
}

// AddressToPeer left-pads an EVM address into the bytes32 peer format
// the messaging endpoint uses.
func AddressToPeer(addr common.Address) [32]byte {
	var peer [32]byte
	copy(peer[12:], addr.Bytes())
	return peer
}

// PeerToAddress recovers an EVM address from a bytes32 peer value.
func PeerToAddress(peer [32]byte) common.Address {
	return common.BytesToAddress(peer[12:])
}
