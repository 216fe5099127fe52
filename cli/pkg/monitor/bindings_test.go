package monitor

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodSelectors(t *testing.T) {
	em := NewEnergyMonitor()

	tests := []struct {
		method    string
		signature string
	}{
		{"registerNode", "registerNode(string)"},
		{"setNodeActive", "setNodeActive(uint256,bool)"},
		{"updateData", "updateData(uint256,uint256,string)"},
		{"getNode", "getNode(uint256)"},
		{"getLatestData", "getLatestData(uint256)"},
		{"nodeCount", "nodeCount()"},
		{"dataCount", "dataCount()"},
		{"owner", "owner()"},
		{"endpoint", "endpoint()"},
		{"peers", "peers(uint32)"},
		{"setPeer", "setPeer(uint32,bytes32)"},
		{"quoteSyncFee", "quoteSyncFee(uint32,uint256,bool)"},
		{"syncNode", "syncNode(uint32,uint256)"},
		{"retrySync", "retrySync(uint32,bytes32,uint64,bytes)"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			method, ok := em.abi.Methods[tt.method]
			require.True(t, ok, "method %s missing from ABI", tt.method)
			want := crypto.Keccak256([]byte(tt.signature))[:4]
			assert.Equal(t, want, method.ID, "selector mismatch for %s", tt.signature)
		})
	}
}

func TestPackPrefixesSelector(t *testing.T) {
	em := NewEnergyMonitor()

	data := em.PackRegisterNode("lat:40.7128,lon:-74.0060")
	assert.Equal(t, em.abi.Methods["registerNode"].ID, data[:4])

	data = em.PackQuoteSyncFee(40161, big.NewInt(7), false)
	assert.Equal(t, em.abi.Methods["quoteSyncFee"].ID, data[:4])
}

func TestUnpackGetNode(t *testing.T) {
	em := NewEnergyMonitor()

	node := EnergyMonitorNode{
		Id:           big.NewInt(3),
		Location:     "lat:41.8781,lon:-87.6298",
		Active:       true,
		RegisteredAt: big.NewInt(1755907200),
		Owner:        common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
	}

	encoded, err := em.abi.Methods["getNode"].Outputs.Pack(node)
	require.NoError(t, err)

	got, err := em.UnpackGetNode(encoded)
	require.NoError(t, err)
	assert.Equal(t, node.Id, got.Id)
	assert.Equal(t, node.Location, got.Location)
	assert.Equal(t, node.Active, got.Active)
	assert.Equal(t, node.RegisteredAt, got.RegisteredAt)
	assert.Equal(t, node.Owner, got.Owner)
}

func TestUnpackQuoteSyncFee(t *testing.T) {
	em := NewEnergyMonitor()

	encoded, err := em.abi.Methods["quoteSyncFee"].Outputs.Pack(big.NewInt(1_000_000_000), big.NewInt(0))
	require.NoError(t, err)

	quote, err := em.UnpackQuoteSyncFee(encoded)
	require.NoError(t, err)
	assert.Equal(t, "1000000000", quote.NativeFee.String())
	assert.Equal(t, "0", quote.GridFee.String())
}

func TestConstructorArgsAppended(t *testing.T) {
	em := NewEnergyMonitor()

	endpoint := common.HexToAddress("0x6EDCE65403992e310A62460808c4b910D972f10f")
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	enc := em.PackConstructor(endpoint, owner)
	// Two static args, no selector.
	require.Len(t, enc, 64)
	assert.Equal(t, endpoint, common.BytesToAddress(enc[:32]))
	assert.Equal(t, owner, common.BytesToAddress(enc[32:]))
}

func TestPeerConversion(t *testing.T) {
	addr := common.HexToAddress("0x52908400098527886E0F7030069857D2E4169EE7")
	peer := AddressToPeer(addr)

	// Top 12 bytes zero, address right-aligned.
	for _, b := range peer[:12] {
		assert.Zero(t, b)
	}
	assert.Equal(t, addr, PeerToAddress(peer))
	assert.NotEqual(t, [32]byte{}, peer)
}
