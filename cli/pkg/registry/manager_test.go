package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRegistry(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "deployments.json"))
	require.NoError(t, err)

	assert.Nil(t, m.Monitor(11155111))
	assert.Empty(t, m.Entries())
}

func TestRecordAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments.json")

	m, err := NewManager(path)
	require.NoError(t, err)

	deployment := &Deployment{
		Address:     common.HexToAddress("0x52908400098527886E0F7030069857D2E4169EE7"),
		Deployer:    common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		Endpoint:    common.HexToAddress("0x6EDCE65403992e310A62460808c4b910D972f10f"),
		TxHash:      common.HexToHash("0xabc1"),
		BlockNumber: 123456,
		Timestamp:   time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, m.RecordMonitor("sepolia", 11155111, deployment))

	// Fresh manager reads the same state back from disk.
	reloaded, err := NewManager(path)
	require.NoError(t, err)

	got := reloaded.Monitor(11155111)
	require.NotNil(t, got)
	assert.Equal(t, deployment.Address, got.Address)
	assert.Equal(t, deployment.BlockNumber, got.BlockNumber)
	assert.True(t, deployment.Timestamp.Equal(got.Timestamp))
}

func TestEntriesSortedByName(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "deployments.json"))
	require.NoError(t, err)

	require.NoError(t, m.RecordMonitor("sepolia", 11155111, &Deployment{}))
	require.NoError(t, m.RecordMonitor("base-sepolia", 84532, &Deployment{}))
	require.NoError(t, m.RecordMonitor("arbitrum-sepolia", 421614, &Deployment{}))

	entries := m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "arbitrum-sepolia", entries[0].Name)
	assert.Equal(t, "base-sepolia", entries[1].Name)
	assert.Equal(t, "sepolia", entries[2].Name)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(filepath.Join(dir, "deployments.json"))
	require.NoError(t, err)
	require.NoError(t, m.RecordMonitor("sepolia", 11155111, &Deployment{}))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "deployments.json", files[0].Name())
}

func TestCorruptRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := NewManager(path)
	assert.ErrorContains(t, err, "failed to parse registry file")
}
