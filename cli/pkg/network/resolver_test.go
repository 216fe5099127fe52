package network

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGridToml(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grid.toml"), []byte(content), 0644))
	return dir
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("GRID_TEST_RPC", "https://rpc.example.org")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "simple env var",
			value: "${GRID_TEST_RPC}",
			want:  "https://rpc.example.org",
		},
		{
			name:  "env var with path suffix",
			value: "${GRID_TEST_RPC}/v2/abc",
			want:  "https://rpc.example.org/v2/abc",
		},
		{
			name:  "hardcoded URL",
			value: "https://sepolia.base.org",
			want:  "https://sepolia.base.org",
		},
		{
			name:  "unset var left in place",
			value: "${GRID_TEST_UNSET_VAR}",
			want:  "${GRID_TEST_UNSET_VAR}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubstituteEnvVars(tt.value))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Setenv("SEPOLIA_RPC_URL", "https://sepolia.example.org")

	dir := writeGridToml(t, `
[rpc_endpoints]
sepolia = "${SEPOLIA_RPC_URL}"
base-sepolia = "https://sepolia.base.org"
devnet = "http://localhost:8545"

[networks.sepolia]
chain_id = 11155111
eid = 40161
monitor = "0x52908400098527886E0F7030069857D2E4169EE7"

[networks.devnet]
chain_id = 31337
eid = 40000
`)

	resolver, err := NewResolver(dir)
	require.NoError(t, err)

	t.Run("fully configured network", func(t *testing.T) {
		info, err := resolver.Resolve("sepolia")
		require.NoError(t, err)
		assert.Equal(t, "https://sepolia.example.org", info.RpcUrl)
		assert.Equal(t, uint64(11155111), info.ChainID)
		assert.Equal(t, uint32(40161), info.Eid)
		assert.True(t, info.HasMonitor())
	})

	t.Run("defaults from builtin tables", func(t *testing.T) {
		info, err := resolver.Resolve("base-sepolia")
		require.NoError(t, err)
		assert.Equal(t, uint64(84532), info.ChainID)
		assert.Equal(t, uint32(40245), info.Eid)
		assert.False(t, info.HasMonitor())
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := resolver.Resolve("moonbase")
		assert.ErrorContains(t, err, "not found in grid.toml")
	})

	t.Run("networks are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"base-sepolia", "devnet", "sepolia"}, resolver.Networks())
	})

	t.Run("lookup by eid", func(t *testing.T) {
		info, err := resolver.ByEid(40161)
		require.NoError(t, err)
		assert.Equal(t, "sepolia", info.Name)

		_, err = resolver.ByEid(99999)
		assert.Error(t, err)
	})
}

func TestResolveInvalidMonitor(t *testing.T) {
	dir := writeGridToml(t, `
[rpc_endpoints]
sepolia = "https://rpc.example.org"

[networks.sepolia]
chain_id = 11155111
eid = 40161
monitor = "not-an-address"
`)

	resolver, err := NewResolver(dir)
	require.NoError(t, err)

	_, err = resolver.Resolve("sepolia")
	assert.ErrorContains(t, err, "invalid monitor address")
}

func TestGetChainID(t *testing.T) {
	assert.Equal(t, uint64(11155111), GetChainID("sepolia"))
	assert.Equal(t, uint64(84532), GetChainID("base-sepolia"))
	assert.Equal(t, uint64(31337), GetChainID("something-unknown"))
}
