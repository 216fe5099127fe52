package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unreachableGridToml = `
[rpc_endpoints]
local = "http://127.0.0.1:1"

[networks.local]
chain_id = 31337
eid = 40000
monitor = "0x52908400098527886E0F7030069857D2E4169EE7"
`

func TestCostFallsBackWhenMonitorUnreachable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grid.toml"), []byte(unreachableGridToml), 0644))
	t.Chdir(dir)

	require.NoError(t, rootCmd.PersistentFlags().Set("network", "local"))
	costCmd.SetContext(context.Background())
	costGasPrice = "2"
	t.Cleanup(func() {
		costGasPrice = ""
		_ = rootCmd.PersistentFlags().Set("network", "")
	})

	// Capture the warning the fallback path prints.
	origStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = origStderr })

	runErr := runCost(costCmd, nil)

	w.Close()
	os.Stderr = origStderr
	stderr, err := io.ReadAll(r)
	require.NoError(t, err)

	// The table at the flag price still renders, with a warning naming
	// the unreachable network.
	require.NoError(t, runErr)
	assert.Contains(t, string(stderr), "cannot reach local's monitor")
}
