package monitor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "EnergyMonitor.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadArtifact(t *testing.T) {
	path := writeArtifact(t, `{
		"abi": [{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"}],
		"bytecode": {"object": "0x6080604052"}
	}`)

	artifact, err := LoadArtifact(path)
	require.NoError(t, err)

	bin, err := artifact.Bin()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, bin)
}

func TestLoadArtifactErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadArtifact(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeArtifact(t, "{not json")
		_, err := LoadArtifact(path)
		assert.ErrorContains(t, err, "failed to parse artifact")
	})

	t.Run("empty bytecode", func(t *testing.T) {
		path := writeArtifact(t, `{"abi": [], "bytecode": {"object": "0x"}}`)
		artifact, err := LoadArtifact(path)
		require.NoError(t, err)
		_, err = artifact.Bin()
		assert.ErrorContains(t, err, "no creation bytecode")
	})
}

func TestDefaultArtifactPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("proj", "out", "EnergyMonitor.sol", "EnergyMonitor.json"),
		DefaultArtifactPath("proj"))
}
