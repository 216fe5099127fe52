package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	m := NewManager(t.TempDir())

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Network)
	assert.Equal(t, "", cfg.Operator)
}

func TestSetGetRoundTrip(t *testing.T) {
	m := NewManager(t.TempDir())

	require.NoError(t, m.Set("network", "sepolia"))
	require.NoError(t, m.Set("operator", "keeper"))
	require.NoError(t, m.Set("scan-url", "https://scan.example.org"))

	got, err := m.Get("network")
	require.NoError(t, err)
	assert.Equal(t, "sepolia", got)

	cfg, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, "keeper", cfg.Operator)
	assert.Equal(t, "https://scan.example.org", cfg.ScanURL)
}

func TestSetUnknownKey(t *testing.T) {
	m := NewManager(t.TempDir())

	err := m.Set("nonsense", "value")
	assert.ErrorContains(t, err, "unknown config key")

	_, err = m.Get("nonsense")
	assert.ErrorContains(t, err, "unknown config key")
}
