package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Deployment records one EnergyMonitor deployment.
type Deployment struct {
	Address     common.Address `json:"address"`
	Deployer    common.Address `json:"deployer"`
	Endpoint    common.Address `json:"endpoint"`
	TxHash      common.Hash    `json:"txHash"`
	BlockNumber uint64         `json:"blockNumber"`
	Timestamp   time.Time      `json:"timestamp"`
}

// NetworkEntry groups deployments for one chain.
type NetworkEntry struct {
	Name    string      `json:"name"`
	ChainID uint64      `json:"chainId"`
	Monitor *Deployment `json:"monitor,omitempty"`
}

// Registry is the serialized deployments.json structure, keyed by chain
// ID.
type Registry struct {
	Networks map[string]*NetworkEntry `json:"networks"`
}

// Manager handles registry file operations.
type Manager struct {
	registryPath string
	registry     *Registry
}

// NewManager loads (or initializes) the registry at the given path.
func NewManager(registryPath string) (*Manager, error) {
	m := &Manager{registryPath: registryPath}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) load() error {
	if _, err := os.Stat(m.registryPath); os.IsNotExist(err) {
		m.registry = &Registry{Networks: make(map[string]*NetworkEntry)}
		return nil
	}

	data, err := os.ReadFile(m.registryPath)
	if err != nil {
		return fmt.Errorf("failed to read registry file: %w", err)
	}

	m.registry = &Registry{}
	if err := json.Unmarshal(data, m.registry); err != nil {
		return fmt.Errorf("failed to parse registry file: %w", err)
	}
	if m.registry.Networks == nil {
		m.registry.Networks = make(map[string]*NetworkEntry)
	}

	return nil
}

// Save writes the registry atomically (temp file + rename).
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.registry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	dir := filepath.Dir(m.registryPath)
	tmp, err := os.CreateTemp(dir, ".deployments-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp registry file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close registry file: %w", err)
	}

	if err := os.Rename(tmpName, m.registryPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace registry file: %w", err)
	}

	return nil
}

// RecordMonitor records a monitor deployment for a network and saves.
func (m *Manager) RecordMonitor(networkName string, chainID uint64, deployment *Deployment) error {
	key := fmt.Sprintf("%d", chainID)
	entry := m.registry.Networks[key]
	if entry == nil {
		entry = &NetworkEntry{Name: networkName, ChainID: chainID}
		m.registry.Networks[key] = entry
	}
	entry.Name = networkName
	entry.Monitor = deployment

	return m.Save()
}

// Monitor returns the recorded monitor deployment for a chain, or nil.
func (m *Manager) Monitor(chainID uint64) *Deployment {
	entry := m.registry.Networks[fmt.Sprintf("%d", chainID)]
	if entry == nil {
		return nil
	}
	return entry.Monitor
}

// Entries returns all network entries sorted by network name.
func (m *Manager) Entries() []*NetworkEntry {
	entries := make([]*NetworkEntry, 0, len(m.registry.Networks))
	for _, entry := range m.registry.Networks {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
