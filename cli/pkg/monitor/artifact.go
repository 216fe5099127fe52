package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Artifact is the subset of a Foundry build artifact the deploy command
// needs. The contracts are compiled elsewhere; the CLI only consumes
// the artifact JSON.
type Artifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode struct {
		Object string `json:"object"`
	} `json:"bytecode"`
}

// DefaultArtifactPath returns the conventional Foundry output location
// for the EnergyMonitor artifact.
func DefaultArtifactPath(projectRoot string) string {
	return filepath.Join(projectRoot, "out", "EnergyMonitor.sol", "EnergyMonitor.json")
}

// LoadArtifact reads a Foundry artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	return &artifact, nil
}

// Bin returns the creation bytecode.
func (a *Artifact) Bin() ([]byte, error) {
	object := strings.TrimSpace(a.Bytecode.Object)
	if object == "" || object == "0x" {
		return nil, fmt.Errorf("artifact has no creation bytecode (interface or unlinked library?)")
	}

	bin := common.FromHex(object)
	if len(bin) == 0 {
		return nil, fmt.Errorf("artifact bytecode is not valid hex")
	}
	return bin, nil
}
