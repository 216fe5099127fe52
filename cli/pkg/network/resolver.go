package network

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

// NetworkInfo contains resolved network details for one configured chain.
type NetworkInfo struct {
	Name    string
	RpcUrl  string
	ChainID uint64
	Eid     uint32
	// Monitor is the EnergyMonitor address from grid.toml, if pinned
	// there. The deployment registry is the fallback source.
	Monitor common.Address
}

// HasMonitor reports whether grid.toml pins a monitor address for this
// network.
func (n *NetworkInfo) HasMonitor() bool {
	return n.Monitor != (common.Address{})
}

// gridTOML is the raw grid.toml structure.
type gridTOML struct {
	RpcEndpoints map[string]string     `toml:"rpc_endpoints"`
	Networks     map[string]networkDef `toml:"networks"`
}

type networkDef struct {
	ChainID uint64 `toml:"chain_id"`
	Eid     uint32 `toml:"eid"`
	Monitor string `toml:"monitor"`
}

// Resolver resolves network names to RPC URLs, chain IDs and endpoint
// IDs from grid.toml, with ${VAR} substitution from the environment.
type Resolver struct {
	projectRoot string
	cfg         gridTOML
}

// NewResolver loads grid.toml and any .env files from the project root.
func NewResolver(projectRoot string) (*Resolver, error) {
	for _, envFile := range []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	} {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", envFile, err)
			}
		}
	}

	gridPath := filepath.Join(projectRoot, "grid.toml")
	var cfg gridTOML
	if _, err := toml.DecodeFile(gridPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse grid.toml: %w", err)
	}

	return &Resolver{projectRoot: projectRoot, cfg: cfg}, nil
}

// Networks returns all configured network names, sorted.
func (r *Resolver) Networks() []string {
	names := make([]string, 0, len(r.cfg.RpcEndpoints))
	for name := range r.cfg.RpcEndpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves a network name to its full NetworkInfo.
func (r *Resolver) Resolve(name string) (*NetworkInfo, error) {
	rawURL, ok := r.cfg.RpcEndpoints[name]
	if !ok {
		return nil, fmt.Errorf("network %s not found in grid.toml [rpc_endpoints]", name)
	}

	info := &NetworkInfo{
		Name:   name,
		RpcUrl: SubstituteEnvVars(rawURL),
	}

	def, hasDef := r.cfg.Networks[name]
	if hasDef && def.ChainID != 0 {
		info.ChainID = def.ChainID
	} else {
		info.ChainID = GetChainID(name)
	}
	if hasDef && def.Eid != 0 {
		info.Eid = def.Eid
	} else {
		info.Eid = DefaultEids[info.ChainID]
	}
	if hasDef && def.Monitor != "" {
		if !common.IsHexAddress(def.Monitor) {
			return nil, fmt.Errorf("invalid monitor address for %s: %s", name, def.Monitor)
		}
		info.Monitor = common.HexToAddress(def.Monitor)
	}

	if info.Eid == 0 {
		return nil, fmt.Errorf("no endpoint ID configured for %s (chain %d); set eid in [networks.%s]", name, info.ChainID, name)
	}

	return info, nil
}

// ResolveAll resolves every configured network, in name order.
func (r *Resolver) ResolveAll() ([]*NetworkInfo, error) {
	var infos []*NetworkInfo
	for _, name := range r.Networks() {
		info, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ByEid finds the configured network with the given endpoint ID.
func (r *Resolver) ByEid(eid uint32) (*NetworkInfo, error) {
	for _, name := range r.Networks() {
		info, err := r.Resolve(name)
		if err != nil {
			continue
		}
		if info.Eid == eid {
			return info, nil
		}
	}
	return nil, fmt.Errorf("no configured network has endpoint ID %d", eid)
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// SubstituteEnvVars replaces ${VAR_NAME} with environment variable
// values. Unresolved placeholders are left in place so the RPC call
// fails with a recognizable URL.
func SubstituteEnvVars(value string) string {
	result := envVarPattern.ReplaceAllStringFunc(value, func(match string) string {
		varName := match[2 : len(match)-1]
		if envValue := os.Getenv(varName); envValue != "" {
			return envValue
		}
		return match
	})

	if strings.Contains(result, "${") {
		fmt.Fprintf(os.Stderr, "Warning: unresolved environment variables in RPC URL: %s\n", result)
	}

	return result
}

// FindProjectRoot walks up from the working directory until it finds a
// grid.toml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "grid.toml")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no grid.toml found in %s or any parent directory", dir)
		}
		dir = parent
	}
}
