package network

// ChainIDs maps well-known network names to their EIP-155 chain IDs.
var ChainIDs = map[string]uint64{
	"mainnet":          1,
	"ethereum":         1,
	"sepolia":          11155111,
	"holesky":          17000,
	"polygon":          137,
	"amoy":             80002,
	"arbitrum":         42161,
	"arbitrum-sepolia": 421614,
	"optimism":         10,
	"optimism-sepolia": 11155420,
	"base":             8453,
	"base-sepolia":     84532,
	"avalanche":        43114,
	"avalanche-fuji":   43113,
	"bsc":              56,
	"bsc-testnet":      97,
	"local":            31337,
	"anvil":            31337,
}

// DefaultEids maps chain IDs to the messaging endpoint IDs the relay
// network assigns to those chains. grid.toml may override these.
var DefaultEids = map[uint64]uint32{
	11155111: 40161, // sepolia
	84532:    40245, // base-sepolia
	421614:   40231, // arbitrum-sepolia
	11155420: 40232, // optimism-sepolia
	80002:    40267, // amoy
	43113:    40106, // avalanche-fuji
	31337:    40000, // local
}

// GetChainID returns the chain ID for a network name, defaulting to the
// local anvil chain for unknown names.
func GetChainID(network string) uint64 {
	if id, ok := ChainIDs[network]; ok {
		return id
	}
	return 31337
}

// ChainName returns a canonical network name for a chain ID, or "" if
// the chain is not in the builtin table.
func ChainName(chainID uint64) string {
	// Skip alias entries so lookups are stable.
	aliases := map[string]bool{"ethereum": true, "anvil": true}
	for name, id := range ChainIDs {
		if id == chainID && !aliases[name] {
			return name
		}
	}
	return ""
}
