package gas

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// Gas usage observed for each monitor operation on the test networks.
// These feed the cost table; live estimates replace them when a command
// is connected to a network.
var OperationGas = map[string]uint64{
	"deploy":       1_850_000,
	"registerNode": 118_000,
	"updateData":   86_000,
	"setPeer":      48_000,
	"syncNode":     245_000,
	"retrySync":    210_000,
}

// Operations returns the known operation names in display order.
func Operations() []string {
	return []string{"deploy", "registerNode", "updateData", "setPeer", "syncNode", "retrySync"}
}

// TxCost returns gasLimit * gasPrice in wei.
func TxCost(gasLimit uint64, gasPrice *big.Int) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), gasPrice)
}

// ParseEther converts a decimal ether string ("0.05") to wei. The value
// must not have sub-wei precision.
func ParseEther(s string) (*big.Int, error) {
	return parseUnit(s, params.Ether)
}

// ParseGwei converts a decimal gwei string ("2.5") to wei.
func ParseGwei(s string) (*big.Int, error) {
	return parseUnit(s, params.GWei)
}

func parseUnit(s string, unit int64) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("invalid decimal value: %q", s)
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("negative value: %q", s)
	}

	r.Mul(r, new(big.Rat).SetInt64(unit))
	if !r.IsInt() {
		return nil, fmt.Errorf("value %q has sub-wei precision", s)
	}
	return new(big.Int).Set(r.Num()), nil
}

// FormatEther renders wei as a decimal ether string with trailing
// zeros trimmed.
func FormatEther(wei *big.Int) string {
	return formatUnit(wei, params.Ether, 18)
}

// FormatGwei renders wei as a decimal gwei string.
func FormatGwei(wei *big.Int) string {
	return formatUnit(wei, params.GWei, 9)
}

func formatUnit(wei *big.Int, unit int64, decimals int) string {
	r := new(big.Rat).SetFrac(wei, big.NewInt(unit))
	s := r.FloatString(decimals)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
