package gas

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEther(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string // wei
		wantErr bool
	}{
		{name: "one ether", in: "1", want: "1000000000000000000"},
		{name: "fraction", in: "0.05", want: "50000000000000000"},
		{name: "whitespace", in: " 2.5 ", want: "2500000000000000000"},
		{name: "smallest unit", in: "0.000000000000000001", want: "1"},
		{name: "zero", in: "0", want: "0"},
		{name: "sub-wei precision", in: "0.0000000000000000001", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
		{name: "garbage", in: "one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEther(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseGwei(t *testing.T) {
	got, err := ParseGwei("2.5")
	require.NoError(t, err)
	assert.Equal(t, "2500000000", got.String())

	_, err = ParseGwei("0.0000000001")
	assert.Error(t, err)
}

func TestFormatEther(t *testing.T) {
	tests := []struct {
		wei  string
		want string
	}{
		{"1000000000000000000", "1"},
		{"50000000000000000", "0.05"},
		{"1", "0.000000000000000001"},
		{"0", "0"},
		{"1500000000000000000", "1.5"},
	}

	for _, tt := range tests {
		wei, ok := new(big.Int).SetString(tt.wei, 10)
		require.True(t, ok)
		assert.Equal(t, tt.want, FormatEther(wei))
	}
}

func TestFormatGwei(t *testing.T) {
	assert.Equal(t, "2.5", FormatGwei(big.NewInt(2_500_000_000)))
	assert.Equal(t, "0.1", FormatGwei(big.NewInt(100_000_000)))
}

func TestTxCost(t *testing.T) {
	// 100k gas at 2 gwei = 0.0002 ether
	price, err := ParseGwei("2")
	require.NoError(t, err)
	cost := TxCost(100_000, price)
	assert.Equal(t, "0.0002", FormatEther(cost))
}

func TestRoundTrip(t *testing.T) {
	wei, err := ParseEther("123.456789")
	require.NoError(t, err)
	assert.Equal(t, "123.456789", FormatEther(wei))
}

func TestOperationsCoverGasTable(t *testing.T) {
	for _, op := range Operations() {
		_, ok := OperationGas[op]
		assert.True(t, ok, "missing gas figure for %s", op)
	}
	assert.Len(t, OperationGas, len(Operations()))
}
