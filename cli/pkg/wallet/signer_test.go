package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known anvil dev account #0.
const anvilKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestNewSigner(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{
			name: "bare hex key",
			key:  anvilKey,
			want: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		},
		{
			name: "0x prefix is stripped",
			key:  "0x" + anvilKey,
			want: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		},
		{
			name: "surrounding whitespace",
			key:  "  " + anvilKey + "\n",
			want: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		},
		{
			name:    "garbage",
			key:     "not-a-key",
			wantErr: true,
		},
		{
			name:    "empty",
			key:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer, err := NewSigner(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, signer.Address().Hex())
		})
	}
}

func TestLoadSigner(t *testing.T) {
	t.Run("missing env var", func(t *testing.T) {
		t.Setenv(OperatorKeyEnv, "")
		_, err := LoadSigner()
		assert.ErrorContains(t, err, OperatorKeyEnv)
	})

	t.Run("from env var", func(t *testing.T) {
		t.Setenv(OperatorKeyEnv, anvilKey)
		signer, err := LoadSigner()
		require.NoError(t, err)
		assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", signer.Address().Hex())
	})
}
