package interactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzySearchFunc(t *testing.T) {
	items := []string{"sepolia", "base-sepolia", "arbitrum-sepolia", "amoy"}
	search := FuzzySearchFunc(items)

	// Empty input matches everything.
	for i := range items {
		assert.True(t, search("", i))
	}

	// Substring match, case-insensitive.
	assert.True(t, search("BASE", 1))
	assert.False(t, search("base", 0))

	// Fuzzy match on scattered characters.
	assert.True(t, search("arbsep", 2))
	assert.False(t, search("xyz", 3))
}
