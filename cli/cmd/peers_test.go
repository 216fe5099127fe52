package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWiringPlanLinks(t *testing.T) {
	const planYAML = `
networks:
  - sepolia
  - base-sepolia
  - amoy
pairs:
  - from: sepolia
    to: arbitrum-sepolia
`
	var plan wiringPlan
	require.NoError(t, yaml.Unmarshal([]byte(planYAML), &plan))

	links := plan.links()
	// Full mesh over 3 networks plus one explicit pair.
	require.Len(t, links, 7)
	assert.Contains(t, links, [2]string{"sepolia", "base-sepolia"})
	assert.Contains(t, links, [2]string{"base-sepolia", "sepolia"})
	assert.Contains(t, links, [2]string{"amoy", "base-sepolia"})
	assert.Contains(t, links, [2]string{"sepolia", "arbitrum-sepolia"})
	assert.NotContains(t, links, [2]string{"sepolia", "sepolia"})
}

func TestWiringPlanEmpty(t *testing.T) {
	var plan wiringPlan
	require.NoError(t, yaml.Unmarshal([]byte("{}"), &plan))
	assert.Empty(t, plan.links())
}
