package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/open-grid/grid-cli/cli/pkg/network"
)

// RuntimeConfig carries the per-invocation settings every command needs:
// flag values merged with GRID_* environment variables and the local
// config file.
type RuntimeConfig struct {
	ProjectRoot    string
	Network        string
	NonInteractive bool
	Debug          bool
	Timeout        time.Duration
}

// BuildRuntime assembles the runtime configuration from the given flag
// set, the environment, and .grid/config.local.json.
func BuildRuntime(flags *pflag.FlagSet) (*RuntimeConfig, error) {
	projectRoot, err := network.FindProjectRoot()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("GRID")
	v.AutomaticEnv()
	if err := v.BindPFlag("network", flags.Lookup("network")); err != nil {
		return nil, fmt.Errorf("failed to bind network flag: %w", err)
	}
	if err := v.BindPFlag("non_interactive", flags.Lookup("non-interactive")); err != nil {
		return nil, fmt.Errorf("failed to bind non-interactive flag: %w", err)
	}
	if err := v.BindPFlag("debug", flags.Lookup("debug")); err != nil {
		return nil, fmt.Errorf("failed to bind debug flag: %w", err)
	}
	if err := v.BindPFlag("timeout", flags.Lookup("timeout")); err != nil {
		return nil, fmt.Errorf("failed to bind timeout flag: %w", err)
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		Network:        v.GetString("network"),
		NonInteractive: v.GetBool("non_interactive"),
		Debug:          v.GetBool("debug"),
		Timeout:        v.GetDuration("timeout"),
	}

	// The local config file supplies the default network when neither
	// the flag nor GRID_NETWORK is set.
	if cfg.Network == "" {
		local, err := NewManager(projectRoot).Load()
		if err != nil {
			return nil, err
		}
		cfg.Network = local.Network
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}

	return cfg, nil
}
