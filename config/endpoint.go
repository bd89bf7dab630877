package config

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"
)

// ChainEndpoint is the per chain connection config of the local process.
type ChainEndpoint struct {
	Name     string `mapstructure:"name"`
	Endpoint string `mapstructure:"endpoint"`
	Key      string `mapstructure:"key"`
	// Address is the read only account used on chains signed by an external wallet.
	Address string `mapstructure:"address"`
	// ChainID is the EVM chain id used for transaction signing.
	ChainID uint64 `mapstructure:"chainId"`
	// Network selects the default Sui fullnode when Endpoint is empty.
	Network string `mapstructure:"network" default:"mainnet"`

	PollInterval uint64 `mapstructure:"pollInterval" default:"2"`
}

func (c *ChainEndpoint) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty")
	}
	if c.Endpoint == "" && c.Network == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %s", c.Name)
	}
	return nil
}

func (c *ChainEndpoint) PollDuration() time.Duration {
	// nolint:gosec
	return time.Duration(c.PollInterval) * time.Second
}

// NewChainEndpoint decodes and validates a chain endpoint from raw config.
func NewChainEndpoint(raw map[string]interface{}) (*ChainEndpoint, error) {
	var c ChainEndpoint
	err := mapstructure.Decode(raw, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return &c, nil
}
