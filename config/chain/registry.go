package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-intents/types"
)

// Registry maps chain identifiers to their static configuration.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	order   []Chain
	configs map[Chain]ChainConfig
}

func NewRegistry(configs ...ChainConfig) (*Registry, error) {
	r := &Registry{
		order:   make([]Chain, 0, len(configs)),
		configs: make(map[Chain]ChainConfig, len(configs)),
	}

	for _, c := range configs {
		if c == nil {
			return nil, fmt.Errorf("nil chain config")
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, ok := r.configs[c.Chain()]; ok {
			return nil, fmt.Errorf("duplicate config for chain %s", c.Chain())
		}

		r.order = append(r.order, c.Chain())
		r.configs[c.Chain()] = c
	}

	return r, nil
}

// ConfigFor returns the config registered for c.
func (r *Registry) ConfigFor(c Chain) (ChainConfig, error) {
	cfg, ok := r.configs[c]
	if !ok {
		return nil, types.NewError(types.ErrUnsupportedChain, "unsupported chain %s", c)
	}
	return cfg, nil
}

// Supported lists chains in registration order.
func (r *Registry) Supported() []Chain {
	out := make([]Chain, len(r.order))
	copy(out, r.order)
	return out
}

// Configs lists configs in registration order.
func (r *Registry) Configs() []ChainConfig {
	out := make([]ChainConfig, 0, len(r.order))
	for _, c := range r.order {
		out = append(out, r.configs[c])
	}
	return out
}

// DefaultConfigs returns the chain table the intents deployment ships with.
func DefaultConfigs() []ChainConfig {
	return []ChainConfig{
		&EvmChainConfig{
			Name:           Arbitrum,
			Nid:            "0xaa37dc.arbitrum",
			CaipID:         "eip155:42161",
			IntentContract: common.HexToAddress("0x1d70D0B9c6b0508E7Bd2B379735CFF035749f187"),
			Native:         common.HexToAddress("0x0000000000000000000000000000000000000000"),
			SupportedTokens: []Token{
				{Symbol: "ETH", Decimals: 18, Address: "0x0000000000000000000000000000000000000000"},
				{Symbol: "USDC", Decimals: 6, Address: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"},
			},
		},
		&SuiChainConfig{
			Name:      Sui,
			Nid:       "sui",
			CaipID:    "sui:mainnet",
			PackageID: "0x2604cc95ad0b2a3e4b2e9e5df8d7a59b8a20ccb4fda58cc6fd7d06777e283a6f",
			StorageID: "0x490f1dbd44fd9bb1bd8fe8438bd8cb062acad8d81915fefc042f5484de7a7edc",
			Native:    "0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI",
			SupportedTokens: []Token{
				{Symbol: "SUI", Decimals: 9, Address: "0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI"},
			},
		},
	}
}

func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultConfigs()...)
	if err != nil {
		panic(err)
	}
	return r
}
