package chains

import (
	"github.com/sprintertech/sprinter-intents/chains/evm"
	"github.com/sprintertech/sprinter-intents/chains/sui"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/types"
)

// Provider is a caller supplied signer for exactly one chain family.
type Provider struct {
	family chain.ChainType
	evm    *evm.Provider
	sui    *sui.Provider
}

func NewEvmProvider(p *evm.Provider) *Provider {
	return &Provider{
		family: chain.EvmChainType,
		evm:    p,
	}
}

func NewSuiProvider(p *sui.Provider) *Provider {
	return &Provider{
		family: chain.SuiChainType,
		sui:    p,
	}
}

func (p *Provider) Type() chain.ChainType {
	if p == nil {
		return ""
	}
	return p.family
}

// Evm returns the account model provider or PROVIDER_KIND_MISMATCH.
func (p *Provider) Evm() (*evm.Provider, error) {
	if p == nil || p.family != chain.EvmChainType || p.evm == nil {
		return nil, types.NewError(types.ErrProviderKindMismatch, "expected %s provider, got %s", chain.EvmChainType, p.Type())
	}
	return p.evm, nil
}

// Sui returns the object model provider or PROVIDER_KIND_MISMATCH.
func (p *Provider) Sui() (*sui.Provider, error) {
	if p == nil || p.family != chain.SuiChainType || p.sui == nil {
		return nil, types.NewError(types.ErrProviderKindMismatch, "expected %s provider, got %s", chain.SuiChainType, p.Type())
	}
	return p.sui, nil
}

// MatchesChain reports whether the provider family is the family of the chain config.
func (p *Provider) MatchesChain(cfg chain.ChainConfig) error {
	if p == nil || p.family != cfg.Type() {
		return types.NewError(
			types.ErrProviderKindMismatch,
			"chain %s requires a %s provider, got %s", cfg.Chain(), cfg.Type(), p.Type())
	}
	return nil
}
