package chains_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-intents/chains"
	"github.com/sprintertech/sprinter-intents/chains/evm"
	"github.com/sprintertech/sprinter-intents/chains/sui"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/types"
	"github.com/stretchr/testify/suite"
)

type ProviderTestSuite struct {
	suite.Suite

	registry *chain.Registry
}

func TestRunProviderTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func (s *ProviderTestSuite) SetupTest() {
	s.registry = chain.DefaultRegistry()
}

func (s *ProviderTestSuite) Test_EvmProvider() {
	p := chains.NewEvmProvider(evm.NewProvider(common.Address{}, nil, nil))

	s.Equal(chain.EvmChainType, p.Type())
	_, err := p.Evm()
	s.Nil(err)
	_, err = p.Sui()
	s.Equal(types.ErrProviderKindMismatch, types.ErrorCodeOf(err))

	arb, _ := s.registry.ConfigFor(chain.Arbitrum)
	s.Nil(p.MatchesChain(arb))
	suiCfg, _ := s.registry.ConfigFor(chain.Sui)
	s.Equal(types.ErrProviderKindMismatch, types.ErrorCodeOf(p.MatchesChain(suiCfg)))
}

func (s *ProviderTestSuite) Test_SuiProvider() {
	p := chains.NewSuiProvider(sui.NewProvider(sui.Account{}, nil, nil))

	s.Equal(chain.SuiChainType, p.Type())
	_, err := p.Sui()
	s.Nil(err)
	_, err = p.Evm()
	s.Equal(types.ErrProviderKindMismatch, types.ErrorCodeOf(err))
}

func (s *ProviderTestSuite) Test_NilProvider() {
	var p *chains.Provider

	_, err := p.Evm()
	s.Equal(types.ErrProviderKindMismatch, types.ErrorCodeOf(err))

	arb, _ := s.registry.ConfigFor(chain.Arbitrum)
	s.Equal(types.ErrProviderKindMismatch, types.ErrorCodeOf(p.MatchesChain(arb)))
}
