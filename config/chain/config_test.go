package chain_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/types"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite

	registry *chain.Registry
}

func TestRunRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = chain.DefaultRegistry()
}

func (s *RegistryTestSuite) Test_Supported_RegistrationOrder() {
	s.Equal([]chain.Chain{chain.Arbitrum, chain.Sui}, s.registry.Supported())
}

func (s *RegistryTestSuite) Test_Supported_ReturnsCopy() {
	supported := s.registry.Supported()
	supported[0] = "mutated"

	s.Equal(chain.Arbitrum, s.registry.Supported()[0])
}

func (s *RegistryTestSuite) Test_ConfigFor_FamilyMatchesSubtype() {
	for _, c := range s.registry.Supported() {
		cfg, err := s.registry.ConfigFor(c)
		s.Nil(err)
		s.Equal(c, cfg.Chain())

		switch cfg.(type) {
		case *chain.EvmChainConfig:
			s.Equal(chain.EvmChainType, cfg.Type())
		case *chain.SuiChainConfig:
			s.Equal(chain.SuiChainType, cfg.Type())
		default:
			s.Failf("unexpected config type", "%T", cfg)
		}
	}
}

func (s *RegistryTestSuite) Test_ConfigFor_Unsupported() {
	_, err := s.registry.ConfigFor("sol")

	s.Equal(types.ErrUnsupportedChain, types.ErrorCodeOf(err))
}

func (s *RegistryTestSuite) Test_NewRegistry_Duplicate() {
	configs := chain.DefaultConfigs()

	_, err := chain.NewRegistry(append(configs, configs[0])...)

	s.NotNil(err)
}

func (s *RegistryTestSuite) Test_NewRegistry_InvalidConfig() {
	_, err := chain.NewRegistry(&chain.EvmChainConfig{
		Name: "base",
		Nid:  "0x2105.base",
	})

	s.NotNil(err)

	_, err = chain.NewRegistry(&chain.SuiChainConfig{
		Name:      "sui-testnet",
		Nid:       "sui",
		PackageID: "0x1",
	})

	s.NotNil(err)
}

func (s *RegistryTestSuite) Test_EvmConfig_TagMismatch() {
	cfg, _ := s.registry.ConfigFor(chain.Sui)

	_, ok := chain.EvmConfig(cfg)
	s.False(ok)

	suiCfg, ok := chain.SuiConfig(cfg)
	s.True(ok)
	s.True(suiCfg.IsNative("0x0000000000000000000000000000000000000000000000000000000000000002::SUI::SUI"))
}

func (s *RegistryTestSuite) Test_WithTokens() {
	cfg, _ := s.registry.ConfigFor(chain.Arbitrum)

	extended := chain.WithTokens(cfg, []chain.Token{
		{Symbol: "usdc", Decimals: 6, Address: "0x1"},
		{Symbol: "WETH", Decimals: 18, Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"},
	})

	s.Len(cfg.Tokens(), 2)
	s.Len(extended.Tokens(), 3)
	s.Equal("WETH", extended.Tokens()[2].Symbol)

	evmCfg, ok := chain.EvmConfig(extended)
	s.True(ok)
	s.True(evmCfg.IsNative(common.Address{}))
}
