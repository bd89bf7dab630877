package app_test

import (
	"context"
	"testing"

	"github.com/sprintertech/sprinter-intents/app"
	"github.com/sprintertech/sprinter-intents/config"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	suite.Suite

	cfg *config.Config
}

func TestRunAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupTest() {
	s.cfg = &config.Config{
		Solver: config.SolverAPIConfig{
			URL:     "http://localhost:3000",
			Timeout: 5,
		},
		ChainConfigs: []map[string]interface{}{
			{
				"name":     "sui",
				"endpoint": "http://localhost:9000",
			},
		},
	}
}

func (s *AppTestSuite) Test_New_DefaultChains() {
	a, err := app.New(s.cfg, nil)

	s.Nil(err)
	s.Equal([]chain.Chain{chain.Arbitrum, chain.Sui}, a.Service.GetSupportedChains())
	s.Contains(a.Endpoints, "sui")
}

func (s *AppTestSuite) Test_New_SharedTokens() {
	shared := &config.TokenStore{
		Tokens: map[string]map[string]chain.Token{
			"eip155:42161": {
				"WETH": {Symbol: "WETH", Decimals: 18, Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"},
			},
		},
	}

	a, err := app.New(s.cfg, shared)

	s.Nil(err)
	token, err := a.Tokens.ConfigBySymbol("eip155:42161", "WETH")
	s.Nil(err)
	s.Equal(uint8(18), token.Decimals)
}

func (s *AppTestSuite) Test_Provider_MissingEndpoint() {
	a, err := app.New(s.cfg, nil)
	s.Nil(err)

	_, _, err = a.Provider(context.Background(), chain.Arbitrum)

	s.NotNil(err)
}

func (s *AppTestSuite) Test_Provider_UnsupportedChain() {
	a, err := app.New(s.cfg, nil)
	s.Nil(err)

	_, _, err = a.Provider(context.Background(), chain.Chain("base"))

	s.NotNil(err)
}
