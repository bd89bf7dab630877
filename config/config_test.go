package config_test

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	solverConfig "github.com/sprintertech/solver-config/go/config"
	"github.com/sprintertech/sprinter-intents/config"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/stretchr/testify/suite"
)

type ChainEndpointTestSuite struct {
	suite.Suite
}

func TestRunChainEndpointTestSuite(t *testing.T) {
	suite.Run(t, new(ChainEndpointTestSuite))
}

func (s *ChainEndpointTestSuite) Test_FailedDecode() {
	_, err := config.NewChainEndpoint(map[string]interface{}{
		"chainId": "invalid",
	})

	s.NotNil(err)
}

func (s *ChainEndpointTestSuite) Test_MissingName() {
	_, err := config.NewChainEndpoint(map[string]interface{}{
		"endpoint": "http://localhost:8545",
	})

	s.NotNil(err)
}

func (s *ChainEndpointTestSuite) Test_ValidConfig() {
	e, err := config.NewChainEndpoint(map[string]interface{}{
		"name":     "arb",
		"endpoint": "http://localhost:8545",
		"chainId":  42161,
		"key":      "key",
	})

	s.Nil(err)
	s.Equal(&config.ChainEndpoint{
		Name:         "arb",
		Endpoint:     "http://localhost:8545",
		Key:          "key",
		ChainID:      42161,
		Network:      "mainnet",
		PollInterval: 2,
	}, e)
}

type ConfigTestSuite struct {
	suite.Suite
}

func TestRunConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_Defaults() {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
logLevel: debug
solver:
  url: https://solver.example.com
chains:
  - name: arb
    endpoint: http://localhost:8545
    chainId: 42161
`), 0600)
	s.Nil(err)

	c, err := config.GetConfigFromFile(path, nil)

	s.Nil(err)
	s.Equal("debug", c.LogLevel)
	s.Equal("https://solver.example.com", c.Solver.URL)
	s.Equal(uint64(30), c.Solver.Timeout)
	s.Equal(":8080", c.API.Addr)
	s.Equal(uint16(9001), c.HealthPort)

	endpoints, err := c.Endpoints()
	s.Nil(err)
	s.Equal(uint64(42161), endpoints["arb"].ChainID)
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_MergesBase() {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
logLevel: warn
`), 0600)
	s.Nil(err)

	c, err := config.GetConfigFromFile(path, &config.Config{
		LogLevel: "debug",
		Solver: config.SolverAPIConfig{
			URL: "https://base.example.com",
		},
	})

	s.Nil(err)
	s.Equal("warn", c.LogLevel)
	s.Equal("https://base.example.com", c.Solver.URL)
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_MissingFile() {
	_, err := config.GetConfigFromFile(filepath.Join(s.T().TempDir(), "missing.yaml"), nil)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_GetConfigFromENV() {
	s.T().Setenv("INTENTS_LOGLEVEL", "error")
	s.T().Setenv("INTENTS_SOLVER_URL", "https://env.example.com")
	s.T().Setenv("INTENTS_CHAINS", `[{"name":"sui","network":"testnet"}]`)

	c, err := config.GetConfigFromENV(nil)

	s.Nil(err)
	s.Equal("error", c.LogLevel)
	s.Equal("https://env.example.com", c.Solver.URL)

	endpoints, err := c.Endpoints()
	s.Nil(err)
	s.Equal("testnet", endpoints["sui"].Network)
}

func (s *ConfigTestSuite) Test_GetConfigFromENV_DuplicateChains() {
	s.T().Setenv("INTENTS_CHAINS", `[{"name":"sui"},{"name":"sui"}]`)

	_, err := config.GetConfigFromENV(nil)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_GetSharedConfigFromNetwork() {
	tokens := make(map[string]solverConfig.Token)
	tokens["WETH"] = solverConfig.Token{Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", Decimals: 18}
	chains := make(map[string]solverConfig.Chain)
	chains["eip155:42161"] = solverConfig.Chain{Tokens: tokens}
	body, _ := json.Marshal(solverConfig.SolverConfig{Chains: chains})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer server.Close()

	sc, err := config.GetSharedConfigFromNetwork(context.Background(), server.Client(), server.URL)

	s.Nil(err)
	s.EqualValues(18, sc.Chains["eip155:42161"].Tokens["WETH"].Decimals)
	s.Equal("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", sc.Chains["eip155:42161"].Tokens["WETH"].Address)
}

type TokenStoreTestSuite struct {
	suite.Suite

	store *config.TokenStore
}

func TestRunTokenStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TokenStoreTestSuite))
}

func (s *TokenStoreTestSuite) SetupTest() {
	tokens := make(map[string]solverConfig.Token)
	tokens["USDC"] = solverConfig.Token{Address: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", Decimals: 6}
	chains := make(map[string]solverConfig.Chain)
	chains["eip155:42161"] = solverConfig.Chain{Tokens: tokens}

	s.store = config.NewTokenStore(solverConfig.SolverConfig{Chains: chains})
}

func (s *TokenStoreTestSuite) Test_ConfigByAddress_CaseInsensitive() {
	symbol, t, err := s.store.ConfigByAddress("eip155:42161", "0xAF88D065E77C8CC2239327C5EDB3A432268E5831")

	s.Nil(err)
	s.Equal("USDC", symbol)
	s.Equal(uint8(6), t.Decimals)
}

func (s *TokenStoreTestSuite) Test_ConfigBySymbol_MissingChain() {
	_, err := s.store.ConfigBySymbol("sui:mainnet", "USDC")

	s.NotNil(err)
}

func (s *TokenStoreTestSuite) Test_FromRegistry() {
	store := config.NewTokenStoreFromRegistry(chain.DefaultRegistry())

	t, err := store.ConfigBySymbol("sui:mainnet", "SUI")

	s.Nil(err)
	s.Equal(uint8(9), t.Decimals)
	s.Len(store.ChainTokens("eip155:42161"), 2)
	s.Equal("ETH", store.ChainTokens("eip155:42161")[0].Symbol)
}

func Test_ToBaseUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals uint8
		want     *big.Int
		wantErr  bool
	}{
		{name: "whole", amount: "2", decimals: 6, want: big.NewInt(2000000)},
		{name: "fraction", amount: "1.5", decimals: 9, want: big.NewInt(1500000000)},
		{name: "too precise", amount: "0.0000001", decimals: 6, wantErr: true},
		{name: "invalid", amount: "abc", decimals: 6, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := config.ToBaseUnits(tc.amount, tc.decimals)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Cmp(tc.want) != 0 {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}

	if s := config.FromBaseUnits(big.NewInt(1500000), 6); s != "1.5" {
		t.Errorf("expected 1.5, got %s", s)
	}
}
