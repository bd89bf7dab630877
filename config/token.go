package config

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	solverConfig "github.com/sprintertech/solver-config/go/config"
	"github.com/sprintertech/sprinter-intents/config/chain"
)

// TokenStore holds token descriptors per CAIP-2 chain id.
type TokenStore struct {
	Tokens map[string]map[string]chain.Token
}

// NewTokenStore builds the store from the shared solver configuration.
func NewTokenStore(sc solverConfig.SolverConfig) *TokenStore {
	tokens := make(map[string]map[string]chain.Token)
	for caip, c := range sc.Chains {
		tokens[caip] = make(map[string]chain.Token)
		for symbol, t := range c.Tokens {
			tokens[caip][symbol] = chain.Token{
				Symbol: symbol,
				// nolint:gosec
				Decimals: uint8(t.Decimals),
				Address:  t.Address,
			}
		}
	}

	return &TokenStore{
		Tokens: tokens,
	}
}

// NewTokenStoreFromRegistry indexes the tokens the registry chains ship with.
func NewTokenStoreFromRegistry(r *chain.Registry) *TokenStore {
	tokens := make(map[string]map[string]chain.Token)
	for _, c := range r.Configs() {
		tokens[c.CAIP()] = make(map[string]chain.Token)
		for _, t := range c.Tokens() {
			tokens[c.CAIP()][t.Symbol] = t
		}
	}

	return &TokenStore{
		Tokens: tokens,
	}
}

func (s *TokenStore) ConfigByAddress(caip string, address string) (string, chain.Token, error) {
	tokens, ok := s.Tokens[caip]
	if !ok {
		return "", chain.Token{}, fmt.Errorf("no tokens for chain %s", caip)
	}

	for symbol, c := range tokens {
		if strings.EqualFold(c.Address, address) {
			return symbol, c, nil
		}
	}

	return "", chain.Token{}, fmt.Errorf("no symbol for address %s", address)
}

func (s *TokenStore) ConfigBySymbol(caip string, symbol string) (chain.Token, error) {
	tokens, ok := s.Tokens[caip]
	if !ok {
		return chain.Token{}, fmt.Errorf("no tokens for chain %s", caip)
	}

	c, ok := tokens[symbol]
	if !ok {
		return chain.Token{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

// ChainTokens returns the tokens of a chain sorted by symbol.
func (s *TokenStore) ChainTokens(caip string) []chain.Token {
	tokens := make([]chain.Token, 0, len(s.Tokens[caip]))
	for _, t := range s.Tokens[caip] {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].Symbol < tokens[j].Symbol
	})
	return tokens
}

// ToBaseUnits converts a human readable amount into the token's integer base units.
// Amounts with more fractional digits than the token supports are rejected.
func ToBaseUnits(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %s: %w", amount, err)
	}

	shifted := d.Shift(int32(decimals))
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("amount %s has more than %d decimals", amount, decimals)
	}

	return shifted.BigInt(), nil
}

// FromBaseUnits formats an integer base unit amount with the token's precision.
func FromBaseUnits(amount *big.Int, decimals uint8) string {
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}
