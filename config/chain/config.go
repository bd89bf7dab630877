// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Chain identifies a single supported chain.
type Chain string

const (
	Arbitrum Chain = "arb"
	Sui      Chain = "sui"
)

// ChainType is the execution model family of a chain.
type ChainType string

const (
	// EvmChainType is the account model: balances keyed by address, spending needs an allowance.
	EvmChainType ChainType = "evm"
	// SuiChainType is the object model: value lives in owned coin objects.
	SuiChainType ChainType = "sui"
)

type Token struct {
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Address  string `json:"address"`
}

// ChainConfig is implemented only by *EvmChainConfig and *SuiChainConfig.
type ChainConfig interface {
	Chain() Chain
	Type() ChainType
	NID() string
	CAIP() string
	NativeToken() string
	Tokens() []Token
	Validate() error

	isChainConfig()
}

type EvmChainConfig struct {
	Name            Chain
	Nid             string
	CaipID          string
	IntentContract  common.Address
	Native          common.Address
	SupportedTokens []Token
}

func (c *EvmChainConfig) Chain() Chain        { return c.Name }
func (c *EvmChainConfig) Type() ChainType     { return EvmChainType }
func (c *EvmChainConfig) NID() string         { return c.Nid }
func (c *EvmChainConfig) CAIP() string        { return c.CaipID }
func (c *EvmChainConfig) NativeToken() string { return c.Native.Hex() }
func (c *EvmChainConfig) Tokens() []Token     { return c.SupportedTokens }
func (c *EvmChainConfig) isChainConfig()      {}

// IsNative reports whether token is the zero-address native asset.
func (c *EvmChainConfig) IsNative(token common.Address) bool {
	return token == c.Native
}

func (c *EvmChainConfig) Validate() error {
	if err := validateGeneral(c.Name, c.Nid); err != nil {
		return err
	}
	if c.IntentContract == (common.Address{}) {
		return fmt.Errorf("required field chain.IntentContract empty for chain %s", c.Name)
	}
	return nil
}

type SuiChainConfig struct {
	Name            Chain
	Nid             string
	CaipID          string
	PackageID       string
	StorageID       string
	Native          string
	SupportedTokens []Token
}

func (c *SuiChainConfig) Chain() Chain        { return c.Name }
func (c *SuiChainConfig) Type() ChainType     { return SuiChainType }
func (c *SuiChainConfig) NID() string         { return c.Nid }
func (c *SuiChainConfig) CAIP() string        { return c.CaipID }
func (c *SuiChainConfig) NativeToken() string { return c.Native }
func (c *SuiChainConfig) Tokens() []Token     { return c.SupportedTokens }
func (c *SuiChainConfig) isChainConfig()      {}

// IsNative compares coin types case-insensitively.
func (c *SuiChainConfig) IsNative(coinType string) bool {
	return strings.EqualFold(coinType, c.Native)
}

func (c *SuiChainConfig) Validate() error {
	if err := validateGeneral(c.Name, c.Nid); err != nil {
		return err
	}
	if c.PackageID == "" {
		return fmt.Errorf("required field chain.PackageID empty for chain %s", c.Name)
	}
	if c.StorageID == "" {
		return fmt.Errorf("required field chain.StorageID empty for chain %s", c.Name)
	}
	return nil
}

func validateGeneral(name Chain, nid string) error {
	if name == "" {
		return fmt.Errorf("required field chain.Name empty")
	}
	if nid == "" {
		return fmt.Errorf("required field chain.NID empty for chain %s", name)
	}
	return nil
}

// EvmConfig returns the account model config when the family tag says so.
func EvmConfig(c ChainConfig) (*EvmChainConfig, bool) {
	if c == nil || c.Type() != EvmChainType {
		return nil, false
	}
	cfg, ok := c.(*EvmChainConfig)
	return cfg, ok
}

// SuiConfig returns the object model config when the family tag says so.
func SuiConfig(c ChainConfig) (*SuiChainConfig, bool) {
	if c == nil || c.Type() != SuiChainType {
		return nil, false
	}
	cfg, ok := c.(*SuiChainConfig)
	return cfg, ok
}

// WithTokens returns a copy of c with tokens appended to its supported tokens.
// Tokens already present by symbol are skipped.
func WithTokens(c ChainConfig, tokens []Token) ChainConfig {
	merged := mergeTokens(c.Tokens(), tokens)
	switch c.Type() {
	case EvmChainType:
		cfg, _ := EvmConfig(c)
		cp := *cfg
		cp.SupportedTokens = merged
		return &cp
	case SuiChainType:
		cfg, _ := SuiConfig(c)
		cp := *cfg
		cp.SupportedTokens = merged
		return &cp
	default:
		return c
	}
}

func mergeTokens(existing, extra []Token) []Token {
	out := make([]Token, 0, len(existing)+len(extra))
	seen := make(map[string]struct{})
	for _, t := range append(append([]Token{}, existing...), extra...) {
		key := strings.ToUpper(t.Symbol)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
