package sui

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/sprintertech/sprinter-intents/types"
)

type Coin struct {
	CoinType            string `json:"coinType"`
	CoinObjectID        string `json:"coinObjectId"`
	Version             string `json:"version"`
	Digest              string `json:"digest"`
	Balance             string `json:"balance"`
	PreviousTransaction string `json:"previousTransaction"`
}

func (c Coin) Value() (*big.Int, error) {
	v, ok := new(big.Int).SetString(c.Balance, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid balance %s of coin %s", c.Balance, c.CoinObjectID)
	}
	return v, nil
}

type CoinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

type Event struct {
	Type       string          `json:"type"`
	Sender     string          `json:"sender"`
	PackageID  string          `json:"packageId"`
	ParsedJSON json.RawMessage `json:"parsedJson"`
}

type TransactionBlockResponse struct {
	Digest string  `json:"digest"`
	Events []Event `json:"events"`
}

type SignedTransaction struct {
	Bytes     string `json:"bytes"`
	Signature string `json:"signature"`
}

// Account is the connected wallet account with the chains it can sign for.
type Account struct {
	Address string
	Chains  []string
}

// Wallet serializes and signs a transaction for the given account and chain.
type Wallet interface {
	SignTransaction(ctx context.Context, tx *Transaction, account Account, chain string) (*SignedTransaction, error)
}

// Client is the fullnode side of an object model connection.
type Client interface {
	GetCoins(ctx context.Context, owner string, coinType string, cursor *string) (*CoinPage, error)
	ExecuteTransactionBlock(ctx context.Context, txBytes string, signatures []string) (*TransactionBlockResponse, error)
	WaitForTransaction(ctx context.Context, digest string) (*TransactionBlockResponse, error)
}

// Provider is a caller owned handle to a signer on an object model chain.
type Provider struct {
	Account Account
	Wallet  Wallet
	Client  Client
}

func NewProvider(account Account, wallet Wallet, client Client) *Provider {
	return &Provider{
		Account: account,
		Wallet:  wallet,
		Client:  client,
	}
}

// SigningChain returns the first chain the account can sign for.
func (p *Provider) SigningChain() (string, error) {
	if len(p.Account.Chains) == 0 || p.Account.Chains[0] == "" {
		return "", types.NewError(types.ErrNoSigningChainAvailable, "account %s has no signing chain", p.Account.Address)
	}
	return p.Account.Chains[0], nil
}
