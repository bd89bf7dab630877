package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
)

// Client is the read side of an EVM connection. *ethclient.Client satisfies it.
type Client interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethTypes.Receipt, error)
}

// TxSender signs and broadcasts a transaction from the connected account.
type TxSender interface {
	SendTransaction(ctx context.Context, to common.Address, data []byte, value *big.Int) (common.Hash, error)
}

// Provider is a caller owned handle to a signer on an account model chain.
type Provider struct {
	Address common.Address
	Client  Client
	Sender  TxSender
}

func NewProvider(address common.Address, client Client, sender TxSender) *Provider {
	return &Provider{
		Address: address,
		Client:  client,
		Sender:  sender,
	}
}
