package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-intents/chains/evm/calls/consts"
)

type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type ERC20Contract struct {
	client  ContractCaller
	address common.Address
	abi     abi.ABI
}

func NewERC20Contract(
	client ContractCaller,
	address common.Address,
) *ERC20Contract {
	return &ERC20Contract{
		client:  client,
		address: address,
		abi:     consts.ERC20ABI,
	}
}

// Allowance returns the amount spender may transfer on behalf of owner.
func (c *ERC20Contract) Allowance(ctx context.Context, owner common.Address, spender common.Address) (*big.Int, error) {
	res, err := c.call(ctx, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	out := *abi.ConvertType(res[0], new(*big.Int)).(**big.Int)
	return out, nil
}

func (c *ERC20Contract) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	res, err := c.call(ctx, "balanceOf", account)
	if err != nil {
		return nil, err
	}

	out := *abi.ConvertType(res[0], new(*big.Int)).(**big.Int)
	return out, nil
}

func (c *ERC20Contract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	output, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &c.address,
		Data: input,
	}, nil)
	if err != nil {
		return nil, err
	}

	return c.abi.Unpack(method, output)
}
