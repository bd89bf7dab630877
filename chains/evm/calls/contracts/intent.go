package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/sprinter-intents/chains/evm/calls/consts"
	"github.com/sprintertech/sprinter-intents/chains/evm/calls/events"
	"github.com/sprintertech/sprinter-intents/types"
)

// SwapOrderTuple mirrors the on-chain SwapOrder struct.
type SwapOrderTuple struct {
	Id                 *big.Int
	Emitter            common.Address
	SrcNID             string
	DstNID             string
	Creator            string
	DestinationAddress string
	Token              common.Address
	Amount             *big.Int
	ToToken            string
	ToAmount           *big.Int
	Data               []byte
}

type IntentContract struct {
	address common.Address
	abi     abi.ABI
}

func NewIntentContract(address common.Address) *IntentContract {
	return &IntentContract{
		address: address,
		abi:     consts.IntentABI,
	}
}

func (c *IntentContract) Address() common.Address {
	return c.address
}

// SwapCalldata encodes the order creation call.
func (c *IntentContract) SwapCalldata(order *types.SwapOrder) ([]byte, error) {
	if !common.IsHexAddress(order.Emitter) {
		return nil, fmt.Errorf("invalid emitter address %s", order.Emitter)
	}
	if !common.IsHexAddress(order.Token) {
		return nil, fmt.Errorf("invalid token address %s", order.Token)
	}

	return c.abi.Pack("swap", SwapOrderTuple{
		Id:                 order.ID,
		Emitter:            common.HexToAddress(order.Emitter),
		SrcNID:             order.SrcNID,
		DstNID:             order.DstNID,
		Creator:            order.Creator,
		DestinationAddress: order.DestinationAddress,
		Token:              common.HexToAddress(order.Token),
		Amount:             order.Amount,
		ToToken:            order.ToToken,
		ToAmount:           order.ToAmount,
		Data:               order.Data,
	})
}

func (c *IntentContract) CancelCalldata(orderID *big.Int) ([]byte, error) {
	return c.abi.Pack("cancel", orderID)
}

// ParseSwapIntent returns the order emitted by this contract in the receipt.
func (c *IntentContract) ParseSwapIntent(receipt *ethTypes.Receipt) (*types.SwapOrder, error) {
	for _, l := range receipt.Logs {
		if l.Address != c.address || len(l.Topics) < 2 || l.Topics[0] != events.SwapIntentSig.GetTopic() {
			continue
		}

		var e events.SwapIntent
		err := c.abi.UnpackIntoInterface(&e, "SwapIntent", l.Data)
		if err != nil {
			return nil, err
		}

		return &types.SwapOrder{
			ID:                 new(big.Int).SetBytes(l.Topics[1].Bytes()),
			Emitter:            e.Emitter.Hex(),
			SrcNID:             e.SrcNID,
			DstNID:             e.DstNID,
			Creator:            e.Creator,
			DestinationAddress: e.DestinationAddress,
			Token:              e.Token.Hex(),
			Amount:             e.Amount,
			ToToken:            e.ToToken,
			ToAmount:           e.ToAmount,
			Data:               e.Data,
		}, nil
	}

	return nil, fmt.Errorf("no SwapIntent log in transaction %s", receipt.TxHash.Hex())
}
