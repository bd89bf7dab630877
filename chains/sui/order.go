package sui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/types"
)

const (
	SwapFunction   = "main::swap"
	CancelFunction = "main::cancel"
)

// MoveBytes decodes a vector<u8> that fullnodes render either as a number
// array or as a string.
type MoveBytes []byte

func (b *MoveBytes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = []byte(s)
		return nil
	}

	var values []uint8
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*b = values
	return nil
}

type swapEvent struct {
	ID                 json.Number `json:"id"`
	Emitter            string      `json:"emitter"`
	SrcNID             string      `json:"src_nid"`
	DstNID             string      `json:"dst_nid"`
	Creator            string      `json:"creator"`
	DestinationAddress string      `json:"destination_address"`
	Token              string      `json:"token"`
	Amount             json.Number `json:"amount"`
	ToToken            string      `json:"to_token"`
	ToAmount           json.Number `json:"to_amount"`
	Data               MoveBytes   `json:"data"`
}

func (e *swapEvent) order() (*types.SwapOrder, error) {
	numbers := make([]*big.Int, 3)
	for i, n := range []json.Number{e.ID, e.Amount, e.ToAmount} {
		v, ok := new(big.Int).SetString(n.String(), 10)
		if !ok {
			return nil, fmt.Errorf("invalid number %s", n)
		}
		numbers[i] = v
	}

	return &types.SwapOrder{
		ID:                 numbers[0],
		Emitter:            e.Emitter,
		SrcNID:             e.SrcNID,
		DstNID:             e.DstNID,
		Creator:            e.Creator,
		DestinationAddress: e.DestinationAddress,
		Token:              e.Token,
		Amount:             numbers[1],
		ToToken:            e.ToToken,
		ToAmount:           numbers[2],
		Data:               e.Data,
	}, nil
}

// CreateIntentOrder builds, signs and submits a swap transaction and returns its digest.
func CreateIntentOrder(
	ctx context.Context,
	params *types.OrderParams,
	from *chain.SuiChainConfig,
	to chain.ChainConfig,
	provider *Provider,
) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	order := types.NewSwapOrder(params, from.StorageID, from.Nid, to.NID())
	toAmount, err := PureU128(order.ToAmount)
	if err != nil {
		return "", types.WrapError(types.ErrInvalidAmount, err, "invalid destination amount")
	}

	tx := NewTransaction(provider.Account.Address)
	var input *SpendableInput
	if from.IsNative(order.Token) {
		input, err = NativeInput(tx, order.Amount)
	} else {
		input, err = SelectSpendableInput(ctx, tx, order.Token, order.Amount, provider.Account.Address, provider.Client)
	}
	if err != nil {
		return "", err
	}

	_, err = tx.MoveCall(
		fmt.Sprintf("%s::%s", from.PackageID, SwapFunction),
		[]string{order.Token},
		tx.Object(from.StorageID),
		tx.Pure(PureString(order.DstNID)),
		input.Argument,
		tx.Pure(PureString(order.ToToken)),
		tx.Pure(PureString(order.DestinationAddress)),
		tx.Pure(toAmount),
		tx.Pure(PureBytes(order.Data)),
	)
	if err != nil {
		return "", types.WrapError(types.ErrInvalidPayload, err, "invalid package")
	}

	digest, err := submit(ctx, tx, provider)
	if err != nil {
		return "", err
	}

	log.Info().
		Str("quoteUUID", params.QuoteUUID).
		Str("digest", digest).
		Str("dstNID", order.DstNID).
		Msgf("Submitted swap of %s %s", order.Amount, order.Token)
	return digest, nil
}

// CancelIntentOrder submits a cancel of a pending order and returns the transaction digest.
func CancelIntentOrder(
	ctx context.Context,
	orderID *big.Int,
	cfg *chain.SuiChainConfig,
	provider *Provider,
) (string, error) {
	if orderID == nil || orderID.Sign() <= 0 {
		return "", types.NewError(types.ErrInvalidPayload, "invalid order id %v", orderID)
	}

	tx := NewTransaction(provider.Account.Address)
	_, err := tx.MoveCall(
		fmt.Sprintf("%s::%s", cfg.PackageID, CancelFunction),
		nil,
		tx.Object(cfg.StorageID),
		tx.Pure(PureString(orderID.String())),
	)
	if err != nil {
		return "", types.WrapError(types.ErrInvalidPayload, err, "invalid package")
	}

	digest, err := submit(ctx, tx, provider)
	if err != nil {
		return "", err
	}

	log.Info().Str("digest", digest).Msgf("Submitted cancel of order %s", orderID)
	return digest, nil
}

// GetOrder waits for the transaction and decodes the swap order it emitted.
func GetOrder(ctx context.Context, digest string, provider *Provider) (*types.SwapOrder, error) {
	res, err := provider.Client.WaitForTransaction(ctx, digest)
	if err != nil {
		return nil, types.WrapError(types.ErrChainQueryFailed, err, "failed fetching transaction %s", digest)
	}
	if len(res.Events) == 0 {
		return nil, types.NewError(types.ErrChainQueryFailed, "transaction %s emitted no events", digest)
	}

	var event swapEvent
	if err := json.Unmarshal(res.Events[0].ParsedJSON, &event); err != nil {
		return nil, types.WrapError(types.ErrChainQueryFailed, err, "invalid swap event in %s", digest)
	}
	order, err := event.order()
	if err != nil {
		return nil, types.WrapError(types.ErrChainQueryFailed, err, "invalid swap event in %s", digest)
	}
	return order, nil
}

func submit(ctx context.Context, tx *Transaction, provider *Provider) (string, error) {
	signingChain, err := provider.SigningChain()
	if err != nil {
		return "", err
	}
	if provider.Wallet == nil {
		return "", types.NewError(types.ErrNoSigningChainAvailable, "no wallet connected for %s", provider.Account.Address)
	}

	signed, err := provider.Wallet.SignTransaction(ctx, tx, provider.Account, signingChain)
	if err != nil {
		return "", types.WrapError(types.ErrSubmissionRejected, err, "wallet rejected transaction")
	}

	res, err := provider.Client.ExecuteTransactionBlock(ctx, signed.Bytes, []string{signed.Signature})
	if err != nil {
		return "", types.WrapError(types.ErrSubmissionRejected, err, "failed executing transaction")
	}
	return res.Digest, nil
}
