package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-intents/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/types"
)

// CreateIntentOrder submits a swap order to the intent contract of the source chain
// and returns the transaction hash.
func CreateIntentOrder(
	ctx context.Context,
	params *types.OrderParams,
	from *chain.EvmChainConfig,
	to chain.ChainConfig,
	provider *Provider,
) (common.Hash, error) {
	if err := params.Validate(); err != nil {
		return common.Hash{}, err
	}
	if !common.IsHexAddress(params.Token) {
		return common.Hash{}, types.NewError(types.ErrInvalidPayload, "invalid token address %s", params.Token)
	}

	order := types.NewSwapOrder(params, from.IntentContract.Hex(), from.Nid, to.NID())
	contract := contracts.NewIntentContract(from.IntentContract)
	calldata, err := contract.SwapCalldata(order)
	if err != nil {
		return common.Hash{}, types.WrapError(types.ErrInvalidPayload, err, "failed encoding swap order")
	}

	value := big.NewInt(0)
	if from.IsNative(common.HexToAddress(params.Token)) {
		value = new(big.Int).Set(order.Amount)
	}

	hash, err := send(ctx, provider, from, contract.Address(), calldata, value)
	if err != nil {
		return common.Hash{}, err
	}

	log.Info().
		Str("chain", string(from.Name)).
		Str("dstNID", order.DstNID).
		Msgf("Submitted intent order %s", hash.Hex())

	return hash, nil
}

// CancelIntentOrder cancels an open order created by the connected account.
func CancelIntentOrder(
	ctx context.Context,
	orderID *big.Int,
	cfg *chain.EvmChainConfig,
	provider *Provider,
) (common.Hash, error) {
	if orderID == nil || orderID.Sign() <= 0 {
		return common.Hash{}, types.NewError(types.ErrInvalidPayload, "invalid order id")
	}

	contract := contracts.NewIntentContract(cfg.IntentContract)
	calldata, err := contract.CancelCalldata(orderID)
	if err != nil {
		return common.Hash{}, types.WrapError(types.ErrInvalidPayload, err, "failed encoding cancel")
	}

	hash, err := send(ctx, provider, cfg, contract.Address(), calldata, big.NewInt(0))
	if err != nil {
		return common.Hash{}, err
	}

	return hash, nil
}

// GetOrder reads the order created by the given transaction.
func GetOrder(
	ctx context.Context,
	txHash string,
	cfg *chain.EvmChainConfig,
	provider *Provider,
) (*types.SwapOrder, error) {
	receipt, err := provider.Client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		return nil, types.WrapError(types.ErrChainQueryFailed, err, "failed fetching receipt %s", txHash)
	}

	order, err := contracts.NewIntentContract(cfg.IntentContract).ParseSwapIntent(receipt)
	if err != nil {
		return nil, types.WrapError(types.ErrChainQueryFailed, err, "failed parsing order from %s", txHash)
	}

	return order, nil
}

func send(
	ctx context.Context,
	provider *Provider,
	cfg *chain.EvmChainConfig,
	to common.Address,
	data []byte,
	value *big.Int,
) (common.Hash, error) {
	if provider.Sender == nil {
		return common.Hash{}, types.NewError(types.ErrNoSigningChainAvailable, "no signer for account %s", provider.Address.Hex())
	}

	hash, err := provider.Sender.SendTransaction(ctx, to, data, value)
	if err != nil {
		return common.Hash{}, types.WrapError(types.ErrSubmissionRejected, err, "transaction rejected on %s", cfg.Name)
	}
	return hash, nil
}
