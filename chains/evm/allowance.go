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

// CheckAllowance reports whether the intent contract may move amount of token
// from owner. The native token needs no approval and is always allowed.
func CheckAllowance(
	ctx context.Context,
	token string,
	amount *big.Int,
	owner common.Address,
	cfg *chain.EvmChainConfig,
	provider *Provider,
) (bool, error) {
	if amount == nil || amount.Sign() <= 0 {
		return false, types.NewError(types.ErrInvalidAmount, "amount must be greater than zero")
	}
	if !common.IsHexAddress(token) {
		return false, types.NewError(types.ErrInvalidPayload, "invalid token address %s", token)
	}

	tokenAddress := common.HexToAddress(token)
	if cfg.IsNative(tokenAddress) {
		return true, nil
	}

	allowance, err := contracts.NewERC20Contract(provider.Client, tokenAddress).Allowance(ctx, owner, cfg.IntentContract)
	if err != nil {
		return false, types.WrapError(types.ErrChainQueryFailed, err, "failed reading allowance of %s on %s", owner.Hex(), cfg.Name)
	}

	log.Debug().
		Str("chain", string(cfg.Name)).
		Str("token", tokenAddress.Hex()).
		Str("owner", owner.Hex()).
		Msgf("Allowance %s, required %s", allowance, amount)

	return allowance.Cmp(amount) >= 0, nil
}
