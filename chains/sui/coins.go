package sui

import (
	"context"
	"math/big"

	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-intents/types"
)

// CoinSelection is the set of owned coins that together cover an amount.
type CoinSelection struct {
	Coins  []Coin
	Total  *big.Int
	Amount *big.Int
}

func (s *CoinSelection) NeedsMerge() bool {
	return len(s.Coins) > 1
}

func (s *CoinSelection) NeedsSplit() bool {
	return s.Total.Cmp(s.Amount) > 0
}

// Apply merges the selected coins into the first one and splits off the
// exact amount when the selection overshoots.
func (s *CoinSelection) Apply(tx *Transaction) (Argument, error) {
	primary := tx.Object(s.Coins[0].CoinObjectID)
	if s.NeedsMerge() {
		sources := make([]Argument, 0, len(s.Coins)-1)
		for _, c := range s.Coins[1:] {
			sources = append(sources, tx.Object(c.CoinObjectID))
		}
		tx.MergeCoins(primary, sources...)
	}
	if !s.NeedsSplit() {
		return primary, nil
	}

	amount, err := PureU64(s.Amount)
	if err != nil {
		return Argument{}, types.WrapError(types.ErrInvalidAmount, err, "invalid split amount")
	}
	return tx.SplitCoins(primary, tx.Pure(amount))[0], nil
}

// SelectCoins walks coins in order and keeps them until their running total
// reaches amount.
func SelectCoins(coins []Coin, amount *big.Int) (*CoinSelection, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, types.NewError(types.ErrInvalidAmount, "amount must be greater than zero")
	}

	selection := &CoinSelection{
		Total:  big.NewInt(0),
		Amount: new(big.Int).Set(amount),
	}
	for _, c := range coins {
		value, err := c.Value()
		if err != nil {
			return nil, types.WrapError(types.ErrChainQueryFailed, err, "invalid coin")
		}

		selection.Coins = append(selection.Coins, c)
		selection.Total.Add(selection.Total, value)
		if selection.Total.Cmp(amount) >= 0 {
			return selection, nil
		}
	}

	return nil, types.NewError(
		types.ErrInsufficientBalance,
		"balance %s is lower than %s", selection.Total, amount)
}

// SpendableInput is the coin argument passed to the swap call.
type SpendableInput struct {
	Argument  Argument
	Selection *CoinSelection
}

// NativeInput splits the amount off the gas coin.
func NativeInput(tx *Transaction, amount *big.Int) (*SpendableInput, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, types.NewError(types.ErrInvalidAmount, "amount must be greater than zero")
	}

	b, err := PureU64(amount)
	if err != nil {
		return nil, types.WrapError(types.ErrInvalidAmount, err, "invalid native amount")
	}
	return &SpendableInput{
		Argument: tx.SplitCoins(tx.Gas(), tx.Pure(b))[0],
	}, nil
}

// SelectSpendableInput fetches owned coins of coinType page by page until
// they cover amount and applies the selection to tx.
func SelectSpendableInput(
	ctx context.Context,
	tx *Transaction,
	coinType string,
	amount *big.Int,
	owner string,
	client Client,
) (*SpendableInput, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, types.NewError(types.ErrInvalidAmount, "amount must be greater than zero")
	}

	var coins []Coin
	var cursor *string
	total := big.NewInt(0)
	for {
		page, err := client.GetCoins(ctx, owner, coinType, cursor)
		if err != nil {
			return nil, types.WrapError(types.ErrChainQueryFailed, err, "failed fetching %s coins of %s", coinType, owner)
		}

		for _, c := range page.Data {
			value, err := c.Value()
			if err != nil {
				return nil, types.WrapError(types.ErrChainQueryFailed, err, "invalid coin")
			}
			coins = append(coins, c)
			total.Add(total, value)
		}

		if total.Cmp(amount) >= 0 || !page.HasNextPage || page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	selection, err := SelectCoins(coins, amount)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("owner", owner).
		Str("coinType", coinType).
		Int("coins", len(selection.Coins)).
		Str("total", selection.Total.String()).
		Msgf("Selected coins for %s", amount)

	arg, err := selection.Apply(tx)
	if err != nil {
		return nil, err
	}
	return &SpendableInput{
		Argument:  arg,
		Selection: selection,
	}, nil
}
