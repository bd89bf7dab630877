package types

import (
	"encoding/json"
	"math/big"
	"strings"
)

// SwapOrder is the chain-agnostic description of a single swap intent.
// ID stays zero until the order is settled on-chain.
type SwapOrder struct {
	ID                 *big.Int
	Emitter            string
	SrcNID             string
	DstNID             string
	Creator            string
	DestinationAddress string
	Token              string
	Amount             *big.Int
	ToToken            string
	ToAmount           *big.Int
	Data               []byte
}

// OrderParams are the caller supplied fields of an intent order.
type OrderParams struct {
	QuoteUUID   string
	FromAddress string
	ToAddress   string
	Token       string
	Amount      *big.Int
	ToToken     string
	ToAmount    *big.Int
}

type orderData struct {
	QuoteUUID string `json:"quote_uuid"`
}

// Validate checks amounts and required fields without touching the network.
func (p *OrderParams) Validate() error {
	if p.Amount == nil || p.Amount.Sign() <= 0 {
		return NewError(ErrInvalidAmount, "amount must be greater than zero")
	}
	if p.ToAmount == nil || p.ToAmount.Sign() < 0 {
		return NewError(ErrInvalidAmount, "destination amount must not be negative")
	}

	required := []struct {
		name  string
		value string
	}{
		{"fromAddress", p.FromAddress},
		{"toAddress", p.ToAddress},
		{"token", p.Token},
		{"toToken", p.ToToken},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return NewError(ErrInvalidPayload, "empty %s", f.name)
		}
	}
	return nil
}

// OrderData encodes the off-chain correlation data attached to every order.
func (p *OrderParams) OrderData() []byte {
	// marshalling a struct of a single string cannot fail
	data, _ := json.Marshal(orderData{QuoteUUID: p.QuoteUUID})
	return data
}

// NewSwapOrder builds the unsettled order for the given source emitter and network ids.
func NewSwapOrder(p *OrderParams, emitter, srcNID, dstNID string) *SwapOrder {
	return &SwapOrder{
		ID:                 big.NewInt(0),
		Emitter:            emitter,
		SrcNID:             srcNID,
		DstNID:             dstNID,
		Creator:            p.FromAddress,
		DestinationAddress: p.ToAddress,
		Token:              p.Token,
		Amount:             new(big.Int).Set(p.Amount),
		ToToken:            p.ToToken,
		ToAmount:           new(big.Int).Set(p.ToAmount),
		Data:               p.OrderData(),
	}
}

// QuoteUUID extracts the quote id from order data, if present.
func (o *SwapOrder) QuoteUUID() string {
	var d orderData
	if err := json.Unmarshal(o.Data, &d); err != nil {
		return ""
	}
	return d.QuoteUUID
}
