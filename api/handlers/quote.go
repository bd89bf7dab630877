package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/protocol/solver"
)

type Quoter interface {
	ChainRegistry
	GetQuote(ctx context.Context, req *solver.QuoteRequest) (*solver.QuoteResponse, error)
}

type QuoteBody struct {
	FromChain chain.Chain `json:"fromChain"`
	ToChain   chain.Chain `json:"toChain"`
	Token     string      `json:"token"`
	ToToken   string      `json:"toToken"`
	Amount    *BigInt     `json:"amount"`
}

type QuoteResponse struct {
	ExpectedOutput *BigInt `json:"expectedOutput"`
	UUID           string  `json:"uuid"`
}

type QuoteHandler struct {
	quoter Quoter
}

func NewQuoteHandler(quoter Quoter) *QuoteHandler {
	return &QuoteHandler{
		quoter: quoter,
	}
}

// HandleQuote resolves network ids of both chains and requests a solver quote
func (h *QuoteHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	b := &QuoteBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	if b.Amount == nil || b.Amount.Int == nil {
		JSONError(w, fmt.Errorf("invalid request body: missing amount"), http.StatusBadRequest)
		return
	}

	from, err := h.quoter.GetChainConfig(b.FromChain)
	if err != nil {
		IntentError(w, err)
		return
	}
	to, err := h.quoter.GetChainConfig(b.ToChain)
	if err != nil {
		IntentError(w, err)
		return
	}

	quote, err := h.quoter.GetQuote(r.Context(), &solver.QuoteRequest{
		TokenSrc:             b.Token,
		TokenSrcBlockchainID: from.NID(),
		TokenDst:             b.ToToken,
		TokenDstBlockchainID: to.NID(),
		SrcAmount:            b.Amount.String(),
	})
	if err != nil {
		IntentError(w, err)
		return
	}

	resp := QuoteResponse{UUID: quote.Output.UUID}
	if quote.Output.ExpectedOutput != nil {
		resp.ExpectedOutput = &BigInt{quote.Output.ExpectedOutput.Int}
	}
	JSONResponse(w, resp)
}
