package solver

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/sprintertech/sprinter-intents/types"
)

type BigInt struct {
	*big.Int
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if b.Int == nil {
		b.Int = new(big.Int)
	}

	s := strings.Trim(string(data), "\"")
	_, ok := b.SetString(s, 10)
	if !ok {
		return fmt.Errorf("failed to parse big.Int from %s", s)
	}

	return nil
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", b.String())), nil
}

type QuoteRequest struct {
	TokenSrc             string `json:"token_src" validate:"required"`
	TokenSrcBlockchainID string `json:"token_src_blockchain_id" validate:"required"`
	TokenDst             string `json:"token_dst" validate:"required"`
	TokenDstBlockchainID string `json:"token_dst_blockchain_id" validate:"required"`
	SrcAmount            string `json:"src_amount" validate:"required,amount"`
}

type QuoteOutput struct {
	ExpectedOutput *BigInt `json:"expected_output"`
	UUID           string  `json:"uuid"`
}

type QuoteResponse struct {
	Output QuoteOutput `json:"output"`
}

type ExecuteRequest struct {
	IntentTxHash string `json:"intent_tx_hash" validate:"required"`
	QuoteUUID    string `json:"quote_uuid" validate:"required"`
}

type ExecuteOutput struct {
	Answer string `json:"answer"`
	TaskID string `json:"task_id"`
}

type ExecuteResponse struct {
	Output ExecuteOutput `json:"output"`
}

type StatusRequest struct {
	TaskID string `json:"task_id" validate:"required"`
}

type StatusCode int

const (
	StatusNotFound           StatusCode = -1
	StatusNotStartedYet      StatusCode = 1
	StatusStartedNotFinished StatusCode = 2
	StatusSolved             StatusCode = 3
	StatusFailed             StatusCode = 4
)

func (c StatusCode) String() string {
	switch c {
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusNotStartedYet:
		return "NOT_STARTED_YET"
	case StatusStartedNotFinished:
		return "STARTED_NOT_FINISHED"
	case StatusSolved:
		return "SOLVED"
	case StatusFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("STATUS(%d)", int(c))
	}
}

// IsTerminal reports whether the task will not change status anymore.
func (c StatusCode) IsTerminal() bool {
	return c == StatusSolved || c == StatusFailed
}

type StatusOutput struct {
	Status StatusCode `json:"status"`
	TxHash string     `json:"tx_hash"`
}

type StatusResponse struct {
	Output StatusOutput `json:"output"`
}

type errorResponse struct {
	Detail *types.SolverErrorDetail `json:"detail"`
}
