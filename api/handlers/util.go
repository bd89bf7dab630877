package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
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

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	type errorResponse struct {
		Code   int                      `json:"code"`
		Reason string                   `json:"reason"`
		Error  types.ErrorCode          `json:"error,omitempty"`
		Solver *types.SolverErrorDetail `json:"solver,omitempty"`
	}
	resp := errorResponse{
		Reason: err.Error(),
		Code:   code,
	}
	if ie := types.ToIntentError(err); ie.Code != types.ErrUnknown {
		resp.Error = ie.Code
		resp.Solver = ie.Solver
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// IntentError writes err with the status code matching its error code.
func IntentError(w http.ResponseWriter, err error) {
	JSONError(w, err, statusCode(types.ErrorCodeOf(err)))
}

func statusCode(code types.ErrorCode) int {
	switch code {
	case types.ErrInvalidAmount, types.ErrInvalidPayload:
		return http.StatusBadRequest
	case types.ErrUnsupportedChain:
		return http.StatusNotFound
	case types.ErrSolverRejected:
		return http.StatusUnprocessableEntity
	case types.ErrSolverUnreachable, types.ErrChainQueryFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func JSONResponse(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
