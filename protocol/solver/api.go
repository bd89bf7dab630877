package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-intents/types"
)

const (
	SOLVER_TIMEOUT = 30 * time.Second

	quotePath   = "/quote"
	executePath = "/execute"
	statusPath  = "/status"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("amount", validateAmount)
}

// validateAmount accepts base 10 integers greater than zero.
func validateAmount(fl validator.FieldLevel) bool {
	v, ok := new(big.Int).SetString(fl.Field().String(), 10)
	return ok && v.Sign() > 0
}

type SolverAPI struct {
	HTTPClient *http.Client
	baseURL    string
}

func NewSolverAPI(baseURL string, timeout time.Duration) *SolverAPI {
	if timeout <= 0 {
		timeout = SOLVER_TIMEOUT
	}

	return &SolverAPI{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetQuote requests the expected output of a swap and a quote id to execute it with.
func (a *SolverAPI) GetQuote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	res := new(QuoteResponse)
	if err := a.post(ctx, quotePath, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// PostExecution registers a submitted intent transaction with its quote.
func (a *SolverAPI) PostExecution(ctx context.Context, req *ExecuteRequest) (*ExecuteResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	res := new(ExecuteResponse)
	if err := a.post(ctx, executePath, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetStatus returns the fill status of a registered task.
func (a *SolverAPI) GetStatus(ctx context.Context, req *StatusRequest) (*StatusResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	res := new(StatusResponse)
	if err := a.post(ctx, statusPath, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

func validateRequest(req interface{}) error {
	if req == nil {
		return types.NewError(types.ErrInvalidPayload, "empty request")
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == "amount" {
				return types.NewError(types.ErrInvalidAmount, "%s must be an integer greater than zero", fe.Field())
			}
		}
	}
	return types.WrapError(types.ErrInvalidPayload, err, "invalid solver request")
}

func (a *SolverAPI) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return types.WrapError(types.ErrInvalidPayload, err, "failed encoding request")
	}

	url := a.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return unreachable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return unreachable(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return unreachable(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Debug().Str("url", url).Int("status", resp.StatusCode).Msgf("Solver rejected request")
		return rejected(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return &types.IntentError{
			Code:    types.ErrSolverRejected,
			Message: "failed to unmarshal JSON",
			Solver: &types.SolverErrorDetail{
				Code:    types.SolverUnknown,
				Message: string(data),
			},
			Err: err,
		}
	}
	return nil
}

func unreachable(err error) error {
	return &types.IntentError{
		Code:    types.ErrSolverUnreachable,
		Message: "solver unreachable",
		Solver: &types.SolverErrorDetail{
			Code:    types.SolverUnknown,
			Message: err.Error(),
		},
		Err: err,
	}
}

func rejected(statusCode int, body []byte) error {
	e := new(errorResponse)
	if err := json.Unmarshal(body, e); err != nil || e.Detail == nil {
		e.Detail = &types.SolverErrorDetail{
			Code:    types.SolverUnknown,
			Message: string(body),
		}
	}

	return &types.IntentError{
		Code:    types.ErrSolverRejected,
		Message: fmt.Sprintf("unexpected status code: %d", statusCode),
		Solver:  e.Detail,
	}
}
