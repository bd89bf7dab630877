package types

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrUnsupportedChain        ErrorCode = "UNSUPPORTED_CHAIN"
	ErrInvalidAmount           ErrorCode = "INVALID_AMOUNT"
	ErrInvalidPayload          ErrorCode = "INVALID_PAYLOAD"
	ErrProviderKindMismatch    ErrorCode = "PROVIDER_KIND_MISMATCH"
	ErrChainQueryFailed        ErrorCode = "CHAIN_QUERY_FAILED"
	ErrInsufficientBalance     ErrorCode = "INSUFFICIENT_BALANCE"
	ErrInsufficientAllowance   ErrorCode = "INSUFFICIENT_ALLOWANCE"
	ErrNoSigningChainAvailable ErrorCode = "NO_SIGNING_CHAIN_AVAILABLE"
	ErrSubmissionRejected      ErrorCode = "SUBMISSION_REJECTED"
	ErrSolverUnreachable       ErrorCode = "SOLVER_UNREACHABLE"
	ErrSolverRejected          ErrorCode = "SOLVER_REJECTED"
	ErrUnknown                 ErrorCode = "UNKNOWN"
)

// SolverErrorCode is the numeric error code reported by the solver API.
type SolverErrorCode int

const (
	SolverNoExecutionModuleFound    SolverErrorCode = -4
	SolverQuoteNotFound             SolverErrorCode = -8
	SolverQuoteNotMatch             SolverErrorCode = -10
	SolverIntentDataNotMatch        SolverErrorCode = -11
	SolverNoGasHandlerForBlockchain SolverErrorCode = -12
	SolverIntentNotFound            SolverErrorCode = -13
	SolverQuoteNotEnabled           SolverErrorCode = -14
	SolverNoPrivateLiquidity        SolverErrorCode = -15
	SolverUnknown                   SolverErrorCode = -999
)

type SolverErrorDetail struct {
	Code    SolverErrorCode `json:"code"`
	Message string          `json:"message"`
}

// IntentError is the only error type returned across the public boundary.
type IntentError struct {
	Code    ErrorCode
	Message string
	// Solver is set for SOLVER_REJECTED and SOLVER_UNREACHABLE.
	Solver *SolverErrorDetail
	// TxHash is set when the order reached the chain before the failure.
	TxHash string
	Err    error
}

func (e *IntentError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Solver != nil {
		msg = fmt.Sprintf("%s (solver code %d: %s)", msg, e.Solver.Code, e.Solver.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *IntentError) Unwrap() error {
	return e.Err
}

func NewError(code ErrorCode, format string, args ...interface{}) *IntentError {
	return &IntentError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func WrapError(code ErrorCode, err error, format string, args ...interface{}) *IntentError {
	return &IntentError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// ToIntentError returns err as an IntentError, classifying unknown errors as UNKNOWN.
func ToIntentError(err error) *IntentError {
	if err == nil {
		return nil
	}

	var ie *IntentError
	if errors.As(err, &ie) {
		return ie
	}
	return WrapError(ErrUnknown, err, "unexpected failure")
}

// ErrorCodeOf returns the code carried by err, or an empty code for nil.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	return ToIntentError(err).Code
}
