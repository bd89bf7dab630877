package intent

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/sprintertech/sprinter-intents/chains"
	"github.com/sprintertech/sprinter-intents/chains/evm"
	"github.com/sprintertech/sprinter-intents/chains/sui"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/protocol/solver"
	"github.com/sprintertech/sprinter-intents/types"
)

const (
	MAX_STATUS_REQUESTS  = 8
	STATUS_POLL_INTERVAL = 5 * time.Second
)

type SolverAPI interface {
	GetQuote(ctx context.Context, req *solver.QuoteRequest) (*solver.QuoteResponse, error)
	PostExecution(ctx context.Context, req *solver.ExecuteRequest) (*solver.ExecuteResponse, error)
	GetStatus(ctx context.Context, req *solver.StatusRequest) (*solver.StatusResponse, error)
}

type Metrics interface {
	StartOrder(attemptID string)
	EndOrder(ctx context.Context, attemptID string, sourceChain string, err error)
}

type StatusCache interface {
	Status(taskID string) (solver.StatusOutput, bool)
	Set(taskID string, status solver.StatusOutput)
}

// IntentPayload is a single swap request from fromChain to toChain.
type IntentPayload struct {
	QuoteUUID   string
	FromChain   chain.Chain
	ToChain     chain.Chain
	FromAddress string
	ToAddress   string
	Token       string
	Amount      *big.Int
	ToToken     string
	ToAmount    *big.Int
}

func (p *IntentPayload) params() *types.OrderParams {
	return &types.OrderParams{
		QuoteUUID:   p.QuoteUUID,
		FromAddress: p.FromAddress,
		ToAddress:   p.ToAddress,
		Token:       p.Token,
		Amount:      p.Amount,
		ToToken:     p.ToToken,
		ToAmount:    p.ToAmount,
	}
}

type Option func(*IntentService)

func WithMetrics(m Metrics) Option {
	return func(s *IntentService) {
		s.metrics = m
	}
}

func WithStatusCache(c StatusCache) Option {
	return func(s *IntentService) {
		s.statuses = c
	}
}

// IntentService dispatches intent orders to the builder of the source chain family
// and registers submitted orders with the solver.
// It holds no per order state and never stores providers.
type IntentService struct {
	registry *chain.Registry
	solver   SolverAPI
	metrics  Metrics
	statuses StatusCache
}

func NewIntentService(registry *chain.Registry, solverAPI SolverAPI, opts ...Option) *IntentService {
	s := &IntentService{
		registry: registry,
		solver:   solverAPI,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsAllowanceValid checks whether the intent contract may move the payload amount.
// Object model chains have no allowances and are always valid.
func (s *IntentService) IsAllowanceValid(ctx context.Context, payload *IntentPayload, provider *chains.Provider) (valid bool, err error) {
	defer recoverError(&err)

	from, _, err := s.chains(payload)
	if err != nil {
		return false, err
	}
	if err := payload.params().Validate(); err != nil {
		return false, err
	}
	if err := provider.MatchesChain(from); err != nil {
		return false, err
	}

	cfg, ok := from.(*chain.EvmChainConfig)
	if !ok {
		return true, nil
	}
	p, err := provider.Evm()
	if err != nil {
		return false, err
	}
	return s.checkAllowance(ctx, payload, cfg, p)
}

// ExecuteIntentOrder submits the order on the source chain and registers it with the solver.
// A solver failure after submission still carries the transaction hash of the submitted order.
func (s *IntentService) ExecuteIntentOrder(
	ctx context.Context,
	payload *IntentPayload,
	provider *chains.Provider,
) (res *solver.ExecuteResponse, err error) {
	attemptID := uuid.NewString()
	s.startOrder(attemptID)
	defer func() { s.endOrder(ctx, attemptID, payload, err) }()
	defer recoverError(&err)

	txHash, err := s.createIntentOrder(ctx, payload, provider, true)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("attemptID", attemptID).
		Str("quoteUUID", payload.QuoteUUID).
		Msgf("Registering intent transaction %s with solver", txHash)

	res, err = s.solver.PostExecution(ctx, &solver.ExecuteRequest{
		IntentTxHash: txHash,
		QuoteUUID:    payload.QuoteUUID,
	})
	if err != nil {
		solverErr := *types.ToIntentError(err)
		solverErr.TxHash = txHash
		log.Warn().
			Str("attemptID", attemptID).
			Str("txHash", txHash).
			Err(err).
			Msgf("Order submitted on %s but solver registration failed", payload.FromChain)
		return nil, &solverErr
	}

	log.Info().
		Str("attemptID", attemptID).
		Str("taskID", res.Output.TaskID).
		Msgf("Executed intent order %s", txHash)
	return res, nil
}

// CreateIntentOrder submits the order on the source chain without registering it with the solver.
func (s *IntentService) CreateIntentOrder(ctx context.Context, payload *IntentPayload, provider *chains.Provider) (txHash string, err error) {
	defer recoverError(&err)

	return s.createIntentOrder(ctx, payload, provider, false)
}

// CancelIntentOrder cancels an open order on the given chain.
func (s *IntentService) CancelIntentOrder(
	ctx context.Context,
	c chain.Chain,
	orderID *big.Int,
	provider *chains.Provider,
) (txHash string, err error) {
	defer recoverError(&err)

	cfg, err := s.registry.ConfigFor(c)
	if err != nil {
		return "", err
	}
	if err := provider.MatchesChain(cfg); err != nil {
		return "", err
	}

	switch cfg := cfg.(type) {
	case *chain.EvmChainConfig:
		p, err := provider.Evm()
		if err != nil {
			return "", err
		}
		hash, err := evm.CancelIntentOrder(ctx, orderID, cfg, p)
		if err != nil {
			return "", err
		}
		return hash.Hex(), nil
	case *chain.SuiChainConfig:
		p, err := provider.Sui()
		if err != nil {
			return "", err
		}
		return sui.CancelIntentOrder(ctx, orderID, cfg, p)
	default:
		return "", types.NewError(types.ErrUnsupportedChain, "unsupported chain %s", c)
	}
}

// GetIntentOrder returns the order created by txHash on the given chain.
func (s *IntentService) GetIntentOrder(
	ctx context.Context,
	c chain.Chain,
	txHash string,
	provider *chains.Provider,
) (order *types.SwapOrder, err error) {
	defer recoverError(&err)

	cfg, err := s.registry.ConfigFor(c)
	if err != nil {
		return nil, err
	}
	if err := provider.MatchesChain(cfg); err != nil {
		return nil, err
	}

	switch cfg := cfg.(type) {
	case *chain.EvmChainConfig:
		p, err := provider.Evm()
		if err != nil {
			return nil, err
		}
		return evm.GetOrder(ctx, txHash, cfg, p)
	case *chain.SuiChainConfig:
		p, err := provider.Sui()
		if err != nil {
			return nil, err
		}
		return sui.GetOrder(ctx, txHash, p)
	default:
		return nil, types.NewError(types.ErrUnsupportedChain, "unsupported chain %s", c)
	}
}

func (s *IntentService) GetSupportedChains() []chain.Chain {
	return s.registry.Supported()
}

func (s *IntentService) GetChainConfig(c chain.Chain) (chain.ChainConfig, error) {
	return s.registry.ConfigFor(c)
}

func (s *IntentService) GetQuote(ctx context.Context, req *solver.QuoteRequest) (res *solver.QuoteResponse, err error) {
	defer recoverError(&err)

	res, err = s.solver.GetQuote(ctx, req)
	if err != nil {
		return nil, types.ToIntentError(err)
	}
	return res, nil
}

// GetStatus returns the solver status of a task. Terminal statuses are served from the cache.
func (s *IntentService) GetStatus(ctx context.Context, req *solver.StatusRequest) (res *solver.StatusResponse, err error) {
	defer recoverError(&err)

	if req != nil && s.statuses != nil {
		if status, ok := s.statuses.Status(req.TaskID); ok {
			return &solver.StatusResponse{Output: status}, nil
		}
	}

	res, err = s.solver.GetStatus(ctx, req)
	if err != nil {
		return nil, types.ToIntentError(err)
	}
	if s.statuses != nil {
		s.statuses.Set(req.TaskID, res.Output)
	}
	return res, nil
}

type taskStatus struct {
	taskID string
	status *solver.StatusResponse
}

// GetStatuses fetches the statuses of multiple tasks concurrently.
func (s *IntentService) GetStatuses(ctx context.Context, taskIDs []string) (map[string]*solver.StatusResponse, error) {
	p := pool.NewWithResults[taskStatus]().
		WithContext(ctx).
		WithMaxGoroutines(MAX_STATUS_REQUESTS)
	for _, id := range taskIDs {
		p.Go(func(ctx context.Context) (taskStatus, error) {
			res, err := s.GetStatus(ctx, &solver.StatusRequest{TaskID: id})
			if err != nil {
				return taskStatus{}, err
			}
			return taskStatus{taskID: id, status: res}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, types.ToIntentError(err)
	}

	statuses := make(map[string]*solver.StatusResponse, len(results))
	for _, r := range results {
		statuses[r.taskID] = r.status
	}
	return statuses, nil
}

// WaitForStatus polls the task until it reaches a terminal status or ctx is done.
// An unreachable solver is retried on the next tick.
func (s *IntentService) WaitForStatus(ctx context.Context, taskID string, interval time.Duration) (*solver.StatusResponse, error) {
	if interval <= 0 {
		interval = STATUS_POLL_INTERVAL
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var res *solver.StatusResponse
	for {
		status, err := s.GetStatus(ctx, &solver.StatusRequest{TaskID: taskID})
		switch {
		case types.ErrorCodeOf(err) == types.ErrSolverUnreachable:
			log.Warn().Err(err).Msgf("Failed fetching status of task %s", taskID)
		case err != nil:
			return nil, err
		case status.Output.Status.IsTerminal():
			return status, nil
		default:
			res = status
			log.Debug().Msgf("Task %s status %s", taskID, status.Output.Status)
		}

		select {
		case <-ticker.C:
			continue
		case <-ctx.Done():
			return res, types.WrapError(types.ErrUnknown, ctx.Err(), "stopped waiting for task %s", taskID)
		}
	}
}

func (s *IntentService) createIntentOrder(
	ctx context.Context,
	payload *IntentPayload,
	provider *chains.Provider,
	requireQuote bool,
) (string, error) {
	from, to, err := s.chains(payload)
	if err != nil {
		return "", err
	}
	params := payload.params()
	if err := params.Validate(); err != nil {
		return "", err
	}
	if requireQuote && payload.QuoteUUID == "" {
		return "", types.NewError(types.ErrInvalidPayload, "empty quoteUUID")
	}
	if err := provider.MatchesChain(from); err != nil {
		return "", err
	}

	switch cfg := from.(type) {
	case *chain.EvmChainConfig:
		p, err := provider.Evm()
		if err != nil {
			return "", err
		}
		valid, err := s.checkAllowance(ctx, payload, cfg, p)
		if err != nil {
			return "", err
		}
		if !valid {
			return "", types.NewError(
				types.ErrInsufficientAllowance,
				"allowance of %s for %s is lower than %s", payload.FromAddress, payload.Token, payload.Amount)
		}

		hash, err := evm.CreateIntentOrder(ctx, params, cfg, to, p)
		if err != nil {
			return "", err
		}
		return hash.Hex(), nil
	case *chain.SuiChainConfig:
		p, err := provider.Sui()
		if err != nil {
			return "", err
		}
		return sui.CreateIntentOrder(ctx, params, cfg, to, p)
	default:
		return "", types.NewError(types.ErrUnsupportedChain, "unsupported chain %s", payload.FromChain)
	}
}

func (s *IntentService) checkAllowance(
	ctx context.Context,
	payload *IntentPayload,
	cfg *chain.EvmChainConfig,
	provider *evm.Provider,
) (bool, error) {
	if !common.IsHexAddress(payload.FromAddress) {
		return false, types.NewError(types.ErrInvalidPayload, "invalid fromAddress %s", payload.FromAddress)
	}
	return evm.CheckAllowance(ctx, payload.Token, payload.Amount, common.HexToAddress(payload.FromAddress), cfg, provider)
}

func (s *IntentService) chains(payload *IntentPayload) (chain.ChainConfig, chain.ChainConfig, error) {
	if payload == nil {
		return nil, nil, types.NewError(types.ErrInvalidPayload, "empty payload")
	}

	from, err := s.registry.ConfigFor(payload.FromChain)
	if err != nil {
		return nil, nil, err
	}
	to, err := s.registry.ConfigFor(payload.ToChain)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (s *IntentService) startOrder(attemptID string) {
	if s.metrics != nil {
		s.metrics.StartOrder(attemptID)
	}
}

func (s *IntentService) endOrder(ctx context.Context, attemptID string, payload *IntentPayload, err error) {
	if s.metrics == nil || payload == nil {
		return
	}
	s.metrics.EndOrder(ctx, attemptID, string(payload.FromChain), err)
}

// recoverError converts panics and foreign errors into an IntentError.
func recoverError(err *error) {
	if r := recover(); r != nil {
		log.Error().Msgf("Recovered from panic: %v", r)
		*err = types.NewError(types.ErrUnknown, "%v", r)
		return
	}

	if *err != nil {
		*err = types.ToIntentError(*err)
	}
}
