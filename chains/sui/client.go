package sui

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

const (
	RPC_RETRIES        = 3
	RPC_RETRY_WAIT     = 500 * time.Millisecond
	COINS_PAGE_SIZE    = 50
	WAIT_TIMEOUT       = 60 * time.Second
	WAIT_POLL_INTERVAL = 2 * time.Second

	REQUEST_TYPE_WAIT_FOR_LOCAL_EXECUTION = "WaitForLocalExecution"
)

type RPCClient struct {
	client       *rpc.Client
	pollInterval time.Duration
}

// NewRPCClient dials a fullnode JSON-RPC endpoint over a retrying http client.
func NewRPCClient(ctx context.Context, url string, pollInterval time.Duration) (*RPCClient, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = RPC_RETRIES - 1 // RetryMax is a number of retries after an initial attempt
	retryClient.RetryWaitMin = RPC_RETRY_WAIT
	retryClient.RetryWaitMax = RPC_RETRY_WAIT
	retryClient.Logger = nil

	c, err := rpc.DialOptions(ctx, url, rpc.WithHTTPClient(retryClient.StandardClient()))
	if err != nil {
		return nil, err
	}

	if pollInterval <= 0 {
		pollInterval = WAIT_POLL_INTERVAL
	}
	return &RPCClient{
		client:       c,
		pollInterval: pollInterval,
	}, nil
}

func (c *RPCClient) GetCoins(ctx context.Context, owner string, coinType string, cursor *string) (*CoinPage, error) {
	page := new(CoinPage)
	err := c.client.CallContext(ctx, page, "suix_getCoins", owner, coinType, cursor, COINS_PAGE_SIZE)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (c *RPCClient) ExecuteTransactionBlock(ctx context.Context, txBytes string, signatures []string) (*TransactionBlockResponse, error) {
	res := new(TransactionBlockResponse)
	err := c.client.CallContext(
		ctx,
		res,
		"sui_executeTransactionBlock",
		txBytes,
		signatures,
		map[string]bool{"showRawEffects": true, "showEvents": true},
		REQUEST_TYPE_WAIT_FOR_LOCAL_EXECUTION)
	if err != nil {
		return nil, err
	}
	if res.Digest == "" {
		return nil, fmt.Errorf("empty transaction digest")
	}
	return res, nil
}

func (c *RPCClient) GetTransactionBlock(ctx context.Context, digest string) (*TransactionBlockResponse, error) {
	res := new(TransactionBlockResponse)
	err := c.client.CallContext(ctx, res, "sui_getTransactionBlock", digest, map[string]bool{"showEvents": true})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// WaitForTransaction polls until the fullnode indexed the transaction or WAIT_TIMEOUT passes.
func (c *RPCClient) WaitForTransaction(ctx context.Context, digest string) (*TransactionBlockResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, WAIT_TIMEOUT)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		res, err := c.GetTransactionBlock(ctx, digest)
		if err == nil {
			return res, nil
		}
		log.Debug().Err(err).Msgf("Transaction %s not available yet", digest)

		select {
		case <-ticker.C:
			continue
		case <-ctx.Done():
			return nil, fmt.Errorf("transaction %s not found: %w", digest, ctx.Err())
		}
	}
}

func (c *RPCClient) Close() {
	c.client.Close()
}
