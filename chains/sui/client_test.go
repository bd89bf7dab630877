package sui_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sprintertech/sprinter-intents/chains/sui"
	"github.com/stretchr/testify/suite"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type RPCClientTestSuite struct {
	suite.Suite

	server   *httptest.Server
	requests []rpcRequest
	handler  func(req rpcRequest) (interface{}, *int)
	client   *sui.RPCClient
}

func TestRunRPCClientTestSuite(t *testing.T) {
	suite.Run(t, new(RPCClientTestSuite))
}

func (s *RPCClientTestSuite) SetupTest() {
	s.requests = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.requests = append(s.requests, req)

		result, errCode := s.handler(req)
		res := map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
		}
		if errCode != nil {
			res["error"] = map[string]interface{}{"code": *errCode, "message": "not found"}
		} else {
			res["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}))

	var err error
	s.client, err = sui.NewRPCClient(context.Background(), s.server.URL, 10*time.Millisecond)
	s.Nil(err)
}

func (s *RPCClientTestSuite) TearDownTest() {
	s.client.Close()
	s.server.Close()
}

func (s *RPCClientTestSuite) Test_GetCoins() {
	s.handler = func(req rpcRequest) (interface{}, *int) {
		return map[string]interface{}{
			"data": []map[string]string{
				{"coinType": usdcType, "coinObjectId": "0xc01", "balance": "30"},
			},
			"nextCursor":  "0xc01",
			"hasNextPage": true,
		}, nil
	}

	page, err := s.client.GetCoins(context.Background(), owner, usdcType, nil)

	s.Nil(err)
	s.Equal("suix_getCoins", s.requests[0].Method)
	s.JSONEq(`"`+owner+`"`, string(s.requests[0].Params[0]))
	s.JSONEq(`null`, string(s.requests[0].Params[2]))
	s.Len(page.Data, 1)
	s.Equal("30", page.Data[0].Balance)
	s.True(page.HasNextPage)
	s.Equal("0xc01", *page.NextCursor)
}

func (s *RPCClientTestSuite) Test_ExecuteTransactionBlock() {
	s.handler = func(req rpcRequest) (interface{}, *int) {
		return map[string]interface{}{"digest": digest}, nil
	}

	res, err := s.client.ExecuteTransactionBlock(context.Background(), "AAA=", []string{"sig"})

	s.Nil(err)
	s.Equal(digest, res.Digest)
	s.Equal("sui_executeTransactionBlock", s.requests[0].Method)
	s.JSONEq(`["sig"]`, string(s.requests[0].Params[1]))
	s.JSONEq(`"WaitForLocalExecution"`, string(s.requests[0].Params[3]))
}

func (s *RPCClientTestSuite) Test_ExecuteTransactionBlock_EmptyDigest() {
	s.handler = func(req rpcRequest) (interface{}, *int) {
		return map[string]interface{}{}, nil
	}

	_, err := s.client.ExecuteTransactionBlock(context.Background(), "AAA=", []string{"sig"})

	s.NotNil(err)
}

func (s *RPCClientTestSuite) Test_WaitForTransaction_PollsUntilFound() {
	calls := 0
	s.handler = func(req rpcRequest) (interface{}, *int) {
		calls++
		if calls < 3 {
			code := -32602
			return nil, &code
		}
		return map[string]interface{}{
			"digest": digest,
			"events": []map[string]interface{}{{"type": "swap", "parsedJson": map[string]string{"id": "1"}}},
		}, nil
	}

	res, err := s.client.WaitForTransaction(context.Background(), digest)

	s.Nil(err)
	s.Equal(3, calls)
	s.Equal("sui_getTransactionBlock", s.requests[2].Method)
	s.Len(res.Events, 1)
}

func (s *RPCClientTestSuite) Test_WaitForTransaction_ContextCanceled() {
	s.handler = func(req rpcRequest) (interface{}, *int) {
		code := -32602
		return nil, &code
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.client.WaitForTransaction(ctx, digest)

	s.NotNil(err)
}

func (s *RPCClientTestSuite) Test_FullnodeURL() {
	url, err := sui.Mainnet.FullnodeURL()
	s.Nil(err)
	s.Equal("https://fullnode.mainnet.sui.io:443", url)

	_, err = sui.Network("unknown").FullnodeURL()
	s.NotNil(err)
}
