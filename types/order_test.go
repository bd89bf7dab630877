package types_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/sprintertech/sprinter-intents/types"
	"github.com/stretchr/testify/suite"
)

type OrderParamsTestSuite struct {
	suite.Suite

	params *types.OrderParams
}

func TestRunOrderParamsTestSuite(t *testing.T) {
	suite.Run(t, new(OrderParamsTestSuite))
}

func (s *OrderParamsTestSuite) SetupTest() {
	s.params = &types.OrderParams{
		QuoteUUID:   "4b3e5c2a-quote",
		FromAddress: "0xfrom",
		ToAddress:   "0xto",
		Token:       "0xtoken",
		Amount:      big.NewInt(100),
		ToToken:     "0x2::sui::SUI",
		ToAmount:    big.NewInt(90),
	}
}

func (s *OrderParamsTestSuite) Test_Validate_ZeroAmount() {
	s.params.Amount = big.NewInt(0)

	err := s.params.Validate()

	s.Equal(types.ErrInvalidAmount, types.ErrorCodeOf(err))
}

func (s *OrderParamsTestSuite) Test_Validate_NegativeAmount() {
	s.params.Amount = big.NewInt(-5)

	err := s.params.Validate()

	s.Equal(types.ErrInvalidAmount, types.ErrorCodeOf(err))
}

func (s *OrderParamsTestSuite) Test_Validate_NilAmount() {
	s.params.Amount = nil

	err := s.params.Validate()

	s.Equal(types.ErrInvalidAmount, types.ErrorCodeOf(err))
}

func (s *OrderParamsTestSuite) Test_Validate_EmptyToken() {
	s.params.Token = " "

	err := s.params.Validate()

	s.Equal(types.ErrInvalidPayload, types.ErrorCodeOf(err))
}

func (s *OrderParamsTestSuite) Test_Validate_Valid() {
	s.Nil(s.params.Validate())
}

func (s *OrderParamsTestSuite) Test_NewSwapOrder() {
	order := types.NewSwapOrder(s.params, "0xstorage", "sui", "0xaa37dc.arbitrum")

	s.Equal(int64(0), order.ID.Int64())
	s.Equal("0xstorage", order.Emitter)
	s.Equal("sui", order.SrcNID)
	s.Equal("0xaa37dc.arbitrum", order.DstNID)
	s.Equal("0xfrom", order.Creator)
	s.Equal("0xto", order.DestinationAddress)
	s.Equal(`{"quote_uuid":"4b3e5c2a-quote"}`, string(order.Data))
	s.Equal("4b3e5c2a-quote", order.QuoteUUID())

	s.params.Amount.SetInt64(1)
	s.Equal(int64(100), order.Amount.Int64())
}

func Test_IntentError(t *testing.T) {
	inner := errors.New("connection reset")
	err := types.WrapError(types.ErrChainQueryFailed, inner, "failed reading allowance")

	if !errors.Is(err, inner) {
		t.Errorf("expected wrapped error to unwrap to inner")
	}
	if types.ErrorCodeOf(err) != types.ErrChainQueryFailed {
		t.Errorf("unexpected code %s", types.ErrorCodeOf(err))
	}
	if types.ErrorCodeOf(errors.New("other")) != types.ErrUnknown {
		t.Errorf("expected unknown code for foreign errors")
	}
	if types.ErrorCodeOf(nil) != "" {
		t.Errorf("expected empty code for nil")
	}
}
