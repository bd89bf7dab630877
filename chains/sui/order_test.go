package sui_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/sprintertech/sprinter-intents/chains/sui"
	mock_sui "github.com/sprintertech/sprinter-intents/chains/sui/mock"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const digest = "5bKyJ8sqjKzRZ3JM6Qg1uPhD9bGL9Ls9Zc2L4y7oVhPc"

type CreateIntentOrderTestSuite struct {
	suite.Suite

	mockWallet *mock_sui.MockWallet
	mockClient *mock_sui.MockClient
	provider   *sui.Provider
	from       *chain.SuiChainConfig
	to         chain.ChainConfig
	params     *types.OrderParams
}

func TestRunCreateIntentOrderTestSuite(t *testing.T) {
	suite.Run(t, new(CreateIntentOrderTestSuite))
}

func (s *CreateIntentOrderTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockWallet = mock_sui.NewMockWallet(ctrl)
	s.mockClient = mock_sui.NewMockClient(ctrl)
	s.provider = sui.NewProvider(sui.Account{
		Address: owner,
		Chains:  []string{sui.Mainnet.Chain()},
	}, s.mockWallet, s.mockClient)

	registry := chain.DefaultRegistry()
	from, _ := registry.ConfigFor(chain.Sui)
	s.from, _ = chain.SuiConfig(from)
	s.to, _ = registry.ConfigFor(chain.Arbitrum)

	s.params = &types.OrderParams{
		QuoteUUID:   "quote-1",
		FromAddress: owner,
		ToAddress:   "0xde526bA5d1ad94cC59D7A79d99A59F607d31A657",
		Token:       usdcType,
		Amount:      big.NewInt(40),
		ToToken:     "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
		ToAmount:    big.NewInt(39),
	}
}

func (s *CreateIntentOrderTestSuite) Test_InvalidAmount_NoChainCall() {
	s.params.Amount = big.NewInt(-1)

	_, err := sui.CreateIntentOrder(context.Background(), s.params, s.from, s.to, s.provider)

	s.Equal(types.ErrInvalidAmount, types.ErrorCodeOf(err))
}

func (s *CreateIntentOrderTestSuite) Test_InsufficientBalance() {
	s.mockClient.EXPECT().GetCoins(gomock.Any(), owner, usdcType, nil).Return(&sui.CoinPage{Data: coins("10")}, nil)

	_, err := sui.CreateIntentOrder(context.Background(), s.params, s.from, s.to, s.provider)

	s.Equal(types.ErrInsufficientBalance, types.ErrorCodeOf(err))
}

func (s *CreateIntentOrderTestSuite) Test_NoSigningChain() {
	s.provider.Account.Chains = nil
	s.mockClient.EXPECT().GetCoins(gomock.Any(), owner, usdcType, nil).Return(&sui.CoinPage{Data: coins("40")}, nil)

	_, err := sui.CreateIntentOrder(context.Background(), s.params, s.from, s.to, s.provider)

	s.Equal(types.ErrNoSigningChainAvailable, types.ErrorCodeOf(err))
}

func (s *CreateIntentOrderTestSuite) Test_WalletRejected() {
	s.mockClient.EXPECT().GetCoins(gomock.Any(), owner, usdcType, nil).Return(&sui.CoinPage{Data: coins("40")}, nil)
	s.mockWallet.EXPECT().SignTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("user rejected"))

	_, err := sui.CreateIntentOrder(context.Background(), s.params, s.from, s.to, s.provider)

	s.Equal(types.ErrSubmissionRejected, types.ErrorCodeOf(err))
}

func (s *CreateIntentOrderTestSuite) Test_ExecutionFailed() {
	s.mockClient.EXPECT().GetCoins(gomock.Any(), owner, usdcType, nil).Return(&sui.CoinPage{Data: coins("40")}, nil)
	s.mockWallet.EXPECT().SignTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&sui.SignedTransaction{
		Bytes:     "AAA=",
		Signature: "sig",
	}, nil)
	s.mockClient.EXPECT().ExecuteTransactionBlock(gomock.Any(), "AAA=", []string{"sig"}).Return(nil, errors.New("error"))

	_, err := sui.CreateIntentOrder(context.Background(), s.params, s.from, s.to, s.provider)

	s.Equal(types.ErrSubmissionRejected, types.ErrorCodeOf(err))
}

func (s *CreateIntentOrderTestSuite) Test_TokenOrder_MergesAndSplits() {
	c := coins("30", "50", "20")
	s.mockClient.EXPECT().GetCoins(gomock.Any(), owner, usdcType, nil).Return(&sui.CoinPage{Data: c}, nil)
	s.mockWallet.EXPECT().SignTransaction(gomock.Any(), gomock.Any(), s.provider.Account, "sui:mainnet").DoAndReturn(
		func(ctx context.Context, tx *sui.Transaction, account sui.Account, chain string) (*sui.SignedTransaction, error) {
			s.Equal(owner, tx.Sender)
			s.Len(tx.Commands, 3)
			s.Equal("MergeCoins", tx.Commands[0].Kind())
			s.Equal("SplitCoins", tx.Commands[1].Kind())

			call := tx.Commands[2].(*sui.MoveCall)
			s.Equal(s.from.PackageID, call.Package)
			s.Equal("main", call.Module)
			s.Equal("swap", call.Function)
			s.Equal([]string{usdcType}, call.TypeArguments)
			s.Len(call.Arguments, 7)
			s.Equal(s.from.StorageID, tx.Inputs[call.Arguments[0].Index].ObjectID)
			s.Equal(sui.PureString(s.to.NID()), tx.Inputs[call.Arguments[1].Index].Pure)
			s.Equal(sui.Argument{Kind: sui.NestedResultArgument, Index: 1}, call.Arguments[2])
			s.Equal(sui.PureString(s.params.ToToken), tx.Inputs[call.Arguments[3].Index].Pure)
			s.Equal(sui.PureString(s.params.ToAddress), tx.Inputs[call.Arguments[4].Index].Pure)
			s.Equal(byte(39), tx.Inputs[call.Arguments[5].Index].Pure[0])
			s.Equal(sui.PureBytes([]byte(`{"quote_uuid":"quote-1"}`)), tx.Inputs[call.Arguments[6].Index].Pure)

			return &sui.SignedTransaction{Bytes: "AAA=", Signature: "sig"}, nil
		})
	s.mockClient.EXPECT().ExecuteTransactionBlock(gomock.Any(), "AAA=", []string{"sig"}).Return(&sui.TransactionBlockResponse{
		Digest: digest,
	}, nil)

	res, err := sui.CreateIntentOrder(context.Background(), s.params, s.from, s.to, s.provider)

	s.Nil(err)
	s.Equal(digest, res)
}

func (s *CreateIntentOrderTestSuite) Test_NativeOrder_SplitsGas() {
	s.params.Token = s.from.Native
	s.mockWallet.EXPECT().SignTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx *sui.Transaction, account sui.Account, chain string) (*sui.SignedTransaction, error) {
			split := tx.Commands[0].(*sui.SplitCoins)
			s.Equal(sui.GasCoinArgument, split.Coin.Kind)
			return &sui.SignedTransaction{Bytes: "AAA=", Signature: "sig"}, nil
		})
	s.mockClient.EXPECT().ExecuteTransactionBlock(gomock.Any(), gomock.Any(), gomock.Any()).Return(&sui.TransactionBlockResponse{
		Digest: digest,
	}, nil)

	_, err := sui.CreateIntentOrder(context.Background(), s.params, s.from, s.to, s.provider)

	s.Nil(err)
}

func (s *CreateIntentOrderTestSuite) Test_CancelIntentOrder() {
	s.mockWallet.EXPECT().SignTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx *sui.Transaction, account sui.Account, chain string) (*sui.SignedTransaction, error) {
			call := tx.Commands[0].(*sui.MoveCall)
			s.Equal("cancel", call.Function)
			s.Equal(sui.PureString("7"), tx.Inputs[call.Arguments[1].Index].Pure)
			return &sui.SignedTransaction{Bytes: "AAA=", Signature: "sig"}, nil
		})
	s.mockClient.EXPECT().ExecuteTransactionBlock(gomock.Any(), gomock.Any(), gomock.Any()).Return(&sui.TransactionBlockResponse{
		Digest: digest,
	}, nil)

	res, err := sui.CancelIntentOrder(context.Background(), big.NewInt(7), s.from, s.provider)

	s.Nil(err)
	s.Equal(digest, res)
}

func (s *CreateIntentOrderTestSuite) Test_CancelIntentOrder_InvalidID() {
	_, err := sui.CancelIntentOrder(context.Background(), nil, s.from, s.provider)

	s.Equal(types.ErrInvalidPayload, types.ErrorCodeOf(err))
}

func (s *CreateIntentOrderTestSuite) Test_GetOrder() {
	s.mockClient.EXPECT().WaitForTransaction(gomock.Any(), digest).Return(&sui.TransactionBlockResponse{
		Digest: digest,
		Events: []sui.Event{
			{
				Type: s.from.PackageID + "::main::SwapIntent",
				ParsedJSON: []byte(`{
					"id": "12",
					"emitter": "0x490f",
					"src_nid": "sui",
					"dst_nid": "0xaa37dc.arbitrum",
					"creator": "` + owner + `",
					"destination_address": "0xde526bA5d1ad94cC59D7A79d99A59F607d31A657",
					"token": "` + usdcType + `",
					"amount": "40",
					"to_token": "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
					"to_amount": 39,
					"data": [123,34,113,117,111,116,101,95,117,117,105,100,34,58,34,113,49,34,125]
				}`),
			},
		},
	}, nil)

	order, err := sui.GetOrder(context.Background(), digest, s.provider)

	s.Nil(err)
	s.Equal(int64(12), order.ID.Int64())
	s.Equal("0xaa37dc.arbitrum", order.DstNID)
	s.Equal(int64(40), order.Amount.Int64())
	s.Equal(int64(39), order.ToAmount.Int64())
	s.Equal("q1", order.QuoteUUID())
}

func (s *CreateIntentOrderTestSuite) Test_GetOrder_NoEvents() {
	s.mockClient.EXPECT().WaitForTransaction(gomock.Any(), digest).Return(&sui.TransactionBlockResponse{Digest: digest}, nil)

	_, err := sui.GetOrder(context.Background(), digest, s.provider)

	s.Equal(types.ErrChainQueryFailed, types.ErrorCodeOf(err))
}
