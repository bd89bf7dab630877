package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/types"
)

var orderChain string

var orderCMD = &cobra.Command{
	Use:     "order <tx-hash>",
	Short:   "Show the order created by a transaction",
	Example: `  intents order 0x9c1f... --chain arb`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := setup(ctx)
		if err != nil {
			return err
		}

		c := chain.Chain(orderChain)
		provider, closeProvider, err := a.Provider(ctx, c)
		if err != nil {
			return err
		}
		defer closeProvider()

		order, err := withSpinner(cmd, "Fetching order...", func() (*types.SwapOrder, error) {
			return a.Service.GetIntentOrder(ctx, c, args[0], provider)
		})
		if err != nil {
			return describeError(err)
		}

		if jsonOutput(cmd) {
			return printJSON(cmd, order)
		}
		printField(cmd, "ID", color.CyanString(order.ID.String()))
		printField(cmd, "Route", fmt.Sprintf("%s -> %s", order.SrcNID, order.DstNID))
		printField(cmd, "Creator", order.Creator)
		printField(cmd, "Recipient", order.DestinationAddress)
		printField(cmd, "Token", order.Token)
		printField(cmd, "Amount", order.Amount.String())
		printField(cmd, "To token", order.ToToken)
		printField(cmd, "To amount", order.ToAmount.String())
		printField(cmd, "Quote", order.QuoteUUID())
		return nil
	},
}

var cancelChain string

var cancelCMD = &cobra.Command{
	Use:     "cancel <order-id>",
	Short:   "Cancel an open order of the configured account",
	Example: `  intents cancel 42 --chain arb`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			return describeError(types.NewError(types.ErrInvalidPayload, "invalid order id %s", args[0]))
		}

		ctx := context.Background()
		a, err := setup(ctx)
		if err != nil {
			return err
		}

		c := chain.Chain(cancelChain)
		provider, closeProvider, err := a.Provider(ctx, c)
		if err != nil {
			return err
		}
		defer closeProvider()

		txHash, err := withSpinner(cmd, "Cancelling order...", func() (string, error) {
			return a.Service.CancelIntentOrder(ctx, c, orderID, provider)
		})
		if err != nil {
			return describeError(err)
		}

		if jsonOutput(cmd) {
			return printJSON(cmd, map[string]string{"txHash": txHash})
		}
		printField(cmd, "Cancelled", color.GreenString(txHash))
		return nil
	},
}

func init() {
	orderCMD.Flags().StringVar(&orderChain, "chain", "", "Chain the order was created on")
	_ = orderCMD.MarkFlagRequired("chain")

	cancelCMD.Flags().StringVar(&cancelChain, "chain", "", "Chain the order was created on")
	_ = cancelCMD.MarkFlagRequired("chain")
}
