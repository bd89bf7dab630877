package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-intents/chains"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/intent"
	"github.com/sprintertech/sprinter-intents/protocol/solver"
	"github.com/sprintertech/sprinter-intents/types"
)

var (
	swapFlags     routeFlags
	swapToAddress string
	swapWatch     bool
)

var swapCMD = &cobra.Command{
	Use:   "swap <amount> <token>",
	Short: "Quote, submit and register a swap intent",
	Long: `Requests a quote, submits the intent order from the configured account of the
source chain and registers the order with the solver.

The source chain needs an endpoint with a key. Sui orders are signed by an external
wallet and can not be submitted from the command line.`,
	Example: `  intents swap 100 USDC --from-chain arb --to-chain sui --to-token SUI --to-address 0x4f3a...
  intents swap 0.1 ETH --from-chain arb --to-chain sui --to-token SUI --to-address 0x4f3a... --watch`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		a, err := setup(ctx)
		if err != nil {
			return err
		}
		route, err := swapFlags.resolve(a, args[0], args[1])
		if err != nil {
			return err
		}

		provider, closeProvider, err := a.Provider(ctx, route.from.Chain())
		if err != nil {
			return err
		}
		defer closeProvider()

		quote, err := withSpinner(cmd, "Fetching quote...", func() (*solver.QuoteResponse, error) {
			return a.Service.GetQuote(ctx, route.quoteRequest())
		})
		if err != nil {
			return describeError(err)
		}
		if quote.Output.ExpectedOutput == nil {
			return describeError(types.NewError(types.ErrSolverRejected, "quote %s has no expected output", quote.Output.UUID))
		}

		payload := &intent.IntentPayload{
			QuoteUUID:   quote.Output.UUID,
			FromChain:   route.from.Chain(),
			ToChain:     route.to.Chain(),
			FromAddress: accountAddress(provider),
			ToAddress:   swapToAddress,
			Token:       route.token.Address,
			Amount:      route.amount,
			ToToken:     route.toToken.Address,
			ToAmount:    quote.Output.ExpectedOutput.Int,
		}

		valid, err := a.Service.IsAllowanceValid(ctx, payload, provider)
		if err != nil {
			return describeError(err)
		}
		if !valid {
			cfg, _ := chain.EvmConfig(route.from)
			return describeError(types.NewError(
				types.ErrInsufficientAllowance,
				"approve %s %s to %s before swapping", route.humanSize, route.token.Symbol, cfg.IntentContract.Hex()))
		}

		res, err := withSpinner(cmd, "Submitting order...", func() (*solver.ExecuteResponse, error) {
			return a.Service.ExecuteIntentOrder(ctx, payload, provider)
		})
		if err != nil {
			return describeError(err)
		}

		if !jsonOutput(cmd) {
			route.print(cmd, quote)
			printField(cmd, "Task", color.CyanString(res.Output.TaskID))
			printField(cmd, "Answer", res.Output.Answer)
		}
		if !swapWatch {
			if jsonOutput(cmd) {
				return printJSON(cmd, res)
			}
			return nil
		}

		status, err := withSpinner(cmd, "Waiting for solver...", func() (*solver.StatusResponse, error) {
			return a.Service.WaitForStatus(ctx, res.Output.TaskID, 0)
		})
		if err != nil {
			return describeError(err)
		}
		if jsonOutput(cmd) {
			return printJSON(cmd, map[string]interface{}{
				"execution": res.Output,
				"status":    status.Output,
			})
		}
		printField(cmd, "Status", coloredStatus(status.Output.Status))
		printField(cmd, "Fill", status.Output.TxHash)
		return nil
	},
}

func accountAddress(provider *chains.Provider) string {
	if p, err := provider.Evm(); err == nil {
		return p.Address.Hex()
	}
	if p, err := provider.Sui(); err == nil {
		return p.Account.Address
	}
	return ""
}

func init() {
	swapFlags.bind(swapCMD)
	swapCMD.Flags().StringVar(&swapToAddress, "to-address", "", "Recipient on the destination chain")
	swapCMD.Flags().BoolVarP(&swapWatch, "watch", "w", false, "Wait until the solver fills or fails the order")
	_ = swapCMD.MarkFlagRequired("to-address")
}
