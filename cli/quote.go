package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-intents/app"
	"github.com/sprintertech/sprinter-intents/config"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/protocol/solver"
)

// swapRoute is a token pair between two chains resolved from command arguments.
type swapRoute struct {
	from      chain.ChainConfig
	to        chain.ChainConfig
	token     chain.Token
	toToken   chain.Token
	amount    *big.Int
	humanSize string
}

type routeFlags struct {
	fromChain string
	toChain   string
	toToken   string
}

func (f *routeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.fromChain, "from-chain", "", "Source chain")
	cmd.Flags().StringVar(&f.toChain, "to-chain", "", "Destination chain")
	cmd.Flags().StringVar(&f.toToken, "to-token", "", "Destination token symbol or address")
	_ = cmd.MarkFlagRequired("from-chain")
	_ = cmd.MarkFlagRequired("to-chain")
	_ = cmd.MarkFlagRequired("to-token")
}

// resolve builds the route of "<amount> <token>" with the chains and token given by flags.
func (f *routeFlags) resolve(a *app.App, amount string, token string) (*swapRoute, error) {
	from, err := a.Service.GetChainConfig(chain.Chain(f.fromChain))
	if err != nil {
		return nil, describeError(err)
	}
	to, err := a.Service.GetChainConfig(chain.Chain(f.toChain))
	if err != nil {
		return nil, describeError(err)
	}

	srcToken, err := resolveToken(a.Tokens, from, token)
	if err != nil {
		return nil, err
	}
	dstToken, err := resolveToken(a.Tokens, to, f.toToken)
	if err != nil {
		return nil, err
	}
	v, err := parseAmount(amount, srcToken)
	if err != nil {
		return nil, describeError(err)
	}

	return &swapRoute{
		from:      from,
		to:        to,
		token:     srcToken,
		toToken:   dstToken,
		amount:    v,
		humanSize: amount,
	}, nil
}

func (r *swapRoute) quoteRequest() *solver.QuoteRequest {
	return &solver.QuoteRequest{
		TokenSrc:             r.token.Address,
		TokenSrcBlockchainID: r.from.NID(),
		TokenDst:             r.toToken.Address,
		TokenDstBlockchainID: r.to.NID(),
		SrcAmount:            r.amount.String(),
	}
}

func (r *swapRoute) print(cmd *cobra.Command, quote *solver.QuoteResponse) {
	printField(cmd, "From", fmt.Sprintf("%s %s on %s", r.humanSize, r.token.Symbol, r.from.Chain()))
	if quote.Output.ExpectedOutput != nil {
		out := config.FromBaseUnits(quote.Output.ExpectedOutput.Int, r.toToken.Decimals)
		printField(cmd, "To", fmt.Sprintf("%s %s on %s", color.GreenString(out), r.toToken.Symbol, r.to.Chain()))
	}
	printField(cmd, "Quote", quote.Output.UUID)
}

var quoteFlags routeFlags

var quoteCMD = &cobra.Command{
	Use:   "quote <amount> <token>",
	Short: "Request a solver quote for a swap",
	Example: `  intents quote 1.5 SUI --from-chain sui --to-chain arb --to-token USDC
  intents quote 100 USDC --from-chain arb --to-chain sui --to-token SUI --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := setup(ctx)
		if err != nil {
			return err
		}

		route, err := quoteFlags.resolve(a, args[0], args[1])
		if err != nil {
			return err
		}

		quote, err := withSpinner(cmd, "Fetching quote...", func() (*solver.QuoteResponse, error) {
			return a.Service.GetQuote(ctx, route.quoteRequest())
		})
		if err != nil {
			return describeError(err)
		}

		if jsonOutput(cmd) {
			return printJSON(cmd, quote)
		}
		route.print(cmd, quote)
		return nil
	},
}

func init() {
	quoteFlags.bind(quoteCMD)
}
