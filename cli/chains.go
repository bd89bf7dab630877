package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-intents/api/handlers"
)

var chainsCMD = &cobra.Command{
	Use:   "chains",
	Short: "List supported chains and their tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(context.Background())
		if err != nil {
			return err
		}

		responses := make([]handlers.ChainResponse, 0)
		for _, c := range a.Service.GetSupportedChains() {
			cfg, err := a.Service.GetChainConfig(c)
			if err != nil {
				return describeError(err)
			}
			responses = append(responses, handlers.NewChainResponse(cfg))
		}
		if jsonOutput(cmd) {
			return printJSON(cmd, responses)
		}

		for _, r := range responses {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", color.CyanString(string(r.Chain)), r.Type)
			printField(cmd, "NID", r.NID)
			printField(cmd, "CAIP", r.CAIP)
			symbols := make([]string, 0, len(r.Tokens))
			for _, t := range r.Tokens {
				symbols = append(symbols, t.Symbol)
			}
			printField(cmd, "Tokens", strings.Join(symbols, ", "))
		}
		return nil
	},
}
