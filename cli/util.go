package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-intents/app"
	"github.com/sprintertech/sprinter-intents/config"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/protocol/solver"
	"github.com/sprintertech/sprinter-intents/types"
)

func setup(ctx context.Context) (*app.App, error) {
	cfg, shared, err := app.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, shared)
}

// resolveToken finds a token of chain c by symbol or address.
func resolveToken(tokens *config.TokenStore, cfg chain.ChainConfig, token string) (chain.Token, error) {
	t, err := tokens.ConfigBySymbol(cfg.CAIP(), strings.ToUpper(token))
	if err == nil {
		return t, nil
	}

	_, t, err = tokens.ConfigByAddress(cfg.CAIP(), token)
	if err != nil {
		return chain.Token{}, fmt.Errorf("unknown token %s on %s", token, cfg.Chain())
	}
	return t, nil
}

// parseAmount converts a human readable amount of t into base units.
func parseAmount(amount string, t chain.Token) (*big.Int, error) {
	v, err := config.ToBaseUnits(amount, t.Decimals)
	if err != nil {
		return nil, err
	}
	if v.Sign() <= 0 {
		return nil, types.NewError(types.ErrInvalidAmount, "amount must be greater than zero")
	}
	return v, nil
}

func withSpinner[T any](cmd *cobra.Command, suffix string, fn func() (T, error)) (T, error) {
	if jsonOutput(cmd) {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	s.Writer = cmd.ErrOrStderr()
	s.Start()
	defer s.Stop()
	return fn()
}

func jsonOutput(cmd *cobra.Command) bool {
	j, _ := cmd.Flags().GetBool("json")
	return j
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func printField(cmd *cobra.Command, name string, value string) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %s\n", name+":", value)
}

// describeError colors err and appends the order transaction when the order reached the chain.
func describeError(err error) error {
	e := types.ToIntentError(err)
	msg := e.Error()
	if e.TxHash != "" {
		msg += fmt.Sprintf(", order transaction %s", e.TxHash)
	}
	return fmt.Errorf("%s", color.RedString(msg))
}

func coloredStatus(status solver.StatusCode) string {
	switch status {
	case solver.StatusSolved:
		return color.GreenString(status.String())
	case solver.StatusFailed, solver.StatusNotFound:
		return color.RedString(status.String())
	default:
		return color.YellowString(status.String())
	}
}
