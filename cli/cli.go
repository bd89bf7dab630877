// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-intents/config"
)

var (
	rootCMD = &cobra.Command{
		Use:   "intents",
		Short: "Cross chain intent swaps between EVM and Sui",
	}
)

func init() {
	config.BindFlags(rootCMD)
	rootCMD.PersistentFlags().Bool("json", false, "Print results as JSON")
}

func Execute() {
	rootCMD.AddCommand(serveCMD, chainsCMD, quoteCMD, swapCMD, orderCMD, cancelCMD, statusCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
