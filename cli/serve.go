package cli

import (
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-intents/app"
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "Run the intents HTTP gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}
