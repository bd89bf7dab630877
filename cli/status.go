package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-intents/intent"
	"github.com/sprintertech/sprinter-intents/protocol/solver"
)

var (
	watchStatus   bool
	watchInterval time.Duration
)

var statusCMD = &cobra.Command{
	Use:   "status <task-id>...",
	Short: "Check the solver status of registered orders",
	Example: `  intents status 7c0d6f2e-...
  intents status 7c0d6f2e-... 91aa03b4-...
  intents status 7c0d6f2e-... --watch --interval 10s`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		a, err := setup(ctx)
		if err != nil {
			return err
		}

		if watchStatus {
			if len(args) != 1 {
				return fmt.Errorf("watch mode takes a single task id")
			}
			res, err := withSpinner(cmd, fmt.Sprintf("Waiting for task %s...", args[0]), func() (*solver.StatusResponse, error) {
				return a.Service.WaitForStatus(ctx, args[0], watchInterval)
			})
			if err != nil {
				return describeError(err)
			}
			return printStatuses(cmd, map[string]*solver.StatusResponse{args[0]: res}, args)
		}

		statuses, err := withSpinner(cmd, "Checking status...", func() (map[string]*solver.StatusResponse, error) {
			return a.Service.GetStatuses(ctx, args)
		})
		if err != nil {
			return describeError(err)
		}
		return printStatuses(cmd, statuses, args)
	},
}

func printStatuses(cmd *cobra.Command, statuses map[string]*solver.StatusResponse, taskIDs []string) error {
	if jsonOutput(cmd) {
		return printJSON(cmd, statuses)
	}

	for _, id := range taskIDs {
		res, ok := statuses[id]
		if !ok {
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.CyanString(id))
		printField(cmd, "Status", coloredStatus(res.Output.Status))
		if res.Output.TxHash != "" {
			printField(cmd, "Fill", color.HiBlackString(res.Output.TxHash))
		}
	}
	return nil
}

func init() {
	statusCMD.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Wait until the task is solved or failed")
	statusCMD.Flags().DurationVar(&watchInterval, "interval", intent.STATUS_POLL_INTERVAL, "Polling interval when watching")
}
