package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pomodoro/internal/feedback"
	"pomodoro/internal/session"
	"pomodoro/internal/tui"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Long: `Run the timer in the terminal.

Settings and the completed count live in the state file. With the mobile
variant a running session is suspended on exit and resumed on the next
start, counting the time spent away.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("tui needs an interactive terminal")
			}
			variant, err := variantFor(app.Config.Variant, false)
			if err != nil {
				return err
			}
			store, err := app.openStateStore()
			if err != nil {
				return err
			}

			controller, err := session.New(variant, app.dependencies(store, feedback.NewZenityNotifier()))
			if err != nil {
				return fmt.Errorf("start session: %w", err)
			}
			defer controller.Close()

			runErr := app.RunTUI(controller)
			controller.Suspend()
			return runErr
		},
	}
}

func runTUI(controller *session.Controller) error {
	return tui.Run(controller)
}
