package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/recovery"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/view"
)

var (
	statusTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(view.Hex(view.WorkColor)))
	statusKeyStyle   = lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color("#636E72"))
	statusValueStyle = lipgloss.NewStyle().Bold(true)
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show persisted settings and the completed session count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant, err := variantFor(app.Config.Variant, false)
			if err != nil {
				return err
			}
			store, err := app.openStateStore()
			if err != nil {
				return err
			}

			settings := storage.NewSettingsStore(store, variant.Layout, app.Logger).Load()
			writeStatus(cmd.OutOrStdout(), variant.Name, store.Path(), settings)

			if variant.BackgroundRecovery {
				snapshots := storage.NewSnapshotStore(store)
				if snapshot, ok := snapshots.Load(); ok && snapshot.WasRunning {
					remaining := recovery.Remaining(snapshot, time.Now())
					writeRow(cmd.OutOrStdout(), "Suspended session", fmt.Sprintf("%s left", view.FormatTime(remaining)))
				}
			}
			return nil
		},
	}
}

func writeStatus(out io.Writer, variant, path string, settings model.Settings) {
	config := settings.Config
	_, _ = fmt.Fprintln(out, statusTitleStyle.Render("🍅 Pomodoro"))
	writeRow(out, "Variant", variant)
	writeRow(out, "State file", path)
	writeRow(out, "Work", fmt.Sprintf("%d min", config.WorkMinutes))
	writeRow(out, "Break", fmt.Sprintf("%d min", config.BreakMinutes))
	writeRow(out, "Auto-start", onOff(config.AutoStartNext))
	if variant == "mobile" {
		writeRow(out, "Vibration", onOff(config.VibrationEnabled))
		writeRow(out, "Keep screen on", onOff(config.KeepScreenOnEnabled))
	}
	writeRow(out, "Completed sessions", fmt.Sprintf("%d", settings.CompletedWorkSessions))
}

func writeRow(out io.Writer, key, value string) {
	_, _ = fmt.Fprintln(out, statusKeyStyle.Render(key)+statusValueStyle.Render(value))
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}
