package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/model"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
)

// errNotInteractive is returned when a form is needed but stdin is not a
// terminal.
var errNotInteractive = errors.New("settings form needs an interactive terminal; pass --work, --break or --auto-start")

type settingsFlags struct {
	work      int
	breakTime int
	autoStart bool
}

func newSettingsCmd(app *App) *cobra.Command {
	var flags settingsFlags
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Edit durations and auto-start in the state file",
		Long: `Edit durations and auto-start in the state file.

With flags the values are written directly. Without flags an interactive
form is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant, err := variantFor(app.Config.Variant, false)
			if err != nil {
				return err
			}
			store, err := app.openStateStore()
			if err != nil {
				return err
			}
			settingsStore := storage.NewSettingsStore(store, variant.Layout, app.Logger)
			current := settingsStore.Load()

			config := current.Config
			changed := cmd.Flags().Changed("work") || cmd.Flags().Changed("break") || cmd.Flags().Changed("auto-start")
			if changed {
				if cmd.Flags().Changed("work") {
					config.WorkMinutes = flags.work
				}
				if cmd.Flags().Changed("break") {
					config.BreakMinutes = flags.breakTime
				}
				if cmd.Flags().Changed("auto-start") {
					config.AutoStartNext = flags.autoStart
				}
			} else {
				if !app.IsInteractive() {
					return errNotInteractive
				}
				config, err = runSettingsForm(config, variant.Vibration || variant.WakeLock)
				if err != nil {
					return err
				}
			}

			if err := settingsStore.Save(config, current.CompletedWorkSessions); err != nil {
				return err
			}
			app.Logger.Info("settings saved", "work_minutes", config.WorkMinutes, "break_minutes", config.BreakMinutes)
			writeStatus(cmd.OutOrStdout(), variant.Name, store.Path(), model.Settings{
				Config:                config,
				CompletedWorkSessions: current.CompletedWorkSessions,
			})
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.work, "work", model.DefaultWorkMinutes, "work session length in minutes")
	cmd.Flags().IntVar(&flags.breakTime, "break", model.DefaultBreakMinutes, "break length in minutes")
	cmd.Flags().BoolVar(&flags.autoStart, "auto-start", model.DefaultAutoStart, "start the next session automatically")
	return cmd
}

func runSettingsForm(config model.Config, mobile bool) (model.Config, error) {
	fields := preferences.FieldsFromConfig(config)

	inputs := []huh.Field{
		minutesInput("Work minutes", &fields.WorkMinutes),
		minutesInput("Break minutes", &fields.BreakMinutes),
		huh.NewConfirm().Title("Auto-start next session?").Value(&fields.AutoStart),
	}
	if mobile {
		inputs = append(inputs,
			huh.NewConfirm().Title("Vibration?").Value(&fields.Vibration),
			huh.NewConfirm().Title("Keep screen on?").Value(&fields.KeepScreenOn),
		)
	}

	form := huh.NewForm(huh.NewGroup(inputs...)).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return config, fmt.Errorf("settings form: %w", err)
	}
	return fields.Config(config, mobile)
}

func minutesInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("25").
		Value(value).
		Validate(validateMinutes)
}

func validateMinutes(value string) error {
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 {
		return fmt.Errorf("enter a whole number of minutes above zero")
	}
	return nil
}
