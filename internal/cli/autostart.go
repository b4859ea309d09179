package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pomodoro/internal/config"
	"pomodoro/internal/platform"
)

func newAutostartCmd(app *App) *cobra.Command {
	return newAutostartCmdWithService(app, platform.NewService())
}

func newAutostartCmdWithService(app *App, service platform.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage launching the desktop timer at login",
	}

	enable := &cobra.Command{
		Use:   "enable",
		Short: "Launch the desktop timer at login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable: %w", err)
			}
			entry := platform.AutostartEntry{
				AppName:  appName,
				ExecPath: execPath,
				Args:     []string{config.VariantDesktop},
			}
			if err := service.EnableAutostart(entry); err != nil {
				return fmt.Errorf("enable autostart: %w", err)
			}
			app.Logger.Info("autostart enabled", "exec", execPath)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Autostart enabled")
			return nil
		},
	}

	disable := &cobra.Command{
		Use:   "disable",
		Short: "Stop launching at login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := service.DisableAutostart(appName); err != nil {
				return fmt.Errorf("disable autostart: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Autostart disabled")
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Report whether launch at login is enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enabled, err := service.AutostartEnabled(appName)
			if err != nil {
				return fmt.Errorf("autostart status: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Autostart: %s\n", onOff(enabled))
			return nil
		},
	}

	cmd.AddCommand(enable, disable, status)
	return cmd
}
