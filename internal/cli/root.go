// Package cli provides the command-line interface for the timer.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pomodoro/internal/config"
	"pomodoro/internal/logging"
	"pomodoro/internal/session"
	"pomodoro/internal/storage"
)

const (
	appName = "Pomodoro"
	appID   = "com.pomodoro.app"
)

// App holds state shared by every command.
type App struct {
	Version string

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// Stderr receives console logs.
	Stderr io.Writer

	// RunGUI starts the fyne application. Tests replace it.
	RunGUI func(app *App, variantName string) error
	// RunTUI starts the terminal application. Tests replace it.
	RunTUI func(controller *session.Controller) error

	Config config.Config
	Logger *slog.Logger

	configPath string
	logLevel   string
	variant    string
	closeLog   func() error
}

// NewRootCmd creates the root command. Without a subcommand it opens the
// graphical timer.
func NewRootCmd(app *App) *cobra.Command {
	if app.RunGUI == nil {
		app.RunGUI = runGUI
	}
	if app.RunTUI == nil {
		app.RunTUI = runTUI
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.IsInteractive == nil {
		app.IsInteractive = func() bool { return false }
	}

	root := &cobra.Command{
		Use:           "pomodoro",
		Short:         "Work/break Pomodoro timer",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return app.Close()
		},
		RunE: func(*cobra.Command, []string) error {
			return app.RunGUI(app, app.Config.Variant)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "config file (default <config dir>/pomodoro/config.yaml or config.toml)")
	flags.StringVar(&app.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&app.variant, "variant", "", "variant: auto, desktop, mobile")

	root.AddCommand(
		newDesktopCmd(app),
		newMobileCmd(app),
		newTUICmd(app),
		newStatusCmd(app),
		newSettingsCmd(app),
		newAutostartCmd(app),
	)
	return root
}

func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return err
	}
	if app.logLevel != "" {
		cfg.LogLevel = app.logLevel
	}
	if app.variant != "" {
		cfg.Variant = app.variant
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.Config = cfg

	logFile, err := cfg.LogPath()
	if err != nil {
		return err
	}
	console := app.Stderr
	// The terminal UI owns the screen.
	if cmd.Name() == "tui" {
		console = nil
	}
	logger, closeLog, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    logFile,
		Console: console,
	})
	if err != nil {
		return err
	}
	app.Logger = logger
	app.closeLog = closeLog
	slog.SetDefault(logger)

	logger.Debug("config loaded", "path", cfg.Path, "variant", cfg.Variant, "command", cmd.Name())
	return nil
}

// Close releases the log file. Cobra skips post-run hooks when a command
// fails, so callers defer it as well; repeated calls are no-ops.
func (app *App) Close() error {
	if app.closeLog == nil {
		return nil
	}
	err := app.closeLog()
	app.closeLog = nil
	return err
}

// variantFor resolves auto against the device kind.
func variantFor(name string, mobileDevice bool) (session.Variant, error) {
	if name == "" || name == config.VariantAuto {
		if mobileDevice {
			return session.Mobile, nil
		}
		return session.Desktop, nil
	}
	return session.VariantByName(name)
}

// openStateStore opens the key-value file used outside the fyne app.
func (app *App) openStateStore() (*storage.FileStore, error) {
	path, err := app.Config.StatePath()
	if err != nil {
		return nil, fmt.Errorf("resolve state file: %w", err)
	}
	return storage.OpenFileStore(path, app.Logger), nil
}
