package cli

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"pomodoro/internal/config"
	"pomodoro/internal/feedback"
	"pomodoro/internal/platform"
	"pomodoro/internal/session"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/desktop"
	"pomodoro/internal/ui/mobile"
	"pomodoro/internal/ui/overlay"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

const reminderOpacity = 220

func newDesktopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "desktop",
		Short: "Open the desktop window with a tray menu",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return app.RunGUI(app, config.VariantDesktop)
		},
	}
}

func newMobileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mobile",
		Short: "Open the touch layout with background recovery",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return app.RunGUI(app, config.VariantMobile)
		},
	}
}

// dependencies builds the session collaborators shared by every variant.
func (app *App) dependencies(store storage.KeyValue, notifier feedback.Notifier) session.Dependencies {
	deps := session.Dependencies{
		Store:    store,
		Audio:    platform.NewSoundPlayer(resources.MustSound(resources.SoundComplete), app.Config.SoundFile),
		Vibrator: platform.NewVibrator(),
		WakeLock: platform.NewWakeLock(appName),
		Logger:   app.Logger,
	}
	if app.Config.Notifications {
		deps.Notifier = notifier
	}
	return deps
}

func runGUI(app *App, variantName string) error {
	fyneApp := fyneapp.NewWithID(appID)
	variant, err := variantFor(variantName, fyne.CurrentDevice().IsMobile())
	if err != nil {
		return err
	}

	var guard *platform.InstanceGuard
	if variant.Name == session.Desktop.Name {
		guard, err = platform.AcquireSingleInstance(appName)
		if errors.Is(err, platform.ErrAlreadyRunning) {
			app.Logger.Info("already running, activated existing window")
			return nil
		}
		if err != nil {
			app.Logger.Warn("single instance guard unavailable", "error", err)
		}
		defer func() {
			_ = guard.Release()
		}()
	}

	fyneApp.SetIcon(resources.MustIcon(resources.IconApp))
	controller, err := session.New(variant, app.dependencies(fyneApp.Preferences(), feedback.NewFyneNotifier(fyneApp)))
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer controller.Close()

	prefsWindow := preferences.New(fyneApp, controller.Config(), variant.Vibration || variant.WakeLock, controller.SaveSettings)
	openSettings := func() {
		prefsWindow.UpdateConfig(controller.Config())
		prefsWindow.Show()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	controller.RequestNotificationPermission(ctx)

	if variant.Name == session.Mobile.Name {
		mobileWindow := mobile.New(fyneApp, controller, openSettings)
		mobileWindow.Follow()
		mobileWindow.Window().SetMaster()
		mobileWindow.Show()
		fyneApp.Run()
		return nil
	}

	desktopWindow := desktop.New(fyneApp, controller, openSettings)
	desktopWindow.Window().SetMaster()
	if desktopApp, ok := fyneApp.(fynedesktop.App); ok {
		manager := tray.New(desktopApp, tray.Icons{
			Work:   resources.MustIcon(resources.IconApp),
			Break:  resources.MustIcon(resources.IconBreak),
			Paused: resources.MustIcon(resources.IconPaused),
		}, tray.Callbacks{
			OnShow:   desktopWindow.Show,
			OnToggle: controller.Toggle,
			OnReset:  controller.Reset,
			OnQuickTime: func(minutes int) {
				_ = controller.SetQuickTime(minutes)
			},
			OnSettings: openSettings,
			OnQuit:     fyneApp.Quit,
		})
		desktopWindow.AttachTray(manager)
	} else {
		app.Logger.Info("system tray unsupported on this platform")
	}
	if app.Config.BreakReminder {
		desktopWindow.AttachReminder(overlay.New(fyneApp, overlay.Config{
			Opacity: reminderOpacity,
			Frames: []fyne.Resource{
				resources.MustIcon(resources.IconBreak),
				resources.MustIcon(resources.IconApp),
			},
		}))
	}
	guard.OnActivate(func() {
		fyne.Do(desktopWindow.Show)
	})

	desktopWindow.Follow()
	desktopWindow.Show()
	fyneApp.Run()
	return nil
}
