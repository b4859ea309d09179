// Package desktop is the desktop window of the timer.
package desktop

import (
	"fyne.io/fyne/v2"

	"pomodoro/internal/session"
	"pomodoro/internal/ui/overlay"
	"pomodoro/internal/ui/panel"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/view"
)

// Window is the main desktop window.
type Window struct {
	window     fyne.Window
	panel      *panel.Panel
	controller *session.Controller
	tray       *tray.Manager
	reminder   *overlay.Window
}

// New builds the window. openSettings is called from the settings button.
func New(app fyne.App, controller *session.Controller, openSettings func()) *Window {
	window := app.NewWindow("Pomodoro Timer")
	desktopWindow := &Window{
		window:     window,
		controller: controller,
	}
	desktopWindow.panel = panel.New(panel.Actions{
		Start:    controller.Start,
		Pause:    controller.Pause,
		Reset:    controller.Reset,
		Settings: openSettings,
		QuickTime: func(minutes int) {
			_ = controller.SetQuickTime(minutes)
		},
	})

	window.SetContent(desktopWindow.panel.Content())
	window.Resize(fyne.NewSize(360, 420))
	window.Canvas().SetOnTypedKey(desktopWindow.handleKey)
	desktopWindow.Render(view.FromState(controller.State()))
	return desktopWindow
}

// AttachTray mirrors state into the tray and hides the window on close
// instead of quitting.
func (desktopWindow *Window) AttachTray(manager *tray.Manager) {
	desktopWindow.tray = manager
	desktopWindow.window.SetCloseIntercept(func() {
		desktopWindow.window.Hide()
	})
	manager.Update(view.FromState(desktopWindow.controller.State()))
}

// AttachReminder opens reminder whenever a break begins.
func (desktopWindow *Window) AttachReminder(reminder *overlay.Window) {
	desktopWindow.reminder = reminder
	reminder.Render(view.FromState(desktopWindow.controller.State()))
}

// Follow keeps the window in sync with the timer.
func (desktopWindow *Window) Follow() {
	timer := desktopWindow.controller.Timer()
	panel.Follow(timer.Subscribe(16), timer.State, desktopWindow.Render)
}

// Render must be called on the UI goroutine.
func (desktopWindow *Window) Render(model view.Model) {
	desktopWindow.panel.Render(model)
	if desktopWindow.tray != nil {
		desktopWindow.tray.Update(model)
	}
	if desktopWindow.reminder != nil {
		desktopWindow.reminder.Render(model)
	}
}

// Show displays and focuses the window.
func (desktopWindow *Window) Show() {
	desktopWindow.window.Show()
	desktopWindow.window.RequestFocus()
}

// Window returns the underlying fyne window.
func (desktopWindow *Window) Window() fyne.Window {
	return desktopWindow.window
}

func (desktopWindow *Window) handleKey(event *fyne.KeyEvent) {
	if event.Name == fyne.KeySpace {
		desktopWindow.controller.Toggle()
	}
}
