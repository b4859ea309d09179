// Package mobile is the touch-first layout with background recovery.
package mobile

import (
	"fyne.io/fyne/v2"

	"pomodoro/internal/session"
	"pomodoro/internal/ui/panel"
	"pomodoro/internal/ui/view"
)

// Window is the mobile timer screen.
type Window struct {
	window     fyne.Window
	panel      *panel.Panel
	controller *session.Controller
}

// New builds the screen and hooks app lifecycle events to suspend and
// recover the running session.
func New(app fyne.App, controller *session.Controller, openSettings func()) *Window {
	window := app.NewWindow(view.Title(controller.State()))
	mobileWindow := &Window{
		window:     window,
		controller: controller,
	}

	touched := func(action func()) func() {
		return func() {
			controller.Touch()
			if action != nil {
				action()
			}
		}
	}
	mobileWindow.panel = panel.New(panel.Actions{
		Start:    touched(controller.Start),
		Pause:    touched(controller.Pause),
		Reset:    touched(controller.Reset),
		Settings: touched(openSettings),
		QuickTime: func(minutes int) {
			controller.Touch()
			_ = controller.SetQuickTime(minutes)
		},
	})
	mobileWindow.panel.TimeDisplay().SetOnDoubleTap(controller.Toggle)

	lifecycle := app.Lifecycle()
	lifecycle.SetOnExitedForeground(controller.Suspend)
	lifecycle.SetOnEnteredForeground(controller.Foreground)
	lifecycle.SetOnStopped(controller.Suspend)

	window.SetContent(mobileWindow.panel.Content())
	window.Resize(fyne.NewSize(360, 640))
	mobileWindow.Render(view.FromState(controller.State()))
	return mobileWindow
}

// Follow keeps the screen in sync with the timer.
func (mobileWindow *Window) Follow() {
	timer := mobileWindow.controller.Timer()
	panel.Follow(timer.Subscribe(16), timer.State, mobileWindow.Render)
}

// Render must be called on the UI goroutine.
func (mobileWindow *Window) Render(model view.Model) {
	mobileWindow.panel.Render(model)
	mobileWindow.window.SetTitle(model.Title)
}

// Show displays the screen.
func (mobileWindow *Window) Show() {
	mobileWindow.window.Show()
}

// Window returns the underlying fyne window.
func (mobileWindow *Window) Window() fyne.Window {
	return mobileWindow.window
}
