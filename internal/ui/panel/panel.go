// Package panel is the fyne timer panel shared by the desktop and mobile
// windows.
package panel

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/view"
)

// Actions are the handlers behind the panel buttons.
type Actions struct {
	Start     func()
	Pause     func()
	Reset     func()
	Settings  func()
	QuickTime func(minutes int)
}

// Panel shows the time, session label, progress and controls.
type Panel struct {
	actions      Actions
	timeDisplay  *TimeDisplay
	sessionLabel *canvas.Text
	progress     *widget.ProgressBar
	startButton  *widget.Button
	pauseButton  *widget.Button
	resetButton  *widget.Button
	settings     *widget.Button
	quickButtons []*widget.Button
	completed    *widget.Label
	content      fyne.CanvasObject
}

// New creates a panel in the initial work state.
func New(actions Actions) *Panel {
	panel := &Panel{actions: actions}

	panel.timeDisplay = NewTimeDisplay()
	panel.sessionLabel = canvas.NewText(view.Label(model.KindWork), view.WorkColor)
	panel.sessionLabel.Alignment = fyne.TextAlignCenter
	panel.sessionLabel.TextSize = 20
	panel.sessionLabel.TextStyle = fyne.TextStyle{Bold: true}

	panel.progress = widget.NewProgressBar()
	panel.progress.TextFormatter = func() string { return "" }

	panel.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() { call(panel.actions.Start) })
	panel.startButton.Importance = widget.HighImportance
	panel.pauseButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), func() { call(panel.actions.Pause) })
	panel.pauseButton.Hide()
	panel.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() { call(panel.actions.Reset) })
	panel.settings = widget.NewButtonWithIcon("", theme.SettingsIcon(), func() { call(panel.actions.Settings) })

	quick := container.NewHBox(layout.NewSpacer())
	for _, minutes := range view.QuickMinutes {
		button := widget.NewButton(fmt.Sprintf("%d min", minutes), func() {
			if panel.actions.QuickTime != nil {
				panel.actions.QuickTime(minutes)
			}
		})
		panel.quickButtons = append(panel.quickButtons, button)
		quick.Add(button)
	}
	quick.Add(layout.NewSpacer())

	panel.completed = widget.NewLabelWithStyle(view.CompletedText(0), fyne.TextAlignCenter, fyne.TextStyle{})

	controls := container.NewHBox(
		layout.NewSpacer(),
		panel.startButton,
		panel.pauseButton,
		panel.resetButton,
		panel.settings,
		layout.NewSpacer(),
	)

	panel.content = container.NewPadded(container.NewVBox(
		panel.sessionLabel,
		panel.timeDisplay,
		panel.progress,
		controls,
		quick,
		panel.completed,
	))
	return panel
}

// Content is the root canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// TimeDisplay exposes the time widget for double-tap handling.
func (panel *Panel) TimeDisplay() *TimeDisplay {
	return panel.timeDisplay
}

// Render updates every element. It must run on the UI goroutine.
func (panel *Panel) Render(model view.Model) {
	panel.timeDisplay.Set(model.Time, model.Color)
	panel.sessionLabel.Text = model.Label
	panel.sessionLabel.Color = model.Color
	panel.sessionLabel.Refresh()
	panel.progress.SetValue(model.Progress)

	setVisible(panel.startButton, model.ShowStart)
	setVisible(panel.pauseButton, model.ShowPause)
	for _, button := range panel.quickButtons {
		if model.IsRunning {
			button.Disable()
		} else {
			button.Enable()
		}
	}
	panel.completed.SetText(model.Completed)
}

// Follow renders the latest state on the UI goroutine after every event,
// until events is closed. Events only trigger a redraw; state is read fresh
// so a dropped event cannot leave the panel stale.
func Follow(events <-chan timer.Event, state func() model.State, render func(view.Model)) {
	go func() {
		for range events {
			current := view.FromState(state())
			fyne.Do(func() {
				render(current)
			})
		}
	}()
}

// TimeDisplay is the large mm:ss readout. It reports double taps.
type TimeDisplay struct {
	widget.BaseWidget
	text        *canvas.Text
	onDoubleTap func()
}

// NewTimeDisplay creates the readout showing the default work duration.
func NewTimeDisplay() *TimeDisplay {
	display := &TimeDisplay{
		text: canvas.NewText(view.FormatTime(model.DefaultWorkMinutes*60), view.WorkColor),
	}
	display.text.Alignment = fyne.TextAlignCenter
	display.text.TextSize = 64
	display.text.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	display.ExtendBaseWidget(display)
	return display
}

// SetOnDoubleTap installs the double-tap handler.
func (display *TimeDisplay) SetOnDoubleTap(handler func()) {
	display.onDoubleTap = handler
}

// Set updates the text and colour.
func (display *TimeDisplay) Set(text string, c color.Color) {
	display.text.Text = text
	display.text.Color = c
	display.text.Refresh()
}

// Text returns the displayed time.
func (display *TimeDisplay) Text() string {
	return display.text.Text
}

func (display *TimeDisplay) DoubleTapped(*fyne.PointEvent) {
	if display.onDoubleTap != nil {
		display.onDoubleTap()
	}
}

func (display *TimeDisplay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(display.text)
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if visible {
		object.Show()
		return
	}
	object.Hide()
}

func call(action func()) {
	if action != nil {
		action()
	}
}
