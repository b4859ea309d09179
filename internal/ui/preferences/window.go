package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window handles the settings UI.
type Window struct {
	window       fyne.Window
	config       model.Config
	mobile       bool
	onSave       func(model.Config) error
	workMinutes  *widget.Entry
	breakMinutes *widget.Entry
	autoStart    *widget.Check
	vibration    *widget.Check
	keepScreenOn *widget.Check
	errorLabel   *widget.Label
}

// New creates a settings window. Vibration and keep-screen-on toggles are
// only shown when mobile is set.
func New(app fyne.App, config model.Config, mobile bool, onSave func(model.Config) error) *Window {
	window := app.NewWindow("Pomodoro Settings")

	workMinutes := widget.NewEntry()
	breakMinutes := widget.NewEntry()
	autoStart := widget.NewCheck("Auto-start next session", nil)
	vibration := widget.NewCheck("Vibration", nil)
	keepScreenOn := widget.NewCheck("Keep screen on", nil)
	errorLabel := widget.NewLabel("")
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), workMinutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break"), breakMinutes, widget.NewLabel("min")),
		autoStart,
	)
	if mobile {
		form.Add(vibration)
		form.Add(keepScreenOn)
	}
	form.Add(errorLabel)

	saveButton := widget.NewButton("Save", nil)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 280))

	prefs := &Window{
		window:       window,
		mobile:       mobile,
		onSave:       onSave,
		workMinutes:  workMinutes,
		breakMinutes: breakMinutes,
		autoStart:    autoStart,
		vibration:    vibration,
		keepScreenOn: keepScreenOn,
		errorLabel:   errorLabel,
	}
	prefs.UpdateConfig(config)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateConfig(prefs.config)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateConfig replaces the form values.
func (prefs *Window) UpdateConfig(config model.Config) {
	prefs.config = config
	fields := FieldsFromConfig(config)
	prefs.workMinutes.SetText(fields.WorkMinutes)
	prefs.breakMinutes.SetText(fields.BreakMinutes)
	prefs.autoStart.SetChecked(fields.AutoStart)
	prefs.vibration.SetChecked(fields.Vibration)
	prefs.keepScreenOn.SetChecked(fields.KeepScreenOn)
	prefs.errorLabel.Hide()
}

func (prefs *Window) handleSave() {
	fields := Fields{
		WorkMinutes:  prefs.workMinutes.Text,
		BreakMinutes: prefs.breakMinutes.Text,
		AutoStart:    prefs.autoStart.Checked,
		Vibration:    prefs.vibration.Checked,
		KeepScreenOn: prefs.keepScreenOn.Checked,
	}
	config, err := fields.Config(prefs.config, prefs.mobile)
	if err == nil && prefs.onSave != nil {
		err = prefs.onSave(config)
	}
	if err != nil {
		prefs.errorLabel.SetText(err.Error())
		prefs.errorLabel.Show()
		return
	}

	prefs.config = config
	prefs.errorLabel.Hide()
	prefs.window.Hide()
}
