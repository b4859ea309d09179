package overlay

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/view"
)

func workModel(remaining int) view.Model {
	return view.FromState(model.State{RemainingSeconds: remaining, TotalSeconds: 1500, Kind: model.KindWork, IsRunning: true})
}

func breakModel(remaining int) view.Model {
	return view.FromState(model.State{RemainingSeconds: remaining, TotalSeconds: 300, Kind: model.KindBreak, IsRunning: true})
}

func newReminder(t *testing.T) *Window {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	reminder := New(app, Config{
		Opacity: 200,
		Frames: []fyne.Resource{
			fyne.NewStaticResource("first", nil),
			fyne.NewStaticResource("second", nil),
		},
	})
	t.Cleanup(reminder.Hide)
	return reminder
}

func TestReminder_OpensWhenBreakBegins(t *testing.T) {
	reminder := newReminder(t)

	reminder.Render(workModel(1))
	assert.False(t, reminder.Visible())

	reminder.Render(breakModel(300))
	assert.True(t, reminder.Visible())
	assert.Equal(t, "05:00", reminder.timerLabel.Text)
	assert.True(t, reminder.engine.Running())

	reminder.Render(breakModel(299))
	assert.Equal(t, "04:59", reminder.timerLabel.Text)
}

func TestReminder_ClosesWhenWorkResumes(t *testing.T) {
	reminder := newReminder(t)
	reminder.Render(workModel(1))
	reminder.Render(breakModel(300))

	reminder.Render(workModel(1500))

	assert.False(t, reminder.Visible())
	assert.False(t, reminder.engine.Running())
}

func TestReminder_DismissStaysClosedForTheBreak(t *testing.T) {
	reminder := newReminder(t)
	reminder.Render(workModel(1))
	reminder.Render(breakModel(300))

	test.Tap(reminder.dismissButton)
	assert.False(t, reminder.Visible())

	reminder.Render(breakModel(250))
	assert.False(t, reminder.Visible())

	reminder.Render(workModel(1500))
	reminder.Render(breakModel(300))
	assert.True(t, reminder.Visible())
}

func TestReminder_StartingInBreakDoesNotOpen(t *testing.T) {
	reminder := newReminder(t)

	reminder.Render(breakModel(120))

	assert.False(t, reminder.Visible())
}

func TestReminder_SingleFrameDoesNotAnimate(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	reminder := New(app, Config{Frames: []fyne.Resource{fyne.NewStaticResource("only", nil)}})

	reminder.Render(workModel(1))
	reminder.Render(breakModel(300))

	assert.True(t, reminder.Visible())
	assert.False(t, reminder.engine.Running())
	assert.Equal(t, "only", reminder.image.Resource.Name())
}
