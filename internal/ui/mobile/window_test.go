package mobile

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/session"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/view"
)

type lifecycleTrigger interface {
	TriggerEnteredForeground()
	TriggerExitedForeground()
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	clock.now = clock.now.Add(d)
	clock.mu.Unlock()
}

func newController(t *testing.T, clock *fakeClock) (*session.Controller, *storage.FileStore) {
	t.Helper()
	store := storage.OpenFileStore(filepath.Join(t.TempDir(), "state.json"), nil)
	controller, err := session.New(session.Mobile, session.Dependencies{
		Store:        store,
		Now:          clock.Now,
		TickInterval: time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(controller.Close)
	return controller, store
}

func TestWindow_DoubleTapToggles(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	controller, _ := newController(t, &fakeClock{now: time.Now()})
	window := New(app, controller, nil)

	test.DoubleTap(window.panel.TimeDisplay())
	assert.True(t, controller.State().IsRunning)

	test.DoubleTap(window.panel.TimeDisplay())
	assert.False(t, controller.State().IsRunning)
}

func TestWindow_TitleFollowsState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	controller, _ := newController(t, &fakeClock{now: time.Now()})
	window := New(app, controller, nil)

	assert.Equal(t, "25:00 - Work", window.Window().Title())

	controller.Timer().CompleteSession()
	window.Render(view.FromState(controller.State()))

	assert.Equal(t, "05:00 - Break", window.Window().Title())
}

func TestWindow_LifecycleKeepsSessionRunningWhileHidden(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	controller, store := newController(t, clock)
	New(app, controller, nil)

	trigger, ok := app.Lifecycle().(lifecycleTrigger)
	require.True(t, ok)

	controller.Start()
	trigger.TriggerExitedForeground()
	assert.True(t, controller.State().IsRunning)
	assert.Equal(t, "1500", store.String("pomodoroCurrentTime"))

	controller.Timer().Tick()
	clock.Advance(90 * time.Second)
	trigger.TriggerEnteredForeground()

	state := controller.State()
	assert.True(t, state.IsRunning)
	assert.Equal(t, 1499, state.RemainingSeconds)
	assert.Empty(t, store.String("pomodoroCurrentTime"))
}
