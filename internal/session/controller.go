// Package session wires the timer, settings, recovery and feedback together
// for one variant.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/recovery"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/feedback"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

// Dependencies are the collaborators a Controller needs. Only Store is
// required.
type Dependencies struct {
	Store        storage.KeyValue
	Audio        feedback.AudioPlayer
	Notifier     feedback.Notifier
	Vibrator     feedback.Vibrator
	WakeLock     platform.WakeLock
	Logger       *slog.Logger
	Now          func() time.Time
	TickInterval time.Duration
}

// Controller is the single entry point presentations talk to.
type Controller struct {
	variant   Variant
	settings  *storage.SettingsStore
	snapshots *storage.SnapshotStore
	feedback  *feedback.Dispatcher
	keepAwake *feedback.KeepAwake
	timer     *timer.Timer
	logger    *slog.Logger
	now       func() time.Time
	hidden    atomic.Bool
}

// New loads persisted settings and builds a paused timer. Variants with
// background recovery consume any stored snapshot immediately.
func New(variant Variant, deps Dependencies) (*Controller, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("create controller: missing key-value store")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("variant", variant.Name)
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	vibrator := deps.Vibrator
	if !variant.Vibration {
		vibrator = nil
	}
	dispatcher := feedback.New(feedback.Options{
		Title:    variant.NotificationTitle,
		Audio:    deps.Audio,
		Notifier: deps.Notifier,
		Vibrator: vibrator,
		Logger:   logger,
	})

	settingsStore := storage.NewSettingsStore(deps.Store, variant.Layout, logger)
	settings := settingsStore.Load()

	controller := &Controller{
		variant:  variant,
		settings: settingsStore,
		feedback: dispatcher,
		logger:   logger,
		now:      now,
	}
	if variant.BackgroundRecovery {
		controller.snapshots = storage.NewSnapshotStore(deps.Store)
	}
	if variant.WakeLock {
		controller.keepAwake = feedback.NewKeepAwake(deps.WakeLock, logger)
	}

	controller.timer = timer.New(settings.Config, settings.CompletedWorkSessions, timer.Options{
		TickInterval:   deps.TickInterval,
		AutoStartDelay: variant.AutoStartDelay,
		Feedback:       dispatcher,
		Now:            now,
	})
	controller.timer.OnEvent(controller.syncWakeLock)
	controller.timer.OnEvent(controller.syncSnapshot)

	logger.Info("session ready",
		"work_minutes", settings.Config.WorkMinutes,
		"break_minutes", settings.Config.BreakMinutes,
		"auto_start", settings.Config.AutoStartNext,
		"completed_work_sessions", settings.CompletedWorkSessions,
	)

	controller.recover()
	return controller, nil
}

// Variant returns the capabilities in effect.
func (controller *Controller) Variant() Variant {
	return controller.variant
}

// Timer exposes the state machine for subscriptions.
func (controller *Controller) Timer() *timer.Timer {
	return controller.timer
}

// State returns the current timer state.
func (controller *Controller) State() model.State {
	return controller.timer.State()
}

// Config returns the configuration in effect.
func (controller *Controller) Config() model.Config {
	return controller.timer.Config()
}

func (controller *Controller) Start() {
	controller.timer.Start()
}

func (controller *Controller) Pause() {
	controller.timer.Pause()
}

func (controller *Controller) Reset() {
	controller.timer.Reset()
}

// Toggle starts a paused timer or pauses a running one.
func (controller *Controller) Toggle() {
	if controller.timer.State().IsRunning {
		controller.timer.Pause()
		return
	}
	controller.timer.Start()
}

// SaveSettings applies config to the timer and persists it together with
// the completed count.
func (controller *Controller) SaveSettings(config model.Config) error {
	if err := controller.timer.ApplyConfig(config); err != nil {
		return fmt.Errorf("apply settings: %w", err)
	}
	state := controller.timer.State()
	if err := controller.settings.Save(controller.timer.Config(), state.CompletedWorkSessions); err != nil {
		return err
	}
	controller.logger.Info("settings saved",
		"work_minutes", config.WorkMinutes,
		"break_minutes", config.BreakMinutes,
		"auto_start", config.AutoStartNext,
	)
	return nil
}

// SetQuickTime switches the work duration while paused. It is ignored while
// running.
func (controller *Controller) SetQuickTime(minutes int) error {
	err := controller.timer.SetQuickDuration(minutes)
	if err != nil {
		controller.logger.Debug("quick duration rejected", "minutes", minutes, "error", err)
		return err
	}
	controller.logger.Debug("quick duration set", "minutes", minutes)
	return nil
}

// Suspend is called when the interface is hidden. The timer keeps running;
// the snapshot only matters if the process does not survive until the next
// Foreground.
func (controller *Controller) Suspend() {
	if controller.snapshots == nil {
		return
	}
	controller.hidden.Store(true)
	if recovery.Suspend(controller.timer, controller.snapshots, controller.now()) {
		controller.logger.Debug("session suspended", "remaining", controller.timer.State().RemainingSeconds)
	}
}

// Foreground is called when the interface becomes visible again. The timer
// in this process is authoritative, so the snapshot is dropped.
func (controller *Controller) Foreground() {
	if controller.snapshots == nil {
		return
	}
	controller.hidden.Store(false)
	if recovery.Discard(controller.snapshots) {
		controller.logger.Debug("session foregrounded", "remaining", controller.timer.State().RemainingSeconds)
	}
}

// Touch gives haptic feedback for a button press.
func (controller *Controller) Touch() {
	if !controller.variant.Vibration {
		return
	}
	controller.feedback.Touch(controller.timer.Config().VibrationEnabled)
}

// RequestNotificationPermission asks once if permission is undecided.
func (controller *Controller) RequestNotificationPermission(ctx context.Context) {
	controller.feedback.RequestPermission(ctx)
}

// Close stops the timer and releases held resources.
func (controller *Controller) Close() {
	controller.timer.Stop()
	if controller.keepAwake != nil {
		controller.keepAwake.Release()
	}
	controller.feedback.Wait()
}

func (controller *Controller) recover() {
	if controller.snapshots == nil {
		return
	}
	outcome := recovery.Recover(controller.timer, controller.snapshots, controller.now())
	if outcome != recovery.OutcomeNone {
		controller.logger.Info("background recovery", "outcome", outcome,
			"remaining", controller.timer.State().RemainingSeconds)
	}
}

// syncSnapshot keeps the snapshot truthful while hidden. Without it a
// session that completed in the background would complete again when the
// next process recovers the stale snapshot.
func (controller *Controller) syncSnapshot(event timer.Event) {
	if controller.snapshots == nil || !controller.hidden.Load() || event.Type == timer.EventTick {
		return
	}
	recovery.Suspend(controller.timer, controller.snapshots, controller.now())
}

func (controller *Controller) syncWakeLock(timer.Event) {
	if controller.keepAwake == nil {
		return
	}
	// Listeners can observe events out of order; the current state decides.
	if controller.timer.State().IsRunning && controller.timer.Config().KeepScreenOnEnabled {
		controller.keepAwake.Acquire(context.Background())
		return
	}
	controller.keepAwake.Release()
}
