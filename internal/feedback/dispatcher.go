// Package feedback turns finished sessions into sound, notifications and
// vibration. Every collaborator is optional; missing capabilities are skipped
// and failures are logged without affecting the timer.
package feedback

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
)

// Titles used for completion notifications.
const (
	DesktopTitle = "Pomodoro Timer"
	MobileTitle  = "🍅 Pomodoro Timer"
)

var (
	completionPattern = []time.Duration{
		500 * time.Millisecond, 100 * time.Millisecond,
		500 * time.Millisecond, 100 * time.Millisecond,
		500 * time.Millisecond,
	}
	touchPattern = []time.Duration{10 * time.Millisecond}
)

// AudioPlayer plays the completion cue.
type AudioPlayer interface {
	Play(ctx context.Context) error
}

// Vibrator drives haptic feedback.
type Vibrator interface {
	Vibrate(pattern []time.Duration) error
}

// Options configures a Dispatcher.
type Options struct {
	Title        string
	Audio        AudioPlayer
	Notifier     Notifier
	Vibrator     Vibrator
	Logger       *slog.Logger
	SoundTimeout time.Duration
}

// Dispatcher implements timer.Feedback.
type Dispatcher struct {
	options Options
	logger  *slog.Logger
	sounds  sync.WaitGroup
}

// New creates a Dispatcher.
func New(options Options) *Dispatcher {
	if options.Title == "" {
		options.Title = DesktopTitle
	}
	if options.SoundTimeout <= 0 {
		options.SoundTimeout = 10 * time.Second
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{options: options, logger: logger.With("component", "feedback")}
}

// Message returns the notification body shown when a session of kind ends.
func Message(ended model.SessionKind) string {
	if ended == model.KindWork {
		return "Break time! Take a rest."
	}
	return "Work time! Stay focused."
}

// SessionCompleted dispatches all completion feedback.
func (dispatcher *Dispatcher) SessionCompleted(completion model.Completion) {
	dispatcher.logger.Info("session completed",
		"session_id", completion.SessionID,
		"ended", completion.Ended,
		"next", completion.Next,
		"completed_work_sessions", completion.CompletedWorkSessions,
	)

	dispatcher.playSound()
	dispatcher.notify(completion)
	if completion.Config.VibrationEnabled {
		dispatcher.vibrate(completionPattern)
	}
}

// Touch gives the short haptic tick used for button presses.
func (dispatcher *Dispatcher) Touch(vibrationEnabled bool) {
	if vibrationEnabled {
		dispatcher.vibrate(touchPattern)
	}
}

// RequestPermission asks for notification permission if it is undecided.
func (dispatcher *Dispatcher) RequestPermission(ctx context.Context) {
	notifier := dispatcher.options.Notifier
	if notifier == nil || notifier.Permission() != PermissionDefault {
		return
	}
	go func() {
		state, err := notifier.RequestPermission(ctx)
		if err != nil {
			dispatcher.logFailure("notification permission", err)
			return
		}
		dispatcher.logger.Debug("notification permission", "state", state)
	}()
}

// Wait blocks until in-flight sounds finish.
func (dispatcher *Dispatcher) Wait() {
	dispatcher.sounds.Wait()
}

func (dispatcher *Dispatcher) playSound() {
	audio := dispatcher.options.Audio
	if audio == nil {
		return
	}
	dispatcher.sounds.Add(1)
	go func() {
		defer dispatcher.sounds.Done()
		ctx, cancel := context.WithTimeout(context.Background(), dispatcher.options.SoundTimeout)
		defer cancel()
		if err := audio.Play(ctx); err != nil {
			dispatcher.logFailure("play sound", err)
		}
	}()
}

func (dispatcher *Dispatcher) notify(completion model.Completion) {
	notifier := dispatcher.options.Notifier
	if notifier == nil || notifier.Permission() != PermissionGranted {
		return
	}
	err := notifier.Show(Notification{
		Title: dispatcher.options.Title,
		Body:  Message(completion.Ended),
	})
	if err != nil {
		dispatcher.logFailure("show notification", err)
	}
}

func (dispatcher *Dispatcher) vibrate(pattern []time.Duration) {
	vibrator := dispatcher.options.Vibrator
	if vibrator == nil {
		return
	}
	if err := vibrator.Vibrate(pattern); err != nil {
		dispatcher.logFailure("vibrate", err)
	}
}

func (dispatcher *Dispatcher) logFailure(action string, err error) {
	if errors.Is(err, platform.ErrUnsupported) {
		dispatcher.logger.Debug(action+" skipped", "reason", err)
		return
	}
	dispatcher.logger.Warn(action+" failed", "error", err)
}
