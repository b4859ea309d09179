// Package recovery carries a running session across the interface being
// hidden and shown again (or the process being restarted in between).
package recovery

import (
	"time"

	"pomodoro/internal/core/model"
)

// Timer is the part of the session state machine recovery drives.
type Timer interface {
	State() model.State
	Resume(remainingSeconds int)
	CompleteSession()
}

// Snapshots stores the background snapshot.
type Snapshots interface {
	Save(snapshot model.Snapshot)
	Load() (model.Snapshot, bool)
	Present() bool
	Clear()
}

// Outcome describes what Recover did.
type Outcome string

const (
	OutcomeNone      Outcome = "none"
	OutcomeDiscarded Outcome = "discarded"
	OutcomeResumed   Outcome = "resumed"
	OutcomeCompleted Outcome = "completed"
)

// Suspend records a snapshot of a running timer and leaves it running, so a
// session can still finish while hidden. A paused timer clears any earlier
// snapshot. It reports whether a snapshot was written.
func Suspend(timer Timer, snapshots Snapshots, now time.Time) bool {
	state := timer.State()
	if !state.IsRunning {
		snapshots.Clear()
		return false
	}

	snapshots.Save(model.Snapshot{
		SuspendedAt:      now,
		RemainingSeconds: state.RemainingSeconds,
		WasRunning:       true,
	})
	return true
}

// Discard drops a snapshot written by this process. The live timer kept
// counting while hidden, so replaying the snapshot would count the same
// seconds twice. It reports whether a snapshot was present.
func Discard(snapshots Snapshots) bool {
	if !snapshots.Present() {
		return false
	}
	snapshots.Clear()
	return true
}

// Recover consumes a snapshot left by a previous process. Elapsed wall-clock
// time is subtracted from the remaining seconds; a session that ran out in
// between completes.
func Recover(timer Timer, snapshots Snapshots, now time.Time) Outcome {
	if !snapshots.Present() {
		return OutcomeNone
	}
	snapshot, ok := snapshots.Load()
	snapshots.Clear()
	if !ok || !snapshot.WasRunning {
		return OutcomeDiscarded
	}

	remaining := Remaining(snapshot, now)
	if remaining > 0 {
		timer.Resume(remaining)
		return OutcomeResumed
	}
	timer.CompleteSession()
	return OutcomeCompleted
}

// Remaining computes the seconds left at now for a snapshot.
func Remaining(snapshot model.Snapshot, now time.Time) int {
	elapsedMillis := now.Sub(snapshot.SuspendedAt).Milliseconds()
	if elapsedMillis < 0 {
		elapsedMillis = 0
	}
	remaining := snapshot.RemainingSeconds - int(elapsedMillis/1000)
	if remaining < 0 {
		return 0
	}
	return remaining
}
