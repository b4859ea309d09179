package model

import "time"

// SessionKind distinguishes work sessions from breaks.
type SessionKind string

const (
	KindWork  SessionKind = "work"
	KindBreak SessionKind = "break"
)

// Other returns the kind that follows this one.
func (kind SessionKind) Other() SessionKind {
	if kind == KindWork {
		return KindBreak
	}
	return KindWork
}

// State is a point-in-time copy of the timer.
type State struct {
	RemainingSeconds      int
	TotalSeconds          int
	Kind                  SessionKind
	IsRunning             bool
	CompletedWorkSessions int
}

// IsWorkSession reports whether the current session is a work session.
func (state State) IsWorkSession() bool {
	return state.Kind == KindWork
}

// Progress returns the elapsed fraction of the current session in [0, 1].
func (state State) Progress() float64 {
	if state.TotalSeconds <= 0 {
		return 0
	}
	progress := float64(state.TotalSeconds-state.RemainingSeconds) / float64(state.TotalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Snapshot is written when the interface goes to the background while running.
type Snapshot struct {
	SuspendedAt      time.Time
	RemainingSeconds int
	WasRunning       bool
}

// Completion describes a finished session for feedback dispatch.
type Completion struct {
	SessionID             string
	Ended                 SessionKind
	Next                  SessionKind
	CompletedWorkSessions int
	Config                Config
	At                    time.Time
}

// Settings is what the settings store persists.
type Settings struct {
	Config                Config
	CompletedWorkSessions int
}
