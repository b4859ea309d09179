package timer

import (
	"time"

	"pomodoro/internal/core/model"
)

// EventType defines the type of Timer event.
type EventType string

const (
	EventStarted            EventType = "started"
	EventPaused             EventType = "paused"
	EventReset              EventType = "reset"
	EventTick               EventType = "tick"
	EventCompleted          EventType = "completed"
	EventAutoStartScheduled EventType = "auto_start_scheduled"
	EventConfigApplied      EventType = "config_applied"
	EventResumed            EventType = "resumed"
)

// Event represents a Timer update for observers.
// State always reflects the timer after the change.
type Event struct {
	Type       EventType
	State      model.State
	SessionID  string
	Completion *model.Completion
	At         time.Time
}
