package tui

import "pomodoro/internal/core/timer"

// msgTimerEvent carries a timer event into the update loop.
type msgTimerEvent struct {
	Event timer.Event
}

// msgTimerClosed is sent when the timer's event channel closes.
type msgTimerClosed struct{}
