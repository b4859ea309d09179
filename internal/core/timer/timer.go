package timer

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"pomodoro/internal/core/model"
)

// ErrRunning indicates an operation that is only allowed while paused.
var ErrRunning = errors.New("timer is running")

// Feedback receives finished sessions.
type Feedback interface {
	SessionCompleted(completion model.Completion)
}

// Options contains runtime options for Timer.
type Options struct {
	TickInterval   time.Duration
	AutoStartDelay time.Duration
	Feedback       Feedback
	Now            func() time.Time
}

// Timer is the work/break session state machine.
type Timer struct {
	mu        sync.Mutex
	config    model.Config
	options   Options
	kind      model.SessionKind
	remaining int
	total     int
	completed int
	running   bool
	sessionID string

	// generation changes every time the tick source starts or stops, so a tick
	// that raced with Pause is recognised as stale.
	generation uint64
	stopCh     chan struct{}

	autoStart      *time.Timer
	autoStartToken uint64

	events    []chan Event
	listeners []func(Event)
	stopped   bool
}

// New creates a paused Timer at the start of a work session.
func New(config model.Config, completed int, options Options) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.AutoStartDelay < 0 {
		options.AutoStartDelay = 0
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if completed < 0 {
		completed = 0
	}

	timer := &Timer{
		config:    config,
		options:   options,
		kind:      model.KindWork,
		completed: completed,
		sessionID: uuid.NewString(),
	}
	timer.total = config.DurationSeconds(timer.kind)
	timer.remaining = timer.total
	return timer
}

// Subscribe registers a new observer channel. Sends never block; a full
// channel misses the event.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	if timer.stopped {
		close(ch)
	} else {
		timer.events = append(timer.events, ch)
	}
	timer.mu.Unlock()
	return ch
}

// OnEvent registers a listener called synchronously after every change.
func (timer *Timer) OnEvent(listener func(Event)) {
	if listener == nil {
		return
	}
	timer.mu.Lock()
	timer.listeners = append(timer.listeners, listener)
	timer.mu.Unlock()
}

// State returns a copy of the current state.
func (timer *Timer) State() model.State {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.stateLocked()
}

// Config returns the configuration in effect.
func (timer *Timer) Config() model.Config {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.config
}

// SessionID identifies the current session.
func (timer *Timer) SessionID() string {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.sessionID
}

// Start begins ticking. It is a no-op while already running.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.stopped || timer.running {
		timer.mu.Unlock()
		return
	}
	timer.cancelAutoStartLocked()
	timer.startTickLocked()
	event := timer.eventLocked(EventStarted)
	timer.mu.Unlock()

	timer.publish(event)
}

// Pause stops ticking and cancels a pending auto-start.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	timer.cancelAutoStartLocked()
	if !timer.running {
		timer.mu.Unlock()
		return
	}
	timer.stopTickLocked()
	event := timer.eventLocked(EventPaused)
	timer.mu.Unlock()

	timer.publish(event)
}

// Reset pauses and restores the full duration of the current session kind.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}
	timer.cancelAutoStartLocked()
	timer.stopTickLocked()
	timer.total = timer.config.DurationSeconds(timer.kind)
	timer.remaining = timer.total
	event := timer.eventLocked(EventReset)
	timer.mu.Unlock()

	timer.publish(event)
}

// Tick advances a running timer by one second.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		return
	}
	events, completion := timer.tickLocked()
	timer.mu.Unlock()

	timer.finish(events, completion)
}

// CompleteSession ends the current session immediately.
func (timer *Timer) CompleteSession() {
	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}
	events, completion := timer.completeLocked()
	timer.mu.Unlock()

	timer.finish(events, completion)
}

// Resume continues the current session with the given remaining seconds.
// The session total is left untouched.
func (timer *Timer) Resume(remainingSeconds int) {
	if remainingSeconds <= 0 {
		timer.CompleteSession()
		return
	}

	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}
	timer.cancelAutoStartLocked()
	if remainingSeconds > timer.total {
		remainingSeconds = timer.total
	}
	timer.remaining = remainingSeconds
	if !timer.running {
		timer.startTickLocked()
	}
	event := timer.eventLocked(EventResumed)
	timer.mu.Unlock()

	timer.publish(event)
}

// ApplyConfig replaces the configuration. A paused timer picks up the new
// duration for its current session kind; a running session is left alone.
func (timer *Timer) ApplyConfig(config model.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	timer.mu.Lock()
	timer.config = config
	if !timer.running {
		timer.total = config.DurationSeconds(timer.kind)
		timer.remaining = timer.total
	}
	event := timer.eventLocked(EventConfigApplied)
	timer.mu.Unlock()

	timer.publish(event)
	return nil
}

// SetQuickDuration sets the work duration while paused. A work session in
// progress is restarted with the new length.
func (timer *Timer) SetQuickDuration(minutes int) error {
	if minutes <= 0 {
		return model.ErrInvalidDuration
	}

	timer.mu.Lock()
	if timer.running {
		timer.mu.Unlock()
		return ErrRunning
	}
	timer.config.WorkMinutes = minutes
	if timer.kind == model.KindWork {
		timer.total = timer.config.DurationSeconds(model.KindWork)
		timer.remaining = timer.total
	}
	event := timer.eventLocked(EventConfigApplied)
	timer.mu.Unlock()

	timer.publish(event)
	return nil
}

// Stop terminates the tick source and closes observers.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}
	timer.stopped = true
	timer.cancelAutoStartLocked()
	timer.stopTickLocked()
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (timer *Timer) run(generation uint64, stopCh <-chan struct{}) {
	ticker := time.NewTicker(timer.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			timer.tickFrom(generation)
		}
	}
}

func (timer *Timer) tickFrom(generation uint64) {
	timer.mu.Lock()
	if !timer.running || timer.generation != generation {
		timer.mu.Unlock()
		return
	}
	events, completion := timer.tickLocked()
	timer.mu.Unlock()

	timer.finish(events, completion)
}

func (timer *Timer) tickLocked() ([]Event, *model.Completion) {
	if timer.remaining > 1 {
		timer.remaining--
		return []Event{timer.eventLocked(EventTick)}, nil
	}
	return timer.completeLocked()
}

func (timer *Timer) completeLocked() ([]Event, *model.Completion) {
	ended := timer.kind
	endedID := timer.sessionID

	timer.cancelAutoStartLocked()
	timer.stopTickLocked()
	if ended == model.KindWork {
		timer.completed++
	}
	timer.kind = ended.Other()
	timer.total = timer.config.DurationSeconds(timer.kind)
	timer.remaining = timer.total
	timer.sessionID = uuid.NewString()

	completion := model.Completion{
		SessionID:             endedID,
		Ended:                 ended,
		Next:                  timer.kind,
		CompletedWorkSessions: timer.completed,
		Config:                timer.config,
		At:                    timer.options.Now(),
	}

	completed := timer.eventLocked(EventCompleted)
	completed.Completion = &completion
	events := []Event{completed}

	if timer.config.AutoStartNext {
		timer.scheduleAutoStartLocked()
		events = append(events, timer.eventLocked(EventAutoStartScheduled))
	}
	return events, &completion
}

func (timer *Timer) finish(events []Event, completion *model.Completion) {
	if completion != nil && timer.options.Feedback != nil {
		timer.options.Feedback.SessionCompleted(*completion)
	}
	timer.publish(events...)
}

func (timer *Timer) startTickLocked() {
	timer.running = true
	timer.generation++
	timer.stopCh = make(chan struct{})
	go timer.run(timer.generation, timer.stopCh)
}

func (timer *Timer) stopTickLocked() {
	timer.running = false
	timer.generation++
	if timer.stopCh != nil {
		close(timer.stopCh)
		timer.stopCh = nil
	}
}

func (timer *Timer) scheduleAutoStartLocked() {
	timer.autoStartToken++
	token := timer.autoStartToken
	timer.autoStart = time.AfterFunc(timer.options.AutoStartDelay, func() {
		timer.autoStartFired(token)
	})
}

func (timer *Timer) cancelAutoStartLocked() {
	timer.autoStartToken++
	if timer.autoStart != nil {
		timer.autoStart.Stop()
		timer.autoStart = nil
	}
}

func (timer *Timer) autoStartFired(token uint64) {
	timer.mu.Lock()
	if token != timer.autoStartToken || timer.stopped || timer.running {
		timer.mu.Unlock()
		return
	}
	timer.autoStart = nil
	timer.startTickLocked()
	event := timer.eventLocked(EventStarted)
	timer.mu.Unlock()

	timer.publish(event)
}

func (timer *Timer) stateLocked() model.State {
	return model.State{
		RemainingSeconds:      timer.remaining,
		TotalSeconds:          timer.total,
		Kind:                  timer.kind,
		IsRunning:             timer.running,
		CompletedWorkSessions: timer.completed,
	}
}

func (timer *Timer) eventLocked(eventType EventType) Event {
	return Event{
		Type:      eventType,
		State:     timer.stateLocked(),
		SessionID: timer.sessionID,
		At:        timer.options.Now(),
	}
}

func (timer *Timer) publish(events ...Event) {
	if len(events) == 0 {
		return
	}
	timer.mu.Lock()
	for _, event := range events {
		timer.emitLocked(event)
	}
	listeners := slices.Clone(timer.listeners)
	timer.mu.Unlock()

	for _, event := range events {
		for _, listener := range listeners {
			listener(event)
		}
	}
}

func (timer *Timer) emitLocked(event Event) {
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
