package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains animation timing values.
type Config struct {
	// FrameDuration is how long each frame stays on screen.
	FrameDuration Range
	// RestDuration is the pause after the last frame before the cycle
	// starts over.
	RestDuration Range
}

// Engine cycles sprite frames until it is stopped.
type Engine struct {
	mu           sync.Mutex
	config       Config
	updateSprite func(fyne.Resource)
	cancel       context.CancelFunc
	rng          *rand.Rand
}

// New creates a new animation engine.
func New(config Config, updateSprite func(fyne.Resource)) *Engine {
	return &Engine{
		config:       config,
		updateSprite: updateSprite,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start shows frames in order, looping until ctx is done or Stop is called.
// A running cycle is replaced.
func (engine *Engine) Start(ctx context.Context, frames []fyne.Resource) {
	if len(frames) == 0 {
		engine.Stop()
		return
	}
	frames = append([]fyne.Resource(nil), frames...)
	engine.start(ctx, func(runCtx context.Context) {
		for {
			for _, frame := range frames {
				engine.updateSprite(frame)
				if !sleepWithContext(runCtx, engine.random(engine.config.FrameDuration)) {
					return
				}
			}
			if !sleepWithContext(runCtx, engine.random(engine.config.RestDuration)) {
				return
			}
		}
	})
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Running reports whether a cycle is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

// rand.Rand is not safe for concurrent use.
func (engine *Engine) random(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	if duration <= 0 {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
