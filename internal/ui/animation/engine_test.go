package animation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

type spriteRecorder struct {
	mu     sync.Mutex
	frames []string
}

func (recorder *spriteRecorder) update(resource fyne.Resource) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.frames = append(recorder.frames, resource.Name())
}

func (recorder *spriteRecorder) count() int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return len(recorder.frames)
}

func (recorder *spriteRecorder) snapshot() []string {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]string(nil), recorder.frames...)
}

func fastConfig() Config {
	return Config{
		FrameDuration: Range{Min: time.Millisecond, Max: 2 * time.Millisecond},
		RestDuration:  Range{Min: time.Millisecond},
	}
}

func TestRange_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	fixed := Range{Min: time.Second, Max: time.Second}
	assert.Equal(t, time.Second, fixed.Random(rng))

	spread := Range{Min: time.Second, Max: 2 * time.Second}
	for i := 0; i < 50; i++ {
		value := spread.Random(rng)
		assert.GreaterOrEqual(t, value, time.Second)
		assert.Less(t, value, 2*time.Second)
	}
}

func TestEngine_CyclesFramesInOrder(t *testing.T) {
	recorder := &spriteRecorder{}
	engine := New(fastConfig(), recorder.update)
	frames := []fyne.Resource{
		fyne.NewStaticResource("a", nil),
		fyne.NewStaticResource("b", nil),
	}

	engine.Start(context.Background(), frames)
	defer engine.Stop()

	assert.Eventually(t, func() bool { return recorder.count() >= 4 }, time.Second, time.Millisecond)
	got := recorder.snapshot()
	assert.Equal(t, []string{"a", "b", "a", "b"}, got[:4])
	assert.True(t, engine.Running())
}

func TestEngine_StopHaltsUpdates(t *testing.T) {
	recorder := &spriteRecorder{}
	engine := New(fastConfig(), recorder.update)

	engine.Start(context.Background(), []fyne.Resource{fyne.NewStaticResource("a", nil)})
	assert.Eventually(t, func() bool { return recorder.count() >= 1 }, time.Second, time.Millisecond)
	engine.Stop()
	assert.False(t, engine.Running())

	time.Sleep(20 * time.Millisecond)
	settled := recorder.count()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, recorder.count())
}

func TestEngine_NoFramesStops(t *testing.T) {
	engine := New(fastConfig(), func(fyne.Resource) {})

	engine.Start(context.Background(), []fyne.Resource{fyne.NewStaticResource("a", nil)})
	engine.Start(context.Background(), nil)

	assert.False(t, engine.Running())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Greater(t, config.FrameDuration.Min, time.Duration(0))
	assert.LessOrEqual(t, config.FrameDuration.Min, config.FrameDuration.Max)
	assert.LessOrEqual(t, config.RestDuration.Min, config.RestDuration.Max)
}
