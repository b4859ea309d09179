package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/platform"
)

type fakeWakeLock struct {
	acquired int
	released int
	err      error
}

func (lock *fakeWakeLock) Acquire(context.Context) (func() error, error) {
	if lock.err != nil {
		return nil, lock.err
	}
	lock.acquired++
	return func() error {
		lock.released++
		return nil
	}, nil
}

func TestKeepAwake_AcquireIsIdempotent(t *testing.T) {
	lock := &fakeWakeLock{}
	keep := NewKeepAwake(lock, nil)

	keep.Acquire(context.Background())
	keep.Acquire(context.Background())

	assert.True(t, keep.Held())
	assert.Equal(t, 1, lock.acquired)

	keep.Release()
	keep.Release()

	assert.False(t, keep.Held())
	assert.Equal(t, 1, lock.released)
}

func TestKeepAwake_UnsupportedIsSilent(t *testing.T) {
	keep := NewKeepAwake(&fakeWakeLock{err: platform.ErrUnsupported}, nil)

	keep.Acquire(context.Background())

	assert.False(t, keep.Held())
}

func TestKeepAwake_NilLock(t *testing.T) {
	keep := NewKeepAwake(nil, nil)
	keep.Acquire(context.Background())
	keep.Release()
	assert.False(t, keep.Held())
}
