package feedback

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"pomodoro/internal/platform"
)

// KeepAwake holds a screen wake lock while a session runs.
type KeepAwake struct {
	mu      sync.Mutex
	lock    platform.WakeLock
	release func() error
	logger  *slog.Logger
}

// NewKeepAwake wraps a platform wake lock.
func NewKeepAwake(lock platform.WakeLock, logger *slog.Logger) *KeepAwake {
	if logger == nil {
		logger = slog.Default()
	}
	return &KeepAwake{lock: lock, logger: logger.With("component", "wake_lock")}
}

// Acquire takes the lock if it is not already held. Failure is logged.
func (keep *KeepAwake) Acquire(ctx context.Context) {
	keep.mu.Lock()
	defer keep.mu.Unlock()
	if keep.release != nil || keep.lock == nil {
		return
	}

	release, err := keep.lock.Acquire(ctx)
	if err != nil {
		if errors.Is(err, platform.ErrUnsupported) {
			keep.logger.Debug("wake lock unavailable")
			return
		}
		keep.logger.Warn("failed to request wake lock", "error", err)
		return
	}
	keep.release = release
	keep.logger.Debug("wake lock acquired")
}

// Release drops the lock if held.
func (keep *KeepAwake) Release() {
	keep.mu.Lock()
	defer keep.mu.Unlock()
	if keep.release == nil {
		return
	}
	if err := keep.release(); err != nil {
		keep.logger.Warn("failed to release wake lock", "error", err)
	}
	keep.release = nil
	keep.logger.Debug("wake lock released")
}

// Held reports whether the lock is currently held.
func (keep *KeepAwake) Held() bool {
	keep.mu.Lock()
	defer keep.mu.Unlock()
	return keep.release != nil
}
