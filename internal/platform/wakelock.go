package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// WakeLock keeps the display awake while held.
type WakeLock interface {
	Acquire(ctx context.Context) (func() error, error)
}

// NewWakeLock returns a platform-specific wake lock.
func NewWakeLock(appName string) WakeLock {
	return newWakeLock(appName)
}

// inhibitorWakeLock holds the lock for as long as a helper process lives.
type inhibitorWakeLock struct {
	path string
	args []string
}

func (lock *inhibitorWakeLock) Acquire(ctx context.Context) (func() error, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	command := exec.Command(lock.path, lock.args...)
	if err := command.Start(); err != nil {
		return nil, fmt.Errorf("acquire wake lock: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- command.Wait()
	}()

	var once sync.Once
	var releaseErr error
	release := func() error {
		once.Do(func() {
			if err := command.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
				releaseErr = fmt.Errorf("release wake lock: %w", err)
				return
			}
			<-done
		})
		return releaseErr
	}
	return release, nil
}

type unsupportedWakeLock struct{}

func (unsupportedWakeLock) Acquire(context.Context) (func() error, error) {
	return nil, ErrUnsupported
}
