package platform

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstance_SecondAcquireActivatesFirst(t *testing.T) {
	appName := fmt.Sprintf("pomodoro-test-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	defer func() { _ = guard.Release() }()

	activated := make(chan struct{}, 1)
	guard.OnActivate(func() { activated <- struct{}{} })

	second, err := AcquireSingleInstance(appName)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestSingleInstance_NilGuardIsSafe(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
	guard.OnActivate(func() {})
}

func TestPortFromName_Range(t *testing.T) {
	for _, name := range []string{"", "Pomodoro", "pomodoro-mobile"} {
		port := portFromName(name)
		assert.GreaterOrEqual(t, port, 20000)
		assert.LessOrEqual(t, port, 39999)
	}
	assert.Equal(t, portFromName("Pomodoro"), portFromName("Pomodoro"))
}

func TestSlugName(t *testing.T) {
	assert.Equal(t, "pomodoro", slugName("  "))
	assert.Equal(t, "focus-timer", slugName("Focus Timer"))
}

func TestAutostartEntry_Validate(t *testing.T) {
	assert.Error(t, AutostartEntry{ExecPath: "/bin/pomodoro"}.validate())
	assert.Error(t, AutostartEntry{AppName: "Pomodoro"}.validate())
	assert.NoError(t, AutostartEntry{AppName: "Pomodoro", ExecPath: "/bin/pomodoro"}.validate())
}

func TestUnsupportedCapabilities(t *testing.T) {
	assert.ErrorIs(t, NewVibrator().Vibrate([]time.Duration{time.Millisecond}), ErrUnsupported)
	assert.ErrorIs(t, NewSoundPlayer(nil, "").Play(context.Background()), ErrUnsupported)

	release, err := unsupportedWakeLock{}.Acquire(context.Background())
	assert.Nil(t, release)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestInhibitorWakeLock_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&inhibitorWakeLock{path: "unused"}).Acquire(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
