package storage

import (
	"encoding/json"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func newPreferences(t *testing.T) KeyValue {
	t.Helper()
	return test.NewApp().Preferences()
}

func TestSettingsStore_LoadMissingReturnsDefaults(t *testing.T) {
	store := NewSettingsStore(newPreferences(t), DesktopLayout, nil)

	settings := store.Load()

	assert.Equal(t, model.DefaultConfig(), settings.Config)
	assert.Zero(t, settings.CompletedWorkSessions)
}

func TestSettingsStore_LoadCorruptReturnsDefaults(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", "{work"},
		{"array", "[1,2,3]"},
		{"wrong field type", `{"workDuration":"thirty"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := newPreferences(t)
			prefs.SetString(DesktopLayout.SettingsKey, tt.blob)

			settings := NewSettingsStore(prefs, DesktopLayout, nil).Load()

			assert.Equal(t, model.DefaultConfig(), settings.Config)
		})
	}
}

func TestSettingsStore_LoadPerFieldDefaults(t *testing.T) {
	prefs := newPreferences(t)
	prefs.SetString(MobileLayout.SettingsKey, `{"workDuration":40,"autoStart":false,"vibration":false,"breakDuration":0,"sessionsCompleted":-2}`)

	settings := NewSettingsStore(prefs, MobileLayout, nil).Load()

	assert.Equal(t, 40, settings.Config.WorkMinutes)
	assert.Equal(t, model.DefaultBreakMinutes, settings.Config.BreakMinutes)
	assert.False(t, settings.Config.AutoStartNext)
	assert.False(t, settings.Config.VibrationEnabled)
	assert.True(t, settings.Config.KeepScreenOnEnabled)
	assert.Zero(t, settings.CompletedWorkSessions)
}

func TestSettingsStore_SaveRoundTripMobile(t *testing.T) {
	prefs := newPreferences(t)
	store := NewSettingsStore(prefs, MobileLayout, nil)
	config := model.Config{
		WorkMinutes:         50,
		BreakMinutes:        10,
		AutoStartNext:       false,
		VibrationEnabled:    false,
		KeepScreenOnEnabled: true,
	}

	require.NoError(t, store.Save(config, 7))

	settings := store.Load()
	assert.Equal(t, config, settings.Config)
	assert.Equal(t, 7, settings.CompletedWorkSessions)
}

func TestSettingsStore_DesktopBlobShape(t *testing.T) {
	prefs := newPreferences(t)
	store := NewSettingsStore(prefs, DesktopLayout, nil)

	require.NoError(t, store.Save(model.Config{WorkMinutes: 30, BreakMinutes: 10, AutoStartNext: true}, 3))

	var blob map[string]any
	require.NoError(t, json.Unmarshal([]byte(prefs.String("pomodoroSettings")), &blob))
	assert.Equal(t, map[string]any{
		"workDuration":      float64(30),
		"breakDuration":     float64(10),
		"autoStart":         true,
		"sessionsCompleted": float64(3),
	}, blob)
	assert.Empty(t, prefs.String("pomodoroMobileSettings"))
}

func TestSettingsStore_SaveRejectsInvalidConfig(t *testing.T) {
	prefs := newPreferences(t)
	store := NewSettingsStore(prefs, DesktopLayout, nil)

	err := store.Save(model.Config{WorkMinutes: 25, BreakMinutes: -1}, 0)

	assert.ErrorIs(t, err, model.ErrInvalidDuration)
	assert.Empty(t, prefs.String(DesktopLayout.SettingsKey))
}

func TestSettingsStore_KeyFamiliesIndependent(t *testing.T) {
	prefs := newPreferences(t)
	desktop := NewSettingsStore(prefs, DesktopLayout, nil)
	mobile := NewSettingsStore(prefs, MobileLayout, nil)

	require.NoError(t, desktop.Save(model.Config{WorkMinutes: 45, BreakMinutes: 15}, 1))

	assert.Equal(t, model.DefaultConfig(), mobile.Load().Config)
	assert.Equal(t, 45, desktop.Load().Config.WorkMinutes)
}
