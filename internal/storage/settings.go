package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"pomodoro/internal/core/model"
)

// KeyValue is client-local string storage. fyne.Preferences satisfies it.
type KeyValue interface {
	String(key string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// Layout selects the key family and fields a variant persists.
type Layout struct {
	SettingsKey  string
	MobileFields bool
}

var (
	DesktopLayout = Layout{SettingsKey: "pomodoroSettings"}
	MobileLayout  = Layout{SettingsKey: "pomodoroMobileSettings", MobileFields: true}
)

type settingsDocument struct {
	WorkDuration      int   `json:"workDuration"`
	BreakDuration     int   `json:"breakDuration"`
	AutoStart         bool  `json:"autoStart"`
	Vibration         *bool `json:"vibration,omitempty"`
	KeepScreenOn      *bool `json:"keepScreenOn,omitempty"`
	SessionsCompleted int   `json:"sessionsCompleted"`
}

// UnmarshalJSON applies per-field defaults for anything absent or out of range.
func (document *settingsDocument) UnmarshalJSON(data []byte) error {
	var fileData struct {
		WorkDuration      *int  `json:"workDuration"`
		BreakDuration     *int  `json:"breakDuration"`
		AutoStart         *bool `json:"autoStart"`
		Vibration         *bool `json:"vibration"`
		KeepScreenOn      *bool `json:"keepScreenOn"`
		SessionsCompleted *int  `json:"sessionsCompleted"`
	}
	if err := json.Unmarshal(data, &fileData); err != nil {
		return err
	}

	vibration := model.DefaultVibration
	keepScreenOn := model.DefaultKeepScreenOn
	*document = settingsDocument{
		WorkDuration:  model.DefaultWorkMinutes,
		BreakDuration: model.DefaultBreakMinutes,
		AutoStart:     model.DefaultAutoStart,
		Vibration:     &vibration,
		KeepScreenOn:  &keepScreenOn,
	}

	if fileData.WorkDuration != nil && *fileData.WorkDuration > 0 {
		document.WorkDuration = *fileData.WorkDuration
	}
	if fileData.BreakDuration != nil && *fileData.BreakDuration > 0 {
		document.BreakDuration = *fileData.BreakDuration
	}
	if fileData.AutoStart != nil {
		document.AutoStart = *fileData.AutoStart
	}
	if fileData.Vibration != nil {
		*document.Vibration = *fileData.Vibration
	}
	if fileData.KeepScreenOn != nil {
		*document.KeepScreenOn = *fileData.KeepScreenOn
	}
	if fileData.SessionsCompleted != nil && *fileData.SessionsCompleted > 0 {
		document.SessionsCompleted = *fileData.SessionsCompleted
	}
	return nil
}

// SettingsStore persists the timer configuration as a JSON blob.
type SettingsStore struct {
	kv     KeyValue
	layout Layout
	logger *slog.Logger
}

// NewSettingsStore creates a store over the given key-value storage.
func NewSettingsStore(kv KeyValue, layout Layout, logger *slog.Logger) *SettingsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsStore{kv: kv, layout: layout, logger: logger}
}

// Load reads the persisted settings. A missing or corrupt blob yields defaults.
func (store *SettingsStore) Load() model.Settings {
	settings := model.Settings{Config: model.DefaultConfig()}

	raw := store.kv.String(store.layout.SettingsKey)
	if raw == "" {
		return settings
	}

	var document settingsDocument
	if err := json.Unmarshal([]byte(raw), &document); err != nil {
		store.logger.Debug("ignoring unreadable settings", "key", store.layout.SettingsKey, "error", err)
		return settings
	}

	settings.Config.WorkMinutes = document.WorkDuration
	settings.Config.BreakMinutes = document.BreakDuration
	settings.Config.AutoStartNext = document.AutoStart
	settings.Config.VibrationEnabled = *document.Vibration
	settings.Config.KeepScreenOnEnabled = *document.KeepScreenOn
	settings.CompletedWorkSessions = document.SessionsCompleted
	return settings
}

// Save overwrites the persisted blob with the configuration and session count.
func (store *SettingsStore) Save(config model.Config, completedWorkSessions int) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	document := settingsDocument{
		WorkDuration:      config.WorkMinutes,
		BreakDuration:     config.BreakMinutes,
		AutoStart:         config.AutoStartNext,
		SessionsCompleted: completedWorkSessions,
	}
	if store.layout.MobileFields {
		vibration := config.VibrationEnabled
		keepScreenOn := config.KeepScreenOnEnabled
		document.Vibration = &vibration
		document.KeepScreenOn = &keepScreenOn
	}

	serialized, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("marshal settings json: %w", err)
	}

	store.kv.SetString(store.layout.SettingsKey, string(serialized))
	return nil
}
