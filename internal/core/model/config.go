package model

import (
	"errors"
	"fmt"
	"time"
)

// Default configuration values.
const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
	DefaultAutoStart    = true
	DefaultVibration    = true
	DefaultKeepScreenOn = true
)

// ErrInvalidDuration indicates a non-positive session duration.
var ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

// Config contains the user-editable timer settings.
type Config struct {
	WorkMinutes   int
	BreakMinutes  int
	AutoStartNext bool

	VibrationEnabled    bool
	KeepScreenOnEnabled bool
}

// DefaultConfig returns the default timer settings.
func DefaultConfig() Config {
	return Config{
		WorkMinutes:         DefaultWorkMinutes,
		BreakMinutes:        DefaultBreakMinutes,
		AutoStartNext:       DefaultAutoStart,
		VibrationEnabled:    DefaultVibration,
		KeepScreenOnEnabled: DefaultKeepScreenOn,
	}
}

// Validate reports whether both durations are positive.
func (config Config) Validate() error {
	if config.WorkMinutes <= 0 {
		return fmt.Errorf("work duration %d: %w", config.WorkMinutes, ErrInvalidDuration)
	}
	if config.BreakMinutes <= 0 {
		return fmt.Errorf("break duration %d: %w", config.BreakMinutes, ErrInvalidDuration)
	}
	return nil
}

// DurationSeconds returns the configured length of a session kind in seconds.
func (config Config) DurationSeconds(kind SessionKind) int {
	if kind == KindBreak {
		return config.BreakMinutes * 60
	}
	return config.WorkMinutes * 60
}

// Duration returns the configured length of a session kind.
func (config Config) Duration(kind SessionKind) time.Duration {
	return time.Duration(config.DurationSeconds(kind)) * time.Second
}
