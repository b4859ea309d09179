package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"pomodoro/internal/core/model"
)

// Fields holds the raw values of the settings form.
type Fields struct {
	WorkMinutes  string
	BreakMinutes string
	AutoStart    bool
	Vibration    bool
	KeepScreenOn bool
}

// FieldsFromConfig fills the form from config.
func FieldsFromConfig(config model.Config) Fields {
	return Fields{
		WorkMinutes:  strconv.Itoa(config.WorkMinutes),
		BreakMinutes: strconv.Itoa(config.BreakMinutes),
		AutoStart:    config.AutoStartNext,
		Vibration:    config.VibrationEnabled,
		KeepScreenOn: config.KeepScreenOnEnabled,
	}
}

// Config parses the form. Mobile-only toggles are copied from base unless
// mobile is set.
func (fields Fields) Config(base model.Config, mobile bool) (model.Config, error) {
	work, err := parseMinutes("work", fields.WorkMinutes)
	if err != nil {
		return model.Config{}, err
	}
	breakMinutes, err := parseMinutes("break", fields.BreakMinutes)
	if err != nil {
		return model.Config{}, err
	}

	config := base
	config.WorkMinutes = work
	config.BreakMinutes = breakMinutes
	config.AutoStartNext = fields.AutoStart
	if mobile {
		config.VibrationEnabled = fields.Vibration
		config.KeepScreenOnEnabled = fields.KeepScreenOn
	}
	return config, nil
}

func parseMinutes(name string, value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%s duration %q: %w", name, value, model.ErrInvalidDuration)
	}
	return parsed, nil
}
