package platform

import "time"

// Vibrator drives haptic feedback.
type Vibrator interface {
	Vibrate(pattern []time.Duration) error
}

// NewVibrator returns the device vibrator. No supported target exposes one to
// Go yet, so every build reports ErrUnsupported.
func NewVibrator() Vibrator {
	return unsupportedVibrator{}
}

type unsupportedVibrator struct{}

func (unsupportedVibrator) Vibrate([]time.Duration) error {
	return ErrUnsupported
}
