package session

import (
	"fmt"
	"strings"
	"time"

	"pomodoro/internal/feedback"
	"pomodoro/internal/storage"
)

// Variant describes the capabilities of one presentation of the timer.
type Variant struct {
	Name               string
	Layout             storage.Layout
	AutoStartDelay     time.Duration
	BackgroundRecovery bool
	Vibration          bool
	WakeLock           bool
	NotificationTitle  string
}

var (
	Desktop = Variant{
		Name:              "desktop",
		Layout:            storage.DesktopLayout,
		AutoStartDelay:    time.Second,
		NotificationTitle: feedback.DesktopTitle,
	}
	Mobile = Variant{
		Name:               "mobile",
		Layout:             storage.MobileLayout,
		AutoStartDelay:     2 * time.Second,
		BackgroundRecovery: true,
		Vibration:          true,
		WakeLock:           true,
		NotificationTitle:  feedback.MobileTitle,
	}
)

// VariantByName resolves "desktop" or "mobile".
func VariantByName(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Desktop.Name:
		return Desktop, nil
	case Mobile.Name:
		return Mobile, nil
	default:
		return Variant{}, fmt.Errorf("unknown variant %q", name)
	}
}
