package feedback

import (
	"context"

	"fyne.io/fyne/v2"
	"github.com/ncruces/zenity"

	"pomodoro/internal/platform"
)

// PermissionState mirrors the OS notification permission.
type PermissionState string

const (
	PermissionDefault PermissionState = "default"
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
)

// Notification is a single OS notification.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// Notifier shows OS notifications.
type Notifier interface {
	Permission() PermissionState
	RequestPermission(ctx context.Context) (PermissionState, error)
	Show(notification Notification) error
}

// FyneNotifier sends notifications through the fyne app. fyne exposes no
// permission prompt, so permission is always granted.
type FyneNotifier struct {
	app fyne.App
}

// NewFyneNotifier creates a notifier for app.
func NewFyneNotifier(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

func (notifier *FyneNotifier) Permission() PermissionState {
	return PermissionGranted
}

func (notifier *FyneNotifier) RequestPermission(context.Context) (PermissionState, error) {
	return PermissionGranted, nil
}

func (notifier *FyneNotifier) Show(notification Notification) error {
	notifier.app.SendNotification(fyne.NewNotification(notification.Title, notification.Body))
	return nil
}

// ZenityNotifier uses native notification helpers for variants without a
// fyne app.
type ZenityNotifier struct {
	available bool
}

// NewZenityNotifier probes for a notification helper.
func NewZenityNotifier() *ZenityNotifier {
	return &ZenityNotifier{available: zenity.IsAvailable()}
}

func (notifier *ZenityNotifier) Permission() PermissionState {
	if notifier.available {
		return PermissionGranted
	}
	return PermissionDenied
}

func (notifier *ZenityNotifier) RequestPermission(context.Context) (PermissionState, error) {
	if !notifier.available {
		return PermissionDenied, platform.ErrUnsupported
	}
	return PermissionGranted, nil
}

func (notifier *ZenityNotifier) Show(notification Notification) error {
	if !notifier.available {
		return platform.ErrUnsupported
	}
	options := []zenity.Option{zenity.Title(notification.Title), zenity.InfoIcon}
	if notification.Icon != "" {
		options = append(options, zenity.Icon(notification.Icon))
	}
	return zenity.Notify(notification.Body, options...)
}
