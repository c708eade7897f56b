// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/saasboard/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "SaaS Dashboard"

type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the delivery function. Tests use it to avoid sending
// real notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep delivery.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default
	err := notifier(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// Toast mirrors an in-app toast. The kind is prefixed so that errors stand
// out in the system notification center.
func Toast(kind, message string) error {
	title := AppName
	if kind != "" {
		title = AppName + " · " + kind
	}
	return Send(title, message)
}
