// Package notify decides what a completion alert says and how the countdown
// badge looks. Delivery is someone else's job.
package notify

import (
	"fmt"
	"time"

	"github.com/Tanzimhossain222/chrono-boost/internal/model"
)

// BadgeClearDelay is how long the badge lingers after an interval finishes
// before the clear goes out.
const BadgeClearDelay = 5 * time.Second

// Badge colors keyed by the mode that is counting down.
const (
	BadgeColorFocus      = "#d95550"
	BadgeColorShortBreak = "#4c9195"
	BadgeColorLongBreak  = "#457ca3"
)

// Notification is the user-facing alert for a finished interval. Notify and
// Sound carry the user's toggles so clients only render what was asked for.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Notify  bool   `json:"notify"`
	Sound   bool   `json:"sound"`
}

// ForCompletion builds the alert for the mode that just finished.
func ForCompletion(exited string, settings model.Settings) Notification {
	notification := Notification{
		Notify: settings.NotificationsEnabled,
		Sound:  settings.SoundsEnabled,
	}
	switch exited {
	case model.ModeShortBreak:
		notification.Title = "Break over"
		notification.Message = "Back to focus."
	case model.ModeLongBreak:
		notification.Title = "Long break over"
		notification.Message = "New cycle started. Back to focus."
	default:
		notification.Title = "Focus session complete"
		notification.Message = "Nice work. Time for a break."
	}
	return notification
}

// BadgeColor returns the badge color for the mode counting down.
func BadgeColor(mode string) string {
	switch mode {
	case model.ModeShortBreak:
		return BadgeColorShortBreak
	case model.ModeLongBreak:
		return BadgeColorLongBreak
	default:
		return BadgeColorFocus
	}
}

// BadgeText renders the countdown the way the badge shows it.
func BadgeText(minutes, seconds int) string {
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
