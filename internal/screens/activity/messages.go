package activity

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tinkerlab/tinkeralpha/internal/feedback"
)

// feedbackExpiredMsg is sent when a feedback popup's display window
// ends. Gen identifies which popup the timer belongs to.
type feedbackExpiredMsg struct {
	Gen int
}

// hintReadyMsg is sent when Sparky's hint arrives.
type hintReadyMsg struct {
	Text string
	Err  error
}

// expireFeedback schedules the expiry timer for a published popup.
func expireFeedback(gen int) tea.Cmd {
	return tea.Tick(feedback.DisplayWindow, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{Gen: gen}
	})
}
