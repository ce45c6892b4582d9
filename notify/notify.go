// Package notify sends desktop notifications when enabled.
package notify

import "github.com/gen2brain/beeep"

const title = "voicetype"

// Notifier posts desktop notifications. The zero value is disabled.
type Notifier struct {
	enabled bool
}

func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// Send posts a notification. Errors are swallowed; a missing
// notification daemon should never interrupt dictation.
func (n *Notifier) Send(message string) {
	if n == nil || !n.enabled {
		return
	}
	_ = beeep.Notify(title, message, "")
}
