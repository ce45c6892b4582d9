package recorder

import "time"

// Policy holds the timing rules around a push-to-talk session.
type Policy struct {
	// ToggleCooldown debounces the hotkey: presses arriving sooner than
	// this after the previous accepted toggle are ignored.
	ToggleCooldown time.Duration
	// MinRecord is the floor on capture length. A release before this
	// elapses defers the stop instead of cutting the clip short.
	MinRecord time.Duration
	// PostRoll keeps the stream open briefly after a stop so trailing
	// syllables are not clipped.
	PostRoll time.Duration
}

// DefaultPolicy matches the shipped configuration.
func DefaultPolicy() Policy {
	return Policy{
		ToggleCooldown: 300 * time.Millisecond,
		MinRecord:      1200 * time.Millisecond,
		PostRoll:       350 * time.Millisecond,
	}
}

// CooldownActive reports whether a toggle at now falls inside the
// debounce window after the last accepted toggle.
func (p Policy) CooldownActive(lastToggle, now time.Time) bool {
	if lastToggle.IsZero() {
		return false
	}
	return now.Sub(lastToggle) < p.ToggleCooldown
}

// RemainingMin returns how much longer a session started at started must
// keep recording to satisfy MinRecord. Zero when already satisfied.
func (p Policy) RemainingMin(started, now time.Time) time.Duration {
	rem := p.MinRecord - now.Sub(started)
	if rem < 0 {
		return 0
	}
	return rem
}
