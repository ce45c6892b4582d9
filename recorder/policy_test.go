package recorder

import (
	"testing"
	"time"
)

func TestCooldownActive(t *testing.T) {
	p := DefaultPolicy()
	base := time.Now()

	if p.CooldownActive(time.Time{}, base) {
		t.Error("zero lastToggle should never be in cooldown")
	}
	if !p.CooldownActive(base, base.Add(100*time.Millisecond)) {
		t.Error("100ms after toggle should be in cooldown")
	}
	if p.CooldownActive(base, base.Add(300*time.Millisecond)) {
		t.Error("exactly at cooldown boundary should be accepted")
	}
	if p.CooldownActive(base, base.Add(time.Second)) {
		t.Error("1s after toggle should be accepted")
	}
}

func TestRemainingMin(t *testing.T) {
	p := DefaultPolicy()
	start := time.Now()

	if got := p.RemainingMin(start, start.Add(500*time.Millisecond)); got != 700*time.Millisecond {
		t.Errorf("remaining = %v, want 700ms", got)
	}
	if got := p.RemainingMin(start, start.Add(2*time.Second)); got != 0 {
		t.Errorf("remaining = %v, want 0", got)
	}
}
