package recorder

import (
	"testing"
	"time"
)

func feedN(m *silenceMonitor, speech bool, n int) silenceEvent {
	var last silenceEvent
	for i := 0; i < n; i++ {
		last = m.Tick(speech)
	}
	return last
}

func TestSilenceWarnAfter8s(t *testing.T) {
	m := newSilenceMonitor(8 * time.Second)
	// 79 ticks of silence, no warning yet
	for i := 0; i < 79; i++ {
		if ev := m.Tick(false); ev != silenceNone {
			t.Fatalf("unexpected event at tick %d: %d", i, ev)
		}
	}
	// 80th tick triggers the warning (8s at 100ms ticks)
	if ev := m.Tick(false); ev != silenceWarn {
		t.Fatalf("expected silenceWarn at tick 80, got %d", ev)
	}
}

func TestSilenceWarnClearsOnSpeech(t *testing.T) {
	m := newSilenceMonitor(8 * time.Second)
	feedN(m, false, 80) // triggers warn

	// sustained speech clears the warning (needs 25% of the window)
	for i := 0; i < 80; i++ {
		if ev := m.Tick(true); ev == silenceWarnClear {
			return
		}
	}
	t.Fatal("expected silenceWarnClear after speech")
}

func TestNoWarnDuringSpeech(t *testing.T) {
	m := newSilenceMonitor(8 * time.Second)
	for i := 0; i < 200; i++ {
		if ev := m.Tick(true); ev == silenceWarn {
			t.Fatalf("unexpected warn during speech at tick %d", i)
		}
	}
}

func TestSilenceRepeat(t *testing.T) {
	m := newSilenceMonitor(8 * time.Second)
	feedN(m, false, 80) // warn at tick 80
	var gotRepeat bool
	for i := 0; i < 100; i++ {
		if ev := m.Tick(false); ev == silenceRepeat {
			gotRepeat = true
			break
		}
	}
	if !gotRepeat {
		t.Fatal("expected silenceRepeat during continued silence")
	}
}

func TestWarnClearWarnCycle(t *testing.T) {
	m := newSilenceMonitor(8 * time.Second)
	if ev := feedN(m, false, 80); ev != silenceWarn {
		t.Fatalf("first warn missing, got %d", ev)
	}
	cleared := false
	for i := 0; i < 80; i++ {
		if m.Tick(true) == silenceWarnClear {
			cleared = true
			break
		}
	}
	if !cleared {
		t.Fatal("warning never cleared")
	}
	// silence again re-warns once the window drains
	for i := 0; i < 160; i++ {
		if m.Tick(false) == silenceWarn {
			return
		}
	}
	t.Fatal("expected a second warn after renewed silence")
}
