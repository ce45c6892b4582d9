package recorder

import "time"

const (
	tickInterval     = 100 * time.Millisecond
	speechMinRatio   = 0.10
	speechClearRatio = 0.25 // higher threshold to clear the warning (hysteresis)
)

type silenceEvent int

const (
	silenceNone silenceEvent = iota
	silenceWarn
	silenceWarnClear
	silenceRepeat
)

// silenceMonitor watches per-tick speech flags and raises a warning when
// the recent window holds no voice. The hotkey is still held, so it only
// warns; it never ends the recording.
type silenceMonitor struct {
	warnAt int

	ticks    int
	window   []bool
	warned   bool
	lastWarn int
}

func newSilenceMonitor(warnAfter time.Duration) *silenceMonitor {
	warnAt := int(warnAfter / tickInterval)
	if warnAt < 1 {
		warnAt = 1
	}
	return &silenceMonitor{
		warnAt: warnAt,
		window: make([]bool, warnAt),
	}
}

func (m *silenceMonitor) ratio() float64 {
	n := len(m.window)
	if m.ticks < n {
		n = m.ticks
	}
	if n == 0 {
		return 1.0
	}
	count := 0
	for i := 0; i < n; i++ {
		if m.window[(m.ticks-1-i+len(m.window))%len(m.window)] {
			count++
		}
	}
	return float64(count) / float64(n)
}

func (m *silenceMonitor) Tick(hasSpeech bool) silenceEvent {
	m.window[m.ticks%len(m.window)] = hasSpeech
	m.ticks++

	r := m.ratio()

	if m.ticks >= m.warnAt && r < speechMinRatio && !m.warned {
		m.warned = true
		m.lastWarn = m.ticks
		return silenceWarn
	}
	if m.warned && r >= speechClearRatio {
		m.warned = false
		return silenceWarnClear
	}
	if m.warned && m.ticks-m.lastWarn >= m.warnAt {
		m.lastWarn = m.ticks
		return silenceRepeat
	}
	return silenceNone
}
