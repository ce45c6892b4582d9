package recorder

import (
	"testing"
	"time"
)

func TestSessionAppendAndTake(t *testing.T) {
	s := newSession(16000)
	if s.id == "" {
		t.Fatal("session has no id")
	}
	s.append([]float32{0.1, -0.2, 0.3})
	s.append([]float32{0.05})
	if s.frames() != 4 {
		t.Fatalf("frames = %d, want 4", s.frames())
	}
	if got := s.peak(); got < 0.29 || got > 0.31 {
		t.Fatalf("peak = %v, want ~0.3", got)
	}

	samples := s.take()
	if len(samples) != 4 {
		t.Fatalf("take returned %d samples", len(samples))
	}
	if s.frames() != 0 {
		t.Fatal("session still holds samples after take")
	}
}

func TestSessionDropsAfterClose(t *testing.T) {
	s := newSession(16000)
	s.append([]float32{0.1})
	s.closeInput()
	s.append([]float32{0.2, 0.3})
	if s.frames() != 1 {
		t.Fatalf("frames = %d, want 1 (post-close blocks dropped)", s.frames())
	}
}

func TestSessionAudioLen(t *testing.T) {
	s := newSession(16000)
	s.append(make([]float32, 16000))
	if got := s.audioLen(); got != time.Second {
		t.Fatalf("audioLen = %v, want 1s", got)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a, b := newSession(16000), newSession(16000)
	if a.id == b.id {
		t.Fatal("two sessions share an id")
	}
}
