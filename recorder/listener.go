package recorder

import "time"

// Listener receives recorder lifecycle events. All callbacks may run on
// internal goroutines and must return quickly.
type Listener interface {
	RecordingStarted(session, device string)
	RecordingStopped(session string, audio time.Duration)
	RecordingDiscarded(session, reason string)
	SilenceChanged(session string, silent bool)
	TranscriptionDone(session, text, strategy string)
	TranscriptionFailed(session string, err error)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) RecordingStarted(string, string)          {}
func (NopListener) RecordingStopped(string, time.Duration)   {}
func (NopListener) RecordingDiscarded(string, string)        {}
func (NopListener) SilenceChanged(string, bool)              {}
func (NopListener) TranscriptionDone(string, string, string) {}
func (NopListener) TranscriptionFailed(string, error)        {}
