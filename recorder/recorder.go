// Package recorder runs the push-to-talk capture lifecycle: hotkey press
// starts a session, release stops it (deferred until the minimum length
// is reached), then the clip is validated, transcribed and delivered.
package recorder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"voicetype/audio"
	"voicetype/deliver"
	"voicetype/log"
	"voicetype/transcriber"
)

type State int

const (
	Idle State = iota
	Recording
	StopPending  // keyup arrived before the minimum length elapsed
	Finalizing   // post-roll and stream teardown
	Transcribing // clip handed to the transcriber
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case StopPending:
		return "stop-pending"
	case Finalizing:
		return "finalizing"
	case Transcribing:
		return "transcribing"
	}
	return "unknown"
}

// Deliverer pushes transcribed text into the focused application.
type Deliverer interface {
	Deliver(text string) deliver.Outcome
}

type Options struct {
	Policy      Policy
	Context     audio.Context
	Device      *audio.DeviceInfo // nil means system default
	SampleRate  int
	Transcriber transcriber.Transcriber
	Deliverer   Deliverer
	Listener    Listener
	SilenceWarn time.Duration // 0 disables the silence watcher
	SaveAudio   bool
	AudioDir    string
	SaveText    bool
	TextDir     string
}

type Recorder struct {
	opts Options

	mu         sync.Mutex
	state      State
	lastToggle time.Time
	sess       *session
	capture    audio.Capture
	watchStop  chan struct{}
}

func New(opts Options) *Recorder {
	if opts.Listener == nil {
		opts.Listener = NopListener{}
	}
	if opts.SampleRate == 0 {
		opts.SampleRate = audio.DefaultSampleRate
	}
	return &Recorder{opts: opts}
}

func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start opens a new capture session. Presses while a session is live or
// inside the cooldown window are ignored.
func (r *Recorder) Start() error {
	r.mu.Lock()
	if r.state != Idle {
		state := r.state
		r.mu.Unlock()
		log.Debugf("keydown ignored, recorder %s", state)
		return nil
	}
	now := time.Now()
	if r.opts.Policy.CooldownActive(r.lastToggle, now) {
		r.mu.Unlock()
		log.Debug("keydown ignored, cooldown")
		return nil
	}
	r.lastToggle = now

	capture, err := r.opts.Context.NewCapture(r.opts.Device, audio.CaptureConfig{
		SampleRate: uint32(r.opts.SampleRate),
		Channels:   1,
	})
	if err != nil {
		r.mu.Unlock()
		return fmt.Errorf("opening capture: %w", err)
	}

	sess := newSession(r.opts.SampleRate)

	var vd *voiceDetector
	if r.opts.SilenceWarn > 0 && vadRateSupported(r.opts.SampleRate) {
		if v, verr := newVoiceDetector(r.opts.SampleRate); verr == nil {
			vd = v
		} else {
			log.Warnf("voice detection unavailable: %v", verr)
		}
	}

	capture.SetCallback(func(samples []float32, frameCount uint32) {
		block := make([]float32, len(samples))
		copy(block, samples)
		sess.append(block)
		if vd != nil {
			vd.Process(block)
		}
	})

	if err := capture.Start(); err != nil {
		capture.ClearCallback()
		capture.Close()
		r.mu.Unlock()
		return fmt.Errorf("starting capture: %w", err)
	}

	r.state = Recording
	r.sess = sess
	r.capture = capture
	if vd != nil {
		r.watchStop = make(chan struct{})
		go r.watchSilence(sess, vd, r.watchStop)
	}
	r.mu.Unlock()

	log.SessionStart(sess.id, capture.DeviceName(), r.opts.SampleRate)
	r.opts.Listener.RecordingStarted(sess.id, capture.DeviceName())
	return nil
}

// RequestStop ends the live session. It never blocks: a release before
// the minimum length flips to StopPending and a poller promotes the stop
// once the floor is reached.
func (r *Recorder) RequestStop() {
	r.mu.Lock()
	if r.state != Recording {
		state := r.state
		r.mu.Unlock()
		if state == Idle {
			log.Debug("keyup ignored, not recording")
		}
		return
	}
	sess := r.sess
	if rem := r.opts.Policy.RemainingMin(sess.startedAt, time.Now()); rem > 0 {
		r.state = StopPending
		r.mu.Unlock()
		log.Debugf("session %s: stop deferred %v", sess.id, rem.Round(time.Millisecond))
		go r.promoteStop(sess)
		return
	}
	r.state = Finalizing
	r.mu.Unlock()
	go r.finalize(sess, false)
}

func (r *Recorder) promoteStop(sess *session) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for range ticker.C {
		r.mu.Lock()
		if r.state != StopPending || r.sess != sess {
			r.mu.Unlock()
			return
		}
		if r.opts.Policy.RemainingMin(sess.startedAt, time.Now()) > 0 {
			r.mu.Unlock()
			continue
		}
		r.state = Finalizing
		r.mu.Unlock()
		r.finalize(sess, false)
		return
	}
}

// Cancel drops the live session without transcribing it. Reports whether
// there was anything to cancel.
func (r *Recorder) Cancel() bool {
	r.mu.Lock()
	if r.state != Recording && r.state != StopPending {
		r.mu.Unlock()
		return false
	}
	sess := r.sess
	r.state = Finalizing
	r.mu.Unlock()
	go r.finalize(sess, true)
	return true
}

// StopWait stops the live session, honoring the minimum length, and
// blocks until the whole pipeline has drained. Used on shutdown.
func (r *Recorder) StopWait() {
	r.mu.Lock()
	if r.state == Idle {
		r.mu.Unlock()
		return
	}
	done := r.sess.done
	r.mu.Unlock()
	r.RequestStop()
	<-done
}

func (r *Recorder) watchSilence(sess *session, vd *voiceDetector, stop chan struct{}) {
	mon := newSilenceMonitor(r.opts.SilenceWarn)
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			switch mon.Tick(vd.HasSpeechTick()) {
			case silenceWarn:
				log.Warnf("session %s: no voice detected", sess.id)
				r.opts.Listener.SilenceChanged(sess.id, true)
			case silenceWarnClear:
				r.opts.Listener.SilenceChanged(sess.id, false)
			case silenceRepeat:
				log.Warnf("session %s: still no voice", sess.id)
				r.opts.Listener.SilenceChanged(sess.id, true)
			}
		}
	}
}

// captureJoinTimeout bounds how long finalize waits for the audio
// backend to tear the stream down. Past it the clip already buffered is
// used as is.
const captureJoinTimeout = 2 * time.Second

func (r *Recorder) finalize(sess *session, cancelled bool) {
	defer close(sess.done)
	defer r.setIdle()
	// cooldown covers the whole stop, transcription included
	defer func() {
		r.mu.Lock()
		r.lastToggle = time.Now()
		r.mu.Unlock()
	}()

	// trailing syllables keep arriving while we sleep
	if !cancelled && r.opts.Policy.PostRoll > 0 {
		time.Sleep(r.opts.Policy.PostRoll)
	}

	r.mu.Lock()
	capture := r.capture
	watchStop := r.watchStop
	r.capture = nil
	r.watchStop = nil
	r.mu.Unlock()

	if watchStop != nil {
		close(watchStop)
	}
	if capture != nil {
		joined := make(chan struct{})
		go func() {
			capture.Stop()
			capture.ClearCallback()
			capture.Close()
			close(joined)
		}()
		select {
		case <-joined:
		case <-time.After(captureJoinTimeout):
			log.Warnf("session %s: capture did not stop within %s, abandoning stream", sess.id, captureJoinTimeout)
		}
	}
	sess.closeInput()

	audioLen := sess.audioLen()
	log.SessionEnd(sess.id, audioLen.Seconds())

	if cancelled {
		r.discard(sess, "cancelled")
		return
	}

	r.opts.Listener.RecordingStopped(sess.id, audioLen)

	if sess.frames() < sess.sampleRate/10 {
		r.discard(sess, "too short")
		return
	}
	peak, rms := sess.peak(), sess.rms()
	log.Debugf("session %s: peak=%.4f rms=%.4f", sess.id, peak, rms)
	if peak < silencePeak {
		r.discard(sess, "silent")
		return
	}

	samples := sess.take()

	if r.opts.SaveAudio && r.opts.AudioDir != "" {
		r.saveWAV(sess, samples)
	}

	r.mu.Lock()
	r.state = Transcribing
	r.mu.Unlock()

	start := time.Now()
	result, err := r.opts.Transcriber.Transcribe(context.Background(), samples, sess.sampleRate)
	if err != nil {
		log.Errorf("session %s: transcription failed: %v", sess.id, err)
		r.opts.Listener.TranscriptionFailed(sess.id, err)
		return
	}
	log.TranscriptionMetrics(log.Metrics{
		AudioLengthS: audioLen.Seconds(),
		TotalTimeMs:  float64(time.Since(start).Milliseconds()),
	}, r.opts.Transcriber.Name(), sess.id)

	text := strings.TrimSpace(result.Text)
	if text == "" {
		r.discard(sess, "no speech")
		return
	}

	if r.opts.SaveText && r.opts.TextDir != "" {
		r.saveText(sess, text)
	}

	outcome := r.opts.Deliverer.Deliver(text)
	if !outcome.Succeeded() {
		log.Errorf("session %s: delivery failed: %v", sess.id, outcome.Err)
		r.opts.Listener.TranscriptionFailed(sess.id, outcome.Err)
		return
	}
	log.TranscriptionText(text)
	r.opts.Listener.TranscriptionDone(sess.id, text, outcome.Strategy)
}

func (r *Recorder) discard(sess *session, reason string) {
	log.Infof("session %s: discarded (%s)", sess.id, reason)
	r.opts.Listener.RecordingDiscarded(sess.id, reason)
}

func (r *Recorder) saveWAV(sess *session, samples []float32) {
	if err := os.MkdirAll(r.opts.AudioDir, 0o755); err != nil {
		log.Warnf("creating audio dir: %v", err)
		return
	}
	name := "recording_" + sess.startedAt.Format("20060102_150405") + ".wav"
	path := filepath.Join(r.opts.AudioDir, name)
	if err := audio.WriteWAV(path, samples, sess.sampleRate); err != nil {
		log.Warnf("saving recording: %v", err)
		return
	}
	log.Infof("session %s: saved %s", sess.id, path)
}

func (r *Recorder) saveText(sess *session, text string) {
	if err := os.MkdirAll(r.opts.TextDir, 0o755); err != nil {
		log.Warnf("creating transcript dir: %v", err)
		return
	}
	name := "transcription_" + sess.startedAt.Format("20060102_150405") + ".txt"
	path := filepath.Join(r.opts.TextDir, name)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		log.Warnf("saving transcript: %v", err)
		return
	}
	log.Infof("session %s: saved %s", sess.id, path)
}

func (r *Recorder) setIdle() {
	r.mu.Lock()
	r.state = Idle
	r.sess = nil
	r.mu.Unlock()
}
