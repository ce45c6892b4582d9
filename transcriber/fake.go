package transcriber

import (
	"context"
	"sync"
	"time"
)

// Fake returns canned results and records what it was fed.
type Fake struct {
	Text  string
	Lang  string
	Err   error
	Delay time.Duration // simulated transcription latency

	mu        sync.Mutex
	lang      string
	calls     int
	lastCount int
	lastRate  int
}

func NewFake(text string, err error) *Fake {
	return &Fake{Text: text, Err: err}
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) SetLanguage(lang string) {
	f.mu.Lock()
	f.lang = lang
	f.mu.Unlock()
}

func (f *Fake) GetLanguage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lang
}

func (f *Fake) Transcribe(ctx context.Context, samples []float32, sampleRate int) (Result, error) {
	f.mu.Lock()
	f.calls++
	f.lastCount = len(samples)
	f.lastRate = sampleRate
	f.mu.Unlock()

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	if f.Err != nil {
		return Result{}, f.Err
	}
	return Result{Text: f.Text, Language: f.Lang}, nil
}

func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// LastSamples reports the sample count and rate of the most recent call.
func (f *Fake) LastSamples() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastCount, f.lastRate
}
