package recorder

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// silencePeak is the absolute-amplitude floor below which a whole clip
// is treated as silence and never transcribed.
const silencePeak = 0.001

// session accumulates the samples of one push-to-talk capture.
type session struct {
	id         string
	startedAt  time.Time
	sampleRate int

	mu      sync.Mutex
	samples []float32
	closed  bool

	done chan struct{}
}

func newSession(sampleRate int) *session {
	return &session{
		id:         uuid.NewString()[:8],
		startedAt:  time.Now(),
		sampleRate: sampleRate,
		done:       make(chan struct{}),
	}
}

// append stores one capture block. Blocks arriving after closeInput are
// dropped; the backend may still flush a callback racing with stop.
func (s *session) append(block []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.samples = append(s.samples, block...)
}

func (s *session) closeInput() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// take returns the accumulated samples. The session keeps no copy.
func (s *session) take() []float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.samples
	s.samples = nil
	return out
}

func (s *session) frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.samples)
}

func (s *session) audioLen() time.Duration {
	return time.Duration(float64(s.frames()) / float64(s.sampleRate) * float64(time.Second))
}

// peak returns the largest absolute amplitude seen so far.
func (s *session) peak() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var p float64
	for _, v := range s.samples {
		if a := math.Abs(float64(v)); a > p {
			p = a
		}
	}
	return p
}

// rms returns the root-mean-square level of the whole clip.
func (s *session) rms() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.samples {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(s.samples)))
}
