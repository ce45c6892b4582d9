package recorder

import (
	"encoding/binary"
	"fmt"
	"sync"

	webrtcvad "github.com/maxhawkins/go-webrtcvad"
)

const (
	vadMode     = 3
	vadFrameMs  = 20
	vadDebounce = 3 // consecutive speech frames to confirm voice

	// fraction of frames in a tick that must be speech to count as "speaking"
	speechThreshold = 0.10
)

// vadRateSupported reports whether the WebRTC detector accepts the rate.
func vadRateSupported(rate int) bool {
	switch rate {
	case 8000, 16000, 32000, 48000:
		return true
	}
	return false
}

// voiceDetector frames float32 capture blocks into 20ms s16 chunks and
// runs them through the WebRTC voice activity detector.
type voiceDetector struct {
	vad        *webrtcvad.VAD
	sampleRate int
	frameBytes int

	mu           sync.Mutex
	buf          []byte
	speechRun    int
	detected     bool
	totalFrames  int
	speechFrames int
	tickTotal    int
	tickSpeech   int
}

func newVoiceDetector(sampleRate int) (*voiceDetector, error) {
	if !vadRateSupported(sampleRate) {
		return nil, fmt.Errorf("unsupported VAD sample rate %d", sampleRate)
	}
	v, err := webrtcvad.New()
	if err != nil {
		return nil, err
	}
	if err := v.SetMode(vadMode); err != nil {
		return nil, err
	}
	return &voiceDetector{
		vad:        v,
		sampleRate: sampleRate,
		frameBytes: sampleRate * vadFrameMs / 1000 * 2,
	}, nil
}

func (d *voiceDetector) Process(samples []float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		d.buf = binary.LittleEndian.AppendUint16(d.buf, uint16(int16(s*32767)))
	}

	for len(d.buf) >= d.frameBytes {
		frame := d.buf[:d.frameBytes]
		d.buf = d.buf[d.frameBytes:]

		active, err := d.vad.Process(d.sampleRate, frame)
		if err != nil {
			continue
		}
		d.totalFrames++
		if active {
			d.speechFrames++
			d.speechRun++
			if d.speechRun >= vadDebounce {
				d.detected = true
			}
		} else {
			d.speechRun = 0
		}
	}
}

// VoiceDetected reports whether confirmed speech occurred at any point.
func (d *voiceDetector) VoiceDetected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detected
}

// HasSpeechTick reports whether the frames since the previous call carry
// enough speech to count the interval as speaking.
func (d *voiceDetector) HasSpeechTick() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.totalFrames - d.tickTotal
	s := d.speechFrames - d.tickSpeech
	d.tickTotal, d.tickSpeech = d.totalFrames, d.speechFrames
	if t == 0 {
		return false
	}
	return float64(s)/float64(t) >= speechThreshold
}
