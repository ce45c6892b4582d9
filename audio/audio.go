package audio

import "strings"

// DefaultSampleRate is the hard fallback when no device reports a rate.
const DefaultSampleRate = 16000

// BlockDuration is the capture block cadence. Backends are configured to
// deliver roughly one callback per block.
const BlockDurationMs = 100

// DataCallback receives one block of mono float32 samples.
type DataCallback func(samples []float32, frameCount uint32)

type CaptureConfig struct {
	SampleRate uint32
	Channels   uint32
}

type DeviceInfo struct {
	ID                string // opaque platform-specific identifier
	Index             int    // position in the enumeration order
	Name              string
	MaxInputChannels  int
	DefaultSampleRate int
	IsDefault         bool
}

type Context interface {
	Devices() ([]DeviceInfo, error)
	NewCapture(device *DeviceInfo, config CaptureConfig) (Capture, error)
	Close()
}

// Capture is a microphone stream. Stop is safe to call from a goroutine
// other than the one receiving callbacks; after Stop returns no further
// callbacks are invoked.
type Capture interface {
	Start() error
	Stop()
	Close()
	SetCallback(cb DataCallback)
	ClearCallback()
	DeviceName() string
}

var builtinKeywords = []string{"macbook"}

// continuity-camera mics masquerade as inputs; never auto-select them
const iphoneKeyword = "iphone"

// IsBuiltIn reports whether a device name looks like the laptop's
// built-in microphone.
func IsBuiltIn(name string) bool {
	lower := strings.ToLower(name)
	if strings.Contains(lower, iphoneKeyword) {
		return false
	}
	for _, kw := range builtinKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return strings.Contains(lower, "macbook pro microphone")
}

// IsContinuityMic reports whether a device name matches an iPhone
// continuity-camera microphone.
func IsContinuityMic(name string) bool {
	return strings.Contains(strings.ToLower(name), iphoneKeyword)
}
