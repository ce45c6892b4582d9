package encoder

import (
	"math"
	"testing"
)

func sineSamples(n int, freq float64, rate int) []float32 {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(0.4 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return samples
}

func TestEncodeFLAC(t *testing.T) {
	samples := sineSamples(16000, 440, 16000) // 1s of tone

	data, err := EncodeFLAC(samples, 16000)
	if err != nil {
		t.Fatalf("EncodeFLAC: %v", err)
	}

	if len(data) < 4 || string(data[:4]) != "fLaC" {
		t.Fatal("output does not start with FLAC magic")
	}

	rawSize := len(samples) * 2
	if len(data) >= rawSize {
		t.Errorf("FLAC output (%d bytes) not smaller than raw PCM (%d bytes)", len(data), rawSize)
	}
}

func TestEncodeFLACEmpty(t *testing.T) {
	data, err := EncodeFLAC(nil, 16000)
	if err != nil {
		t.Fatalf("EncodeFLAC empty: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty FLAC output (at least header)")
	}
}

func TestEncodeFLACClipsOutOfRange(t *testing.T) {
	if _, err := EncodeFLAC([]float32{1.5, -1.5, 0.25}, 16000); err != nil {
		t.Fatalf("EncodeFLAC with out-of-range samples: %v", err)
	}
}

func TestFlacEncoderPartialBlock(t *testing.T) {
	enc, err := NewFlac(48000)
	if err != nil {
		t.Fatalf("NewFlac: %v", err)
	}

	partial := make([]int16, BlockSize/4)
	for i := range partial {
		partial[i] = int16(i % 1000)
	}

	if err := enc.EncodeBlock(partial); err != nil {
		t.Fatalf("EncodeBlock partial: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if enc.TotalFrames() != uint64(len(partial)) {
		t.Errorf("TotalFrames = %d, want %d", enc.TotalFrames(), len(partial))
	}
}
