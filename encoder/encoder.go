package encoder

const (
	Channels      = 1
	BitsPerSample = 16
	BlockSize     = 4096
)

// EncodeFLAC compresses mono float32 samples into a FLAC stream suitable for
// upload to a transcription API.
func EncodeFLAC(samples []float32, sampleRate int) ([]byte, error) {
	enc, err := NewFlac(sampleRate)
	if err != nil {
		return nil, err
	}

	block := make([]int16, 0, BlockSize)
	for i := 0; i < len(samples); i += BlockSize {
		end := i + BlockSize
		if end > len(samples) {
			end = len(samples)
		}
		block = block[:0]
		for _, s := range samples[i:end] {
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			block = append(block, int16(s*32767))
		}
		if err := enc.EncodeBlock(block); err != nil {
			return nil, err
		}
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}
