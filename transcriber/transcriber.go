package transcriber

import (
	"context"
	"fmt"
	"os"
)

// Result is immutable once produced.
type Result struct {
	Text     string
	Language string // detected language, may be empty
}

// Transcriber maps captured audio to text. Implementations may be slow
// (seconds) and are assumed synchronous and fallible.
type Transcriber interface {
	Name() string
	SetLanguage(lang string)
	GetLanguage() string
	Transcribe(ctx context.Context, samples []float32, sampleRate int) (Result, error)
}

// Config selects the transcription backend.
type Config struct {
	APIBase  string // OpenAI-compatible endpoint base; default Groq
	APIKey   string // taken from env when empty
	Model    string // model variant, e.g. "whisper-large-v3"
	Language string // optional language hint
}

func New(cfg Config) (Transcriber, error) {
	key := cfg.APIKey
	if key == "" {
		key = os.Getenv("VOICETYPE_API_KEY")
	}
	if key == "" {
		key = os.Getenv("GROQ_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("set VOICETYPE_API_KEY or GROQ_API_KEY environment variable")
	}

	t := NewOpenAI(cfg.APIBase, key, cfg.Model)
	if cfg.Language != "" {
		t.SetLanguage(cfg.Language)
	}
	return t, nil
}
