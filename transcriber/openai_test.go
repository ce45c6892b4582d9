package transcriber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAITranscribe(t *testing.T) {
	var gotModel, gotLang, gotAuth string
	var gotFile []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			t.Fatalf("parsing multipart: %v", err)
		}
		gotModel = r.FormValue("model")
		gotLang = r.FormValue("language")
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		gotFile = make([]byte, 4)
		f.Read(gotFile)
		json.NewEncoder(w).Encode(map[string]string{
			"text":     "hello world",
			"language": "en",
		})
	}))
	defer srv.Close()

	tr := NewOpenAI(srv.URL, "test-key", "whisper-large-v3")
	tr.SetLanguage("en")

	samples := make([]float32, 1600)
	for i := range samples {
		samples[i] = float32(i%100) / 100
	}

	res, err := tr.Transcribe(context.Background(), samples, 16000)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if res.Text != "hello world" {
		t.Errorf("text = %q", res.Text)
	}
	if res.Language != "en" {
		t.Errorf("language = %q", res.Language)
	}
	if gotModel != "whisper-large-v3" {
		t.Errorf("model = %q", gotModel)
	}
	if gotLang != "en" {
		t.Errorf("language field = %q", gotLang)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth = %q", gotAuth)
	}
	if string(gotFile) != "fLaC" {
		t.Errorf("uploaded file does not start with FLAC magic: %q", gotFile)
	}
}

func TestOpenAITranscribeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tr := NewOpenAI(srv.URL, "k", "")
	_, err := tr.Transcribe(context.Background(), []float32{0, 0.1}, 16000)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error %q does not mention status code", err)
	}
}

func TestNewRequiresKey(t *testing.T) {
	t.Setenv("VOICETYPE_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without API key")
	}

	t.Setenv("GROQ_API_KEY", "abc")
	tr, err := New(Config{Language: "de"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.GetLanguage() != "de" {
		t.Errorf("language = %q, want de", tr.GetLanguage())
	}
}
