package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"voicetype/encoder"
)

const (
	defaultAPIBase = "https://api.groq.com/openai/v1"
	defaultModel   = "whisper-large-v3"
)

// OpenAI talks to any OpenAI-compatible /audio/transcriptions endpoint
// (Groq, OpenAI, or a local whisper server).
type OpenAI struct {
	apiURL string
	apiKey string
	model  string
	lang   string
	client *http.Client
}

func NewOpenAI(apiBase, apiKey, model string) *OpenAI {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	if model == "" {
		model = defaultModel
	}
	return &OpenAI{
		apiURL: apiBase + "/audio/transcriptions",
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (o *OpenAI) Name() string            { return "openai" }
func (o *OpenAI) SetLanguage(lang string) { o.lang = lang }
func (o *OpenAI) GetLanguage() string     { return o.lang }

type transcriptionResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (o *OpenAI) Transcribe(ctx context.Context, samples []float32, sampleRate int) (Result, error) {
	audioData, err := encoder.EncodeFLAC(samples, sampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("encoding audio: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio.flac")
	if err != nil {
		return Result{}, err
	}
	if _, err := part.Write(audioData); err != nil {
		return Result{}, err
	}

	writer.WriteField("model", o.model)
	writer.WriteField("response_format", "verbose_json")
	writer.WriteField("temperature", "0")
	if o.lang != "" {
		writer.WriteField("language", o.lang)
	}
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, "POST", o.apiURL, &body)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := o.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("reading transcription response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("transcription API error %d: %s", resp.StatusCode, string(respBody))
	}

	var tResp transcriptionResponse
	if err := json.Unmarshal(respBody, &tResp); err != nil {
		return Result{}, fmt.Errorf("transcription response parse error: %w", err)
	}

	return Result{Text: tResp.Text, Language: tResp.Language}, nil
}
