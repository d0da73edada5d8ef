package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"lingobot/internal/domain/entities"
	"lingobot/internal/ports/output"
)

const DefaultSTTModel = "whisper-1"

var _ output.Recognizer = (*WhisperRecognizer)(nil)

// WhisperRecognizer sends clips to an OpenAI-compatible
// /v1/audio/transcriptions endpoint (OpenAI, whisper.cpp server, faster-whisper).
type WhisperRecognizer struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

func NewWhisperRecognizer(endpoint, apiKey, model string, httpClient *http.Client) *WhisperRecognizer {
	if model == "" {
		model = DefaultSTTModel
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &WhisperRecognizer{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		http:     httpClient,
	}
}

type transcription struct {
	Text string `json:"text"`
}

// Recognize returns the first transcription of clip.
func (w *WhisperRecognizer) Recognize(ctx context.Context, clip entities.Recording, locale string) (string, error) {
	if len(clip.Data) == 0 {
		return "", fmt.Errorf("stt: empty recording")
	}
	filename := clip.Filename
	if filename == "" {
		filename = "speech.ogg"
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("stt: build form: %w", err)
	}
	if _, err := fw.Write(clip.Data); err != nil {
		return "", fmt.Errorf("stt: build form: %w", err)
	}
	fields := map[string]string{
		"model":           w.model,
		"response_format": "json",
	}
	if lang := baseLanguage(locale); lang != "" {
		fields["language"] = lang
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return "", fmt.Errorf("stt: build form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("stt: build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("stt: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if w.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+w.apiKey)
	}

	resp, err := w.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("stt: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("stt: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stt: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out transcription
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("stt: decode response: %w", err)
	}
	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", fmt.Errorf("stt: no speech recognized")
	}
	return text, nil
}

// baseLanguage turns "en-US" into the ISO 639-1 code whisper expects.
func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}
