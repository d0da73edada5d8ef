// Package backend is the HTTP client for the translation REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lingobot/internal/domain"
	"lingobot/internal/domain/entities"
	"lingobot/internal/ports/output"
)

var _ output.TranslationBackend = (*Client)(nil)

// Client talks to GET /api/languages and POST /api/translate under a base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client. A nil httpClient means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	TranslatedText *string `json:"translatedText"`
	Error          string  `json:"error"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Languages fetches the language catalog. A {"error": ...} body is returned
// as *domain.BackendError whatever the status code.
func (c *Client) Languages(ctx context.Context) ([]entities.LanguageOption, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/languages", nil)
	if err != nil {
		return nil, fmt.Errorf("build languages request: %w", err)
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var e errorResponse
		if err := json.Unmarshal(trimmed, &e); err != nil {
			return nil, fmt.Errorf("decode languages: %w", err)
		}
		if e.Error == "" {
			return nil, fmt.Errorf("decode languages: unexpected object")
		}
		return nil, domain.NewBackendError(e.Error)
	}

	var options []entities.LanguageOption
	if err := json.Unmarshal(trimmed, &options); err != nil {
		return nil, fmt.Errorf("decode languages: %w", err)
	}
	return options, nil
}

// Translate posts {text, target_lang} and returns translatedText.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	payload, err := json.Marshal(translateRequest{Text: text, TargetLang: targetLang})
	if err != nil {
		return "", fmt.Errorf("encode translate request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var resp translateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode translation: %w", err)
	}
	if resp.Error != "" {
		return "", domain.NewBackendError(resp.Error)
	}
	if resp.TranslatedText == nil {
		return "", fmt.Errorf("decode translation: missing translatedText")
	}
	return *resp.TranslatedText, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}
	return body, nil
}
