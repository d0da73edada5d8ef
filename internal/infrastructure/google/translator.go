// Package google translates text through Google's public web translation
// endpoint, the one used by browser extensions.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"lingobot/internal/domain"
	"lingobot/internal/domain/entities"
	"lingobot/internal/ports/output"
)

// DefaultBaseURL is the public endpoint host.
const DefaultBaseURL = "https://translate.googleapis.com"

var _ output.TextTranslator = (*Translator)(nil)

type Translator struct {
	baseURL string
	http    *http.Client
}

// NewTranslator creates a Translator. Empty baseURL means DefaultBaseURL and
// a nil httpClient means http.DefaultClient.
func NewTranslator(baseURL string, httpClient *http.Client) *Translator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Translator{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (t *Translator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	target, ok := canonicalCode(targetLang)
	if !ok {
		return "", domain.UnsupportedLanguage(targetLang)
	}
	source := "auto"
	if sourceLang != "" && !strings.EqualFold(sourceLang, "auto") {
		if source, ok = canonicalCode(sourceLang); !ok {
			return "", domain.UnsupportedLanguage(sourceLang)
		}
	}
	if source == target {
		return text, nil
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/translate_a/single?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("google: build request: %w", err)
	}
	resp, err := t.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("google: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("google: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google: status %d", resp.StatusCode)
	}
	return parseSentences(body)
}

func (t *Translator) Languages(context.Context) ([]entities.LanguageOption, error) {
	return catalog(), nil
}

// parseSentences extracts the translated text from a response shaped like
// [[["Hola","Hello",null,null,10],...],null,"en",...].
func parseSentences(body []byte) (string, error) {
	var root []json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return "", fmt.Errorf("google: decode response: %w", err)
	}
	if len(root) == 0 {
		return "", fmt.Errorf("google: empty response")
	}

	var sentences [][]json.RawMessage
	if err := json.Unmarshal(root[0], &sentences); err != nil {
		return "", fmt.Errorf("google: decode sentences: %w", err)
	}

	var b strings.Builder
	for _, s := range sentences {
		if len(s) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(s[0], &part); err != nil {
			continue
		}
		b.WriteString(part)
	}
	return b.String(), nil
}
