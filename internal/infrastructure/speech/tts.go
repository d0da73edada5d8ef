package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"lingobot/internal/ports/output"
)

// DefaultTTSURL is Google Translate's speech endpoint. It answers with MP3.
const DefaultTTSURL = "https://translate.google.com/translate_tts"

// The endpoint rejects requests longer than this many characters.
const maxTTSChars = 200

var _ output.Synthesizer = (*GoogleTTS)(nil)

type GoogleTTS struct {
	endpoint string
	http     *http.Client
}

// NewGoogleTTS creates a synthesizer. Empty endpoint means DefaultTTSURL.
func NewGoogleTTS(endpoint string, httpClient *http.Client) *GoogleTTS {
	if endpoint == "" {
		endpoint = DefaultTTSURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GoogleTTS{endpoint: endpoint, http: httpClient}
}

// Synthesize returns MP3 audio for text. Long texts are requested in chunks
// whose MP3 streams are concatenated.
func (g *GoogleTTS) Synthesize(ctx context.Context, text, locale string) ([]byte, error) {
	chunks := splitText(text, maxTTSChars)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("tts: nothing to say")
	}

	var buf bytes.Buffer
	for i, chunk := range chunks {
		q := url.Values{}
		q.Set("ie", "UTF-8")
		q.Set("client", "tw-ob")
		q.Set("tl", locale)
		q.Set("q", chunk)
		q.Set("total", strconv.Itoa(len(chunks)))
		q.Set("idx", strconv.Itoa(i))
		q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("tts: build request: %w", err)
		}
		resp, err := g.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("tts: request: %w", err)
		}
		_, err = io.Copy(&buf, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("tts: status %d", resp.StatusCode)
		}
		if err != nil {
			return nil, fmt.Errorf("tts: read audio: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// splitText cuts text into pieces of at most limit runes, preferring to cut
// on whitespace.
func splitText(text string, limit int) []string {
	var chunks []string
	var cur []rune
	flush := func() {
		if s := strings.TrimSpace(string(cur)); s != "" {
			chunks = append(chunks, s)
		}
		cur = cur[:0]
	}

	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > limit {
			flush()
			chunks = append(chunks, string(w[:limit]))
			w = w[limit:]
		}
		if len(cur) > 0 && len(cur)+1+len(w) > limit {
			flush()
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, w...)
	}
	flush()
	return chunks
}
