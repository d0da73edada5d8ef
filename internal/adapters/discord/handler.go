package discord

import (
	"net/http"
	"sync"

	"lingobot/internal/application"
	"lingobot/internal/infrastructure/speech"
	"lingobot/internal/ports/output"
)

// Handler handles Discord interactions, one conversation per channel.
type Handler struct {
	sessions *application.Sessions
	tr       output.T
	synth    output.Synthesizer
	http     *http.Client

	mu     sync.Mutex
	voices map[string]*speech.Voice
	wg     sync.WaitGroup
}

// NewHandler creates a Handler.
func NewHandler(
	sessions *application.Sessions,
	tr output.T,
	synth output.Synthesizer,
	httpClient *http.Client,
) *Handler {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Handler{
		sessions: sessions,
		tr:       tr,
		synth:    synth,
		http:     httpClient,
		voices:   make(map[string]*speech.Voice),
	}
}

// voiceFor replaces the channel's voice, cancelling whatever the previous
// conversation was still reading.
func (h *Handler) voiceFor(channelID string, sink speech.Sink) output.Speaker {
	if h.synth == nil {
		return nil
	}
	v := speech.NewVoice(h.synth, sink)

	h.mu.Lock()
	if old, ok := h.voices[channelID]; ok {
		old.Stop()
	}
	h.voices[channelID] = v
	h.mu.Unlock()
	return v
}

// Shutdown waits for running commands, then stops every voice and waits for
// pending uploads to end.
func (h *Handler) Shutdown() {
	h.wg.Wait()

	h.mu.Lock()
	voices := make([]*speech.Voice, 0, len(h.voices))
	for _, v := range h.voices {
		v.Stop()
		voices = append(voices, v)
	}
	h.mu.Unlock()

	for _, v := range voices {
		v.Wait()
	}
}
