package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"lingobot/internal/domain"
	"lingobot/internal/domain/entities"
	"lingobot/internal/ports/input"
	"lingobot/internal/ports/output"
	"lingobot/pkg/speechlocale"
)

// DefaultSourceLanguage is the language users are assumed to speak.
const DefaultSourceLanguage = "en"

var _ input.ConversationUseCase = (*Conversation)(nil)

// ConversationDeps are the collaborators shared by every session.
type ConversationDeps struct {
	Backend output.TranslationBackend
	// Recognizer is optional; without one speech capture is unavailable.
	Recognizer output.Recognizer
	T          output.T
}

// Conversation is one chat session: the language catalog it loaded, the
// current target language and the transcript rendered into its view.
//
// Errors returned by its methods have already been reported in the
// transcript, except ErrEmptyText, ErrRecognitionUnavailable,
// ErrRecognitionFailed and ErrMessageNotFound which the front-end reports
// its own way.
type Conversation struct {
	backend    output.TranslationBackend
	recognizer output.Recognizer
	tr         output.T
	view       output.View
	speaker    output.Speaker
	locale     string

	mu               sync.Mutex
	source           string
	selected         string
	catalog          []entities.LanguageOption
	catalogRequested bool

	// acceptMu keeps user entries and reply tickets in the same order.
	acceptMu sync.Mutex

	transcript *Transcript
	seq        *sequencer
}

// NewConversation creates a session rendering into view and reading replies
// through speaker. locale selects the language of system notices.
func NewConversation(deps ConversationDeps, view output.View, speaker output.Speaker, locale, sourceLanguage string) *Conversation {
	if sourceLanguage == "" {
		sourceLanguage = DefaultSourceLanguage
	}
	return &Conversation{
		backend:    deps.Backend,
		recognizer: deps.Recognizer,
		tr:         deps.T,
		view:       view,
		speaker:    speaker,
		locale:     locale,
		source:     sourceLanguage,
		transcript: NewTranscript(),
		seq:        newSequencer(),
	}
}

// LoadCatalog fetches the supported languages and populates the view. Only
// the first call per session does anything; a failure is not retried.
func (c *Conversation) LoadCatalog(ctx context.Context) error {
	c.mu.Lock()
	if c.catalogRequested {
		c.mu.Unlock()
		return nil
	}
	c.catalogRequested = true
	c.mu.Unlock()

	options, err := c.backend.Languages(ctx)
	if err != nil {
		log.Printf("❌ Erreur lors de la récupération des langues: %v", err)
		c.notify("catalog.error", map[string]any{"Error": domain.UserMessage(err)})
		return fmt.Errorf("load catalog: %w", err)
	}

	c.mu.Lock()
	c.catalog = options
	c.mu.Unlock()

	c.view.ShowLanguages(options)
	return nil
}

// Catalog returns the languages loaded for this session.
func (c *Conversation) Catalog() []entities.LanguageOption {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.LanguageOption, len(c.catalog))
	copy(out, c.catalog)
	return out
}

// SelectLanguage sets the target language. The code must belong to the
// loaded catalog.
func (c *Conversation) SelectLanguage(_ context.Context, code string) error {
	code = strings.TrimSpace(code)

	c.mu.Lock()
	opt, ok := entities.FindLanguage(c.catalog, code)
	if ok {
		c.selected = opt.Code
	}
	c.mu.Unlock()

	if !ok {
		c.notify("language.unknown", map[string]any{"Code": code})
		return fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, code)
	}
	c.notify("language.selected", map[string]any{"Name": opt.Name})
	return nil
}

func (c *Conversation) SelectedLanguage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

func (c *Conversation) SourceLanguage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

// Accept records text as a user message and reserves its reply's place in
// the transcript. The returned deliver step translates it and must be called
// exactly once; replies render in the order their texts were accepted,
// whatever order the deliver steps finish in.
func (c *Conversation) Accept(text string) (deliver func(context.Context) error, err error) {
	target := c.SelectedLanguage()
	if target == "" {
		c.notify("language.required", nil)
		return nil, domain.ErrLanguageNotSelected
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	c.acceptMu.Lock()
	c.view.AppendMessage(c.transcript.Append(entities.AuthorUser, text))
	c.view.ClearInput()
	ticket := c.seq.Reserve()
	c.acceptMu.Unlock()

	return func(ctx context.Context) error {
		translated, err := c.backend.Translate(ctx, text, target)
		c.seq.Complete(ticket, func() {
			if err != nil {
				log.Printf("❌ Erreur lors de la traduction vers %s: %v", target, err)
				c.notify("translate.error", map[string]any{"Error": domain.UserMessage(err)})
				return
			}
			msg := c.transcript.Append(entities.AuthorAssistant, translated)
			c.view.AppendMessage(msg)
			c.speak(ctx, msg.Text)
		})
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}
		return nil
	}, nil
}

// Send accepts text and translates it right away.
func (c *Conversation) Send(ctx context.Context, text string) error {
	deliver, err := c.Accept(text)
	if err != nil {
		return err
	}
	return deliver(ctx)
}

// CanCaptureSpeech reports whether a recognizer is configured.
func (c *Conversation) CanCaptureSpeech() bool {
	return c.recognizer != nil
}

// CaptureSpeech transcribes a single clip spoken in the source language and
// sends the result. Recognition failures are only logged.
func (c *Conversation) CaptureSpeech(ctx context.Context, clip entities.Recording) error {
	if c.recognizer == nil {
		return domain.ErrRecognitionUnavailable
	}
	text, err := c.recognizer.Recognize(ctx, clip, speechlocale.Resolve(c.SourceLanguage()))
	if err != nil {
		log.Printf("⚠️ Erreur de reconnaissance vocale: %v", err)
		return fmt.Errorf("%w: %w", domain.ErrRecognitionFailed, err)
	}
	return c.Send(ctx, text)
}

// ReadAloud speaks an assistant message again.
func (c *Conversation) ReadAloud(ctx context.Context, messageID string) error {
	msg, err := c.transcript.Find(messageID)
	if err != nil {
		return err
	}
	if !msg.Speakable() {
		return domain.ErrMessageNotFound
	}
	c.speak(ctx, msg.Text)
	return nil
}

func (c *Conversation) speak(ctx context.Context, text string) {
	if c.speaker == nil {
		return
	}
	c.speaker.Speak(ctx, text, speechlocale.Resolve(c.SelectedLanguage()))
}

func (c *Conversation) notify(key string, data map[string]any) {
	c.view.AppendMessage(c.transcript.Append(entities.AuthorSystem, c.tr.T(c.locale, key, data)))
}
