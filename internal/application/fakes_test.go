package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"lingobot/internal/domain/entities"
)

type translateCall struct {
	Text   string
	Target string
}

type fakeBackend struct {
	mu        sync.Mutex
	languages []entities.LanguageOption
	langErr   error
	langCalls int
	calls     []translateCall
	translate func(ctx context.Context, text, target string) (string, error)
}

func (b *fakeBackend) Languages(context.Context) ([]entities.LanguageOption, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.langCalls++
	return b.languages, b.langErr
}

func (b *fakeBackend) Translate(ctx context.Context, text, target string) (string, error) {
	b.mu.Lock()
	b.calls = append(b.calls, translateCall{Text: text, Target: target})
	fn := b.translate
	b.mu.Unlock()
	if fn == nil {
		return "[" + target + "] " + text, nil
	}
	return fn(ctx, text, target)
}

func (b *fakeBackend) Calls() []translateCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]translateCall(nil), b.calls...)
}

type fakeView struct {
	mu        sync.Mutex
	shown     [][]entities.LanguageOption
	messages  []entities.ChatMessage
	clearings int
}

func (v *fakeView) ShowLanguages(options []entities.LanguageOption) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shown = append(v.shown, options)
}

func (v *fakeView) AppendMessage(msg entities.ChatMessage) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages = append(v.messages, msg)
}

func (v *fakeView) ClearInput() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clearings++
}

func (v *fakeView) Messages() []entities.ChatMessage {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]entities.ChatMessage(nil), v.messages...)
}

func (v *fakeView) ByAuthor(author entities.Author) []entities.ChatMessage {
	var out []entities.ChatMessage
	for _, m := range v.Messages() {
		if m.Author == author {
			out = append(out, m)
		}
	}
	return out
}

type utterance struct {
	Text   string
	Locale string
}

type fakeSpeaker struct {
	mu     sync.Mutex
	spoken []utterance
}

func (s *fakeSpeaker) Speak(_ context.Context, text, locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = append(s.spoken, utterance{Text: text, Locale: locale})
}

func (s *fakeSpeaker) Spoken() []utterance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]utterance(nil), s.spoken...)
}

type fakeRecognizer struct {
	text   string
	err    error
	locale string
}

func (r *fakeRecognizer) Recognize(_ context.Context, _ entities.Recording, locale string) (string, error) {
	r.locale = locale
	return r.text, r.err
}

// keyT renders a message as its key followed by its template values.
type keyT struct{}

func (keyT) T(_, key string, data map[string]any) string {
	if len(data) == 0 {
		return key
	}
	names := make([]string, 0, len(data))
	for k := range data {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := []string{key}
	for _, k := range names {
		parts = append(parts, fmt.Sprint(data[k]))
	}
	return strings.Join(parts, " ")
}
