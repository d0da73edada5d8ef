package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"

	"lingobot/internal/application"
	"lingobot/internal/domain"
	"lingobot/internal/domain/entities"
	"lingobot/internal/infrastructure/speech"
	pkgdiscord "lingobot/pkg/discord"
)

type fakeMessenger struct {
	mu   sync.Mutex
	sent []*discordgo.MessageSend
	err  error
}

func (m *fakeMessenger) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, data)
	if m.err != nil {
		return nil, m.err
	}
	return &discordgo.Message{ChannelID: channelID, Content: data.Content}, nil
}

func (m *fakeMessenger) Sent() []*discordgo.MessageSend {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*discordgo.MessageSend(nil), m.sent...)
}

type keyT struct{}

func (keyT) T(_, key string, data map[string]any) string {
	if len(data) == 0 {
		return key
	}
	return fmt.Sprintf("%s%v", key, data)
}

func TestChannelView_AppendMessage(t *testing.T) {
	t.Parallel()

	out := &fakeMessenger{}
	v := newChannelView(out, "chan", keyT{}, "en")

	v.AppendMessage(entities.ChatMessage{ID: "u1", Author: entities.AuthorUser, Text: "Hi @everyone"})
	v.AppendMessage(entities.ChatMessage{ID: "a1", Author: entities.AuthorAssistant, Text: "Hola *todos*"})

	sent := out.Sent()
	if len(sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(sent))
	}
	if sent[0].Content != "👤 Hi @\u200beveryone" {
		t.Errorf("unexpected user content %q", sent[0].Content)
	}
	if len(sent[0].Components) != 0 {
		t.Error("user messages have no read-aloud control")
	}
	if sent[0].AllowedMentions == nil || len(sent[0].AllowedMentions.Parse) != 0 {
		t.Error("mentions must be suppressed")
	}

	if sent[1].Content != `🤖 Hola \*todos\*` {
		t.Errorf("unexpected assistant content %q", sent[1].Content)
	}
	row, ok := sent[1].Components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("expected an action row, got %#v", sent[1].Components)
	}
	button := row.Components[0].(discordgo.Button)
	if id, _ := pkgdiscord.ReadAloudTarget(button.CustomID); id != "a1" {
		t.Errorf("read-aloud control must reference the message, got %q", button.CustomID)
	}
}

func TestChannelView_ShowLanguages(t *testing.T) {
	t.Parallel()

	out := &fakeMessenger{}
	v := newChannelView(out, "chan", keyT{}, "en")

	options := make([]entities.LanguageOption, 130)
	for i := range options {
		options[i] = entities.LanguageOption{Code: fmt.Sprintf("l%d", i), Name: fmt.Sprintf("L%03d", i)}
	}
	v.ShowLanguages(options)

	sent := out.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sent))
	}
	if len(sent[0].Components) != 5 {
		t.Errorf("expected 5 menus, got %d", len(sent[0].Components))
	}
	if !strings.Contains(sent[0].Content, "catalog.more") || !strings.Contains(sent[0].Content, "Count:5") {
		t.Errorf("expected an overflow hint, got %q", sent[0].Content)
	}
}

func TestChannelView_PostErrorIsLogged(t *testing.T) {
	t.Parallel()

	out := &fakeMessenger{err: errors.New("missing access")}
	v := newChannelView(out, "chan", keyT{}, "en")

	v.AppendMessage(entities.ChatMessage{Author: entities.AuthorSystem, Text: "x"})
	if len(out.Sent()) != 1 {
		t.Error("expected one attempt")
	}
}

func TestChannelView_Play(t *testing.T) {
	t.Parallel()

	out := &fakeMessenger{}
	v := newChannelView(out, "chan", keyT{}, "en")

	if err := v.Play(context.Background(), speech.Utterance{Text: "Hola", Locale: "es-ES", Audio: []byte("ID3")}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	sent := out.Sent()
	if len(sent) != 1 || len(sent[0].Files) != 1 {
		t.Fatalf("expected one attachment, got %+v", sent)
	}
	f := sent[0].Files[0]
	if f.Name != "es-ES.mp3" || f.ContentType != "audio/mpeg" {
		t.Errorf("unexpected file %s (%s)", f.Name, f.ContentType)
	}
	data, _ := io.ReadAll(f.Reader)
	if string(data) != "ID3" {
		t.Errorf("unexpected audio %q", data)
	}
}

func TestHandler_Download(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("OggS"))
	}))
	t.Cleanup(srv.Close)

	h := NewHandler(application.NewSessions(application.ConversationDeps{T: keyT{}}, ""), keyT{}, nil, srv.Client())

	clip, err := h.download(context.Background(), &discordgo.MessageAttachment{
		URL: srv.URL + "/clip.ogg", Filename: "clip.ogg", ContentType: "audio/ogg", Size: 4,
	})
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if clip.Filename != "clip.ogg" || clip.ContentType != "audio/ogg" || string(clip.Data) != "OggS" {
		t.Errorf("unexpected clip %+v", clip)
	}

	if _, err := h.download(context.Background(), &discordgo.MessageAttachment{URL: srv.URL + "/missing"}); err == nil {
		t.Error("expected an error for a missing attachment")
	}
	if _, err := h.download(context.Background(), &discordgo.MessageAttachment{URL: srv.URL, Size: maxClipBytes + 1}); !errors.Is(err, errClipTooLarge) {
		t.Errorf("expected errClipTooLarge, got %v", err)
	}
}

func TestHandler_VoicePerChannel(t *testing.T) {
	t.Parallel()

	h := NewHandler(application.NewSessions(application.ConversationDeps{T: keyT{}}, ""), keyT{}, nil, nil)
	if sp := h.voiceFor("chan", newChannelView(&fakeMessenger{}, "chan", keyT{}, "en")); sp != nil {
		t.Error("without a synthesizer replies are not spoken")
	}

	synth := synthFunc(func(context.Context, string, string) ([]byte, error) { return []byte("mp3"), nil })
	h = NewHandler(application.NewSessions(application.ConversationDeps{T: keyT{}}, ""), keyT{}, synth, nil)
	out := &fakeMessenger{}
	sp := h.voiceFor("chan", newChannelView(out, "chan", keyT{}, "en"))
	if sp == nil {
		t.Fatal("expected a speaker")
	}
	sp.Speak(context.Background(), "Hola", "es-ES")
	sp.(*speech.Voice).Wait()
	h.Shutdown()
	if n := len(out.Sent()); n != 1 {
		t.Errorf("expected 1 audio post, got %d", n)
	}
}

type synthFunc func(ctx context.Context, text, locale string) ([]byte, error)

func (f synthFunc) Synthesize(ctx context.Context, text, locale string) ([]byte, error) {
	return f(ctx, text, locale)
}

type stubRecognizer struct{ clips chan entities.Recording }

func (r stubRecognizer) Recognize(_ context.Context, clip entities.Recording, _ string) (string, error) {
	r.clips <- clip
	return "good morning", nil
}

func TestHandler_AcceptClip(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		_, _ = w.Write([]byte("OggS"))
	}))
	t.Cleanup(srv.Close)
	downloads := func() int {
		mu.Lock()
		defer mu.Unlock()
		return hits
	}
	att := &discordgo.MessageAttachment{URL: srv.URL + "/clip.ogg", Filename: "clip.ogg", Size: 4}
	view := newChannelView(&fakeMessenger{}, "chan", keyT{}, "en")

	// Without a recognizer the command stops before downloading anything.
	h := NewHandler(application.NewSessions(application.ConversationDeps{T: keyT{}}, ""), keyT{}, nil, srv.Client())
	conv := h.sessions.Open("chan", view, nil, "en")
	run, err := h.acceptClip(att)(conv)
	if !errors.Is(err, domain.ErrRecognitionUnavailable) || run != nil {
		t.Fatalf("expected ErrRecognitionUnavailable, got %v", err)
	}
	if n := downloads(); n != 0 {
		t.Errorf("expected no download, got %d", n)
	}

	rec := stubRecognizer{clips: make(chan entities.Recording, 1)}
	h = NewHandler(application.NewSessions(application.ConversationDeps{Recognizer: rec, T: keyT{}}, ""), keyT{}, nil, srv.Client())
	conv = h.sessions.Open("chan", view, nil, "en")
	run, err = h.acceptClip(att)(conv)
	if err != nil || run == nil {
		t.Fatalf("expected a task, got %v", err)
	}
	if n := downloads(); n != 0 {
		t.Errorf("download must wait for the task, got %d", n)
	}

	// No language is selected, so the recognized text stops at Send.
	if err := run(context.Background()); !errors.Is(err, domain.ErrLanguageNotSelected) {
		t.Errorf("expected ErrLanguageNotSelected, got %v", err)
	}
	if clip := <-rec.clips; string(clip.Data) != "OggS" {
		t.Errorf("unexpected clip %q", clip.Data)
	}
	if n := downloads(); n != 1 {
		t.Errorf("expected 1 download, got %d", n)
	}
}
