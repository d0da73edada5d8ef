package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"lingobot/internal/application"
	"lingobot/internal/domain"
	"lingobot/internal/domain/entities"
	pkgdiscord "lingobot/pkg/discord"
)

const (
	commandTimeout = 2 * time.Minute
	maxClipBytes   = 25 << 20
	maxChoices     = 25
)

var errClipTooLarge = errors.New("clip too large")

// HandleTranslate starts a fresh conversation in the channel.
func (h *Handler) HandleTranslate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	view := newChannelView(s, i.ChannelID, h.tr, locale)
	conv := h.sessions.Open(i.ChannelID, view, h.voiceFor(i.ChannelID, view), locale)
	log.Printf("💬 Nouvelle conversation dans %s (%d active(s))", i.ChannelID, h.sessions.Len())

	respondEphemeral(s, i.Interaction, h.tr.T(locale, "conversation.started", nil))

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		_ = conv.LoadCatalog(ctx)
	}()
}

// HandleSay translates the text option. The text is accepted before the
// interaction loop moves on, so replies follow the order of the commands.
func (h *Handler) HandleSay(s *discordgo.Session, i *discordgo.InteractionCreate) {
	text, _ := pkgdiscord.StringOption(i.ApplicationCommandData(), "text")
	h.withConversation(s, i, func(conv *application.Conversation) (task, error) {
		deliver, err := conv.Accept(text)
		return task(deliver), err
	})
}

// HandleSpeak transcribes the attached clip and translates it.
func (h *Handler) HandleSpeak(s *discordgo.Session, i *discordgo.InteractionCreate) {
	att := pkgdiscord.AttachmentOption(i.ApplicationCommandData(), "audio")
	h.withConversation(s, i, h.acceptClip(att))
}

// acceptClip refuses the command before any download when the conversation
// cannot recognize speech.
func (h *Handler) acceptClip(att *discordgo.MessageAttachment) func(*application.Conversation) (task, error) {
	return func(conv *application.Conversation) (task, error) {
		if !conv.CanCaptureSpeech() {
			return nil, domain.ErrRecognitionUnavailable
		}
		return func(ctx context.Context) error {
			var clip entities.Recording
			if att != nil {
				var err error
				if clip, err = h.download(ctx, att); err != nil {
					log.Printf("⚠️ Erreur lors du téléchargement de %s: %v", att.Filename, err)
					return fmt.Errorf("%w: %w", domain.ErrRecognitionFailed, err)
				}
			}
			return conv.CaptureSpeech(ctx, clip)
		}, nil
	}
}

// HandleLanguage selects the target language by code.
func (h *Handler) HandleLanguage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	code, _ := pkgdiscord.StringOption(i.ApplicationCommandData(), "code")
	h.withConversation(s, i, func(conv *application.Conversation) (task, error) {
		return nil, conv.SelectLanguage(context.Background(), code)
	})
}

// HandleLanguageAutocomplete suggests catalog entries for /language.
func (h *Handler) HandleLanguageAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var options []entities.LanguageOption
	if conv, ok := h.sessions.Get(i.ChannelID); ok {
		query, _ := pkgdiscord.StringOption(i.ApplicationCommandData(), "code")
		options = pkgdiscord.FilterLanguages(conv.Catalog(), query, maxChoices)
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: pkgdiscord.LanguageChoices(options)},
	})
	if err != nil {
		log.Printf("⚠️ Erreur lors de l'autocomplétion: %v", err)
	}
}

// task is the part of a command that runs off the interaction loop.
type task func(ctx context.Context) error

// withConversation runs accept against the channel's conversation behind a
// deferred ephemeral reply, then the task it returns in the background.
// Results land in the channel; the reply only carries notices the
// transcript does not show.
func (h *Handler) withConversation(s *discordgo.Session, i *discordgo.InteractionCreate, accept func(*application.Conversation) (task, error)) {
	locale := string(i.Locale)
	conv, ok := h.sessions.Get(i.ChannelID)
	if !ok {
		respondEphemeral(s, i.Interaction, h.tr.T(locale, "conversation.missing", nil))
		return
	}
	if !deferEphemeral(s, i.Interaction) {
		return
	}

	run, err := accept(conv)
	if err != nil || run == nil {
		finishDeferred(s, i.Interaction, h.notice(locale, err))
		return
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		finishDeferred(s, i.Interaction, h.notice(locale, run(ctx)))
	}()
}

func (h *Handler) notice(locale string, err error) string {
	if key := pkgdiscord.NoticeKey(err); key != "" {
		return h.tr.T(locale, key, nil)
	}
	return ""
}

func (h *Handler) download(ctx context.Context, att *discordgo.MessageAttachment) (entities.Recording, error) {
	if att.Size > maxClipBytes {
		return entities.Recording{}, fmt.Errorf("%w: %d bytes", errClipTooLarge, att.Size)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, att.URL, nil)
	if err != nil {
		return entities.Recording{}, err
	}
	resp, err := h.http.Do(req)
	if err != nil {
		return entities.Recording{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return entities.Recording{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxClipBytes+1))
	if err != nil {
		return entities.Recording{}, err
	}
	if len(data) > maxClipBytes {
		return entities.Recording{}, errClipTooLarge
	}
	return entities.Recording{
		Filename:    att.Filename,
		ContentType: att.ContentType,
		Data:        data,
	}, nil
}
