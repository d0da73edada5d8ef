package discord

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"lingobot/internal/domain/entities"
	"lingobot/internal/infrastructure/speech"
	"lingobot/internal/ports/output"
	pkgdiscord "lingobot/pkg/discord"
)

// messenger is the part of *discordgo.Session used to post into a channel.
type messenger interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var (
	_ output.View = (*channelView)(nil)
	_ speech.Sink = (*channelView)(nil)
)

// channelView renders a conversation as messages in a text channel.
type channelView struct {
	out       messenger
	channelID string
	tr        output.T
	locale    string
}

func newChannelView(out messenger, channelID string, tr output.T, locale string) *channelView {
	return &channelView{out: out, channelID: channelID, tr: tr, locale: locale}
}

func (v *channelView) ShowLanguages(options []entities.LanguageOption) {
	rows, overflow := pkgdiscord.LanguageMenus(options, v.tr.T(v.locale, "catalog.placeholder", nil))
	content := v.tr.T(v.locale, "catalog.prompt", nil)
	if overflow > 0 {
		content += "\n" + v.tr.T(v.locale, "catalog.more", map[string]any{"Count": overflow})
	}
	v.post(&discordgo.MessageSend{
		Content:         content,
		Components:      rows,
		AllowedMentions: pkgdiscord.NoMentions(),
	})
}

func (v *channelView) AppendMessage(msg entities.ChatMessage) {
	send := &discordgo.MessageSend{
		Content:         pkgdiscord.FormatMessage(msg),
		AllowedMentions: pkgdiscord.NoMentions(),
	}
	if msg.Speakable() {
		send.Components = []discordgo.MessageComponent{
			pkgdiscord.ReadAloudRow(msg.ID, v.tr.T(v.locale, "read_aloud", nil)),
		}
	}
	v.post(send)
}

// ClearInput has nothing to clear: slash command input is gone once sent.
func (v *channelView) ClearInput() {}

// Play posts synthesized speech as an audio attachment.
func (v *channelView) Play(ctx context.Context, u speech.Utterance) error {
	_, err := v.out.ChannelMessageSendComplex(v.channelID, &discordgo.MessageSend{
		Files: []*discordgo.File{{
			Name:        fmt.Sprintf("%s.mp3", u.Locale),
			ContentType: "audio/mpeg",
			Reader:      bytes.NewReader(u.Audio),
		}},
		AllowedMentions: pkgdiscord.NoMentions(),
	}, discordgo.WithContext(ctx))
	return err
}

func (v *channelView) post(send *discordgo.MessageSend) {
	if _, err := v.out.ChannelMessageSendComplex(v.channelID, send); err != nil {
		log.Printf("❌ Erreur lors de l'envoi du message dans %s: %v", v.channelID, err)
	}
}
