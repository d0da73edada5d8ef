package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "lingobot/pkg/discord"
)

// HandleReadAloud speaks the assistant message the button belongs to.
func (h *Handler) HandleReadAloud(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	id, ok := pkgdiscord.ReadAloudTarget(i.MessageComponentData().CustomID)
	if !ok {
		return
	}
	conv, ok := h.sessions.Get(i.ChannelID)
	if !ok {
		respondEphemeral(s, i.Interaction, h.tr.T(locale, "message.missing", nil))
		return
	}

	if err := conv.ReadAloud(context.Background(), id); err != nil {
		log.Printf("⚠️ Lecture impossible pour le message %s: %v", id, err)
		if key := pkgdiscord.NoticeKey(err); key != "" {
			respondEphemeral(s, i.Interaction, h.tr.T(locale, key, nil))
			return
		}
	}
	acknowledgeComponent(s, i.Interaction)
}
