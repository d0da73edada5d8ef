package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// HandleSelectLanguage applies a choice from one of the language menus.
func (h *Handler) HandleSelectLanguage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	conv, ok := h.sessions.Get(i.ChannelID)
	if !ok {
		respondEphemeral(s, i.Interaction, h.tr.T(string(i.Locale), "conversation.missing", nil))
		return
	}

	acknowledgeComponent(s, i.Interaction)
	if values := i.MessageComponentData().Values; len(values) > 0 {
		_ = conv.SelectLanguage(context.Background(), values[0])
	}
}
