package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// deferEphemeral acknowledges a command whose work posts into the channel.
func deferEphemeral(s *discordgo.Session, i *discordgo.Interaction) bool {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		log.Printf("❌ Erreur lors de l'accusé de réception de l'interaction: %v", err)
		return false
	}
	return true
}

// acknowledgeComponent answers a component interaction without touching
// the message it belongs to.
func acknowledgeComponent(s *discordgo.Session, i *discordgo.Interaction) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

// finishDeferred replaces the "thinking" placeholder with notice, or drops
// it when there is nothing to say.
func finishDeferred(s *discordgo.Session, i *discordgo.Interaction, notice string) {
	if notice == "" {
		_ = s.InteractionResponseDelete(i)
		return
	}
	if _, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &notice}); err != nil {
		log.Printf("⚠️ Erreur lors de la mise à jour de la réponse: %v", err)
	}
}
