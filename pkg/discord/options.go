package discord

import "github.com/bwmarrin/discordgo"

// StringOption returns the value of the named string option of a slash
// command, and whether that option is the one being autocompleted.
func StringOption(data discordgo.ApplicationCommandInteractionData, name string) (value string, focused bool) {
	for _, opt := range data.Options {
		if opt == nil || opt.Name != name {
			continue
		}
		if s, ok := opt.Value.(string); ok {
			value = s
		}
		return value, opt.Focused
	}
	return "", false
}

// AttachmentOption resolves the named attachment option of a slash command.
func AttachmentOption(data discordgo.ApplicationCommandInteractionData, name string) *discordgo.MessageAttachment {
	if data.Resolved == nil {
		return nil
	}
	for _, opt := range data.Options {
		if opt == nil || opt.Name != name {
			continue
		}
		id, ok := opt.Value.(string)
		if !ok {
			return nil
		}
		return data.Resolved.Attachments[id]
	}
	return nil
}
