package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"lingobot/internal/domain/entities"
)

// MaxContentLength is Discord's limit for a message body.
const MaxContentLength = 2000

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
	">", `\>`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	"@", "@\u200b",
)

// EscapeMarkdown makes text render literally: no formatting, links,
// mentions or custom emoji.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

var prefixes = map[entities.Author]string{
	entities.AuthorUser:      "👤 ",
	entities.AuthorAssistant: "🤖 ",
	entities.AuthorSystem:    "ℹ️ ",
}

// FormatMessage renders a transcript entry as message content.
func FormatMessage(msg entities.ChatMessage) string {
	return Truncate(prefixes[msg.Author]+EscapeMarkdown(msg.Text), MaxContentLength)
}

// Truncate cuts s to at most limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	cut := string(r[:limit-1])
	// Do not leave a dangling escape: an odd run of trailing backslashes
	// ends with one that escapes the ellipsis.
	if n := len(cut) - len(strings.TrimRight(cut, `\`)); n%2 == 1 {
		cut = cut[:len(cut)-1]
	}
	return cut + "…"
}

// NoMentions disables every ping a message could trigger.
func NoMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
}
