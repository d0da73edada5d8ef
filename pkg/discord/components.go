package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"lingobot/internal/domain/entities"
)

const (
	SelectLanguagePrefix = "select_language_"
	ReadAloudPrefix      = "btn_read_aloud_"

	maxMenuOptions = 25
	maxMenus       = 5
	maxLabel       = 100
)

// LanguageMenus splits options into select menus of 25 entries, one per
// action row, keeping their order. Discord allows five rows per message, so
// options beyond 125 are not shown; overflow reports how many.
func LanguageMenus(options []entities.LanguageOption, placeholder string) (rows []discordgo.MessageComponent, overflow int) {
	for start := 0; start < len(options); start += maxMenuOptions {
		if len(rows) == maxMenus {
			return rows, len(options) - start
		}
		end := min(start+maxMenuOptions, len(options))
		menuOptions := make([]discordgo.SelectMenuOption, 0, end-start)
		for _, o := range options[start:end] {
			menuOptions = append(menuOptions, discordgo.SelectMenuOption{
				Label: Truncate(o.Name, maxLabel),
				Value: o.Code,
			})
		}
		first, last := options[start].Name, options[end-1].Name
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    fmt.Sprintf("%s%d", SelectLanguagePrefix, len(rows)),
				Placeholder: Truncate(fmt.Sprintf("%s (%s – %s)", placeholder, first, last), maxLabel),
				Options:     menuOptions,
			},
		}})
	}
	return rows, 0
}

// ReadAloudRow is the action row attached to assistant messages.
func ReadAloudRow(messageID, label string) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    label,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔊"},
			Style:    discordgo.SecondaryButton,
			CustomID: ReadAloudPrefix + messageID,
		},
	}}
}

// ReadAloudTarget extracts the transcript message ID from a button custom ID.
func ReadAloudTarget(customID string) (string, bool) {
	id, ok := strings.CutPrefix(customID, ReadAloudPrefix)
	return id, ok && id != ""
}

// FilterLanguages returns up to limit options whose code starts with query
// or whose name contains it, ignoring case. Exact code matches come first.
func FilterLanguages(options []entities.LanguageOption, query string, limit int) []entities.LanguageOption {
	q := strings.ToLower(strings.TrimSpace(query))
	var exact, rest []entities.LanguageOption
	for _, o := range options {
		code := strings.ToLower(o.Code)
		switch {
		case q == "":
			rest = append(rest, o)
		case code == q:
			exact = append(exact, o)
		case strings.HasPrefix(code, q), strings.Contains(strings.ToLower(o.Name), q):
			rest = append(rest, o)
		}
	}
	out := append(exact, rest...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LanguageChoices turns options into autocomplete choices.
func LanguageChoices(options []entities.LanguageOption) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(options))
	for _, o := range options {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  Truncate(fmt.Sprintf("%s (%s)", o.Name, o.Code), maxLabel),
			Value: o.Code,
		})
	}
	return choices
}
