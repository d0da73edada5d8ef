package discord

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"lingobot/internal/application"
	"lingobot/internal/config"
	"lingobot/internal/ports/output"
	pkgdiscord "lingobot/pkg/discord"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
// synth may be nil, in which case replies are not spoken.
func NewBot(cfg *config.Config, deps application.ConversationDeps, synth output.Synthesizer) *Bot {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Erreur lors de la création de la session Discord:", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	// Interactions are handled in arrival order; slow work leaves the loop
	// through Handler tasks.
	s.SyncEvents = true

	sessions := application.NewSessions(deps, cfg.SourceLanguage)
	handler := NewHandler(sessions, deps.T, synth, http.DefaultClient)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "translate":
			b.handler.HandleTranslate(s, i)
		case "say":
			b.handler.HandleSay(s, i)
		case "speak":
			b.handler.HandleSpeak(s, i)
		case "language":
			b.handler.HandleLanguage(s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		if i.ApplicationCommandData().Name == "language" {
			b.handler.HandleLanguageAutocomplete(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID

		if strings.HasPrefix(customID, pkgdiscord.SelectLanguagePrefix) {
			b.handler.HandleSelectLanguage(s, i)
		} else if strings.HasPrefix(customID, pkgdiscord.ReadAloudPrefix) {
			b.handler.HandleReadAloud(s, i)
		}
	}
}

func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: "translate", Description: "Start a translation conversation in this channel"},
		{
			Name:        "say",
			Description: "Translate a phrase into the selected language",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "text", Description: "What to translate", Required: true, MaxLength: 1000},
			},
		},
		{
			Name:        "speak",
			Description: "Translate a recorded voice clip",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionAttachment, Name: "audio", Description: "Voice clip in your own language", Required: true},
			},
		},
		{
			Name:        "language",
			Description: "Choose the language to learn",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "code", Description: "Language", Required: true, Autocomplete: true},
			},
		},
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()
	defer b.handler.Shutdown()

	for _, cmd := range commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Erreur lors de l'enregistrement de la commande %s: %v", cmd.Name, err)
		}
	}

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
