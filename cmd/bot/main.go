package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"lingobot/internal/adapters/backend"
	"lingobot/internal/adapters/discord"
	"lingobot/internal/application"
	"lingobot/internal/config"
	"lingobot/internal/infrastructure/i18n"
	"lingobot/internal/infrastructure/speech"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	tr := i18n.NewLocalizer(cfg.DefaultLocale)
	log.Printf("🌐 Langues de l'interface: %v", tr.Supported())

	deps := application.ConversationDeps{
		Backend: backend.NewClient(cfg.APIBaseURL, httpClient),
		T:       tr,
	}
	if cfg.SpeechRecognition() {
		deps.Recognizer = speech.NewWhisperRecognizer(cfg.STTURL, cfg.STTAPIKey, cfg.STTModel, httpClient)
		log.Printf("🎙️ Reconnaissance vocale activée (%s)", cfg.STTURL)
	} else {
		log.Println("ℹ️ STT_URL absent: /speak est désactivé")
	}

	bot := discord.NewBot(cfg, deps, speech.NewGoogleTTS(cfg.TTSURL, httpClient))
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
