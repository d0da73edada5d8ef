package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingobot/internal/adapters/backend"
	"lingobot/internal/adapters/httpapi"
	"lingobot/internal/adapters/web"
	"lingobot/internal/application"
	"lingobot/internal/config"
	"lingobot/internal/infrastructure/google"
	"lingobot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	tr := i18n.NewLocalizer(cfg.DefaultLocale)
	log.Printf("🌐 Langues de l'interface: %v", tr.Supported())

	translation := application.NewTranslationService(google.NewTranslator(cfg.TranslateURL, httpClient))
	api := httpapi.NewServer(translation, cfg.AllowedOrigins)

	sessions := application.NewSessions(application.ConversationDeps{
		Backend: backend.NewClient(cfg.APIBaseURL, httpClient),
		T:       tr,
	}, cfg.SourceLanguage)
	api.Handle("GET /ws", web.NewWSHandler(sessions, tr, cfg.AllowedOrigins))
	api.Handle("GET /", web.Page())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️ Erreur lors de l'arrêt du serveur: %v", err)
		}
	}()

	log.Printf("🌐 Serveur de traduction en écoute sur %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("❌ Erreur du serveur: %v", err)
		os.Exit(1)
	}
}
