package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	DefaultAPIBaseURL = "http://localhost:5000"
	DefaultAddr       = ":5000"
	DefaultLocale     = "en"
	DefaultSource     = "en"
)

// Config holds the settings of both binaries. LoadBot and LoadServer each
// validate the subset their binary needs.
type Config struct {
	// Discord
	Token   string
	GuildID string

	// Conversation widget
	APIBaseURL     string
	SourceLanguage string
	DefaultLocale  string
	STTURL         string
	STTAPIKey      string
	STTModel       string
	TTSURL         string

	// Translation backend
	Addr           string
	TranslateURL   string
	AllowedOrigins []string
}

// LoadBot charge la configuration du bot Discord et la valide.
func LoadBot() (*Config, error) {
	cfg := load()
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}
	for _, r := range cfg.GuildID {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadServer charge la configuration du backend de traduction et la valide.
func LoadServer() (*Config, error) {
	cfg := load()
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.TranslateURL != "" {
		if err := checkURL("TRANSLATE_URL", cfg.TranslateURL); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SpeechRecognition reports whether a speech-to-text endpoint is configured.
func (c *Config) SpeechRecognition() bool {
	return c.STTURL != ""
}

func load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		GuildID:        strings.TrimSpace(os.Getenv("GUILD_ID")),
		APIBaseURL:     strings.TrimSpace(os.Getenv("API_BASE_URL")),
		SourceLanguage: strings.TrimSpace(os.Getenv("SOURCE_LANGUAGE")),
		DefaultLocale:  strings.TrimSpace(os.Getenv("DEFAULT_LOCALE")),
		STTURL:         strings.TrimSpace(os.Getenv("STT_URL")),
		STTAPIKey:      os.Getenv("STT_API_KEY"),
		STTModel:       strings.TrimSpace(os.Getenv("STT_MODEL")),
		TTSURL:         strings.TrimSpace(os.Getenv("TTS_URL")),
		Addr:           strings.TrimSpace(os.Getenv("ADDR")),
		TranslateURL:   strings.TrimSpace(os.Getenv("TRANSLATE_URL")),
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}

// validate applique les valeurs par défaut et vérifie les champs communs.
func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if err := checkURL("API_BASE_URL", c.APIBaseURL); err != nil {
		return err
	}

	if c.SourceLanguage == "" {
		c.SourceLanguage = DefaultSource
	}
	if _, err := language.Parse(c.SourceLanguage); err != nil {
		return fmt.Errorf("config: SOURCE_LANGUAGE invalide (%q): %w", c.SourceLanguage, err)
	}

	if c.DefaultLocale == "" {
		c.DefaultLocale = DefaultLocale
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalide (%q): %w", c.DefaultLocale, err)
	}

	if c.STTURL != "" {
		if err := checkURL("STT_URL", c.STTURL); err != nil {
			return err
		}
	}
	if c.TTSURL != "" {
		if err := checkURL("TTS_URL", c.TTSURL); err != nil {
			return err
		}
	}
	return nil
}

func checkURL(name, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalide (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: %s invalide (%q): scheme ou host manquant", name, raw)
	}
	return nil
}
