package i18n

import (
	"embed"
	"log"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"lingobot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.T = (*Localizer)(nil)

// Localizer renders interface strings through go-i18n bundles.
type Localizer struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	byLocale        sync.Map
}

// NewLocalizer builds a Localizer from the embedded active.*.toml files,
// falling back to defaultLocale (e.g. "en") for missing keys.
func NewLocalizer(defaultLocale string) *Localizer {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	return &Localizer{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// T renders a notice for a chat surface. locale is whatever that surface
// reports: a Discord locale ("fr", "en-GB") or a browser Accept-Language
// header ("fr-CH, fr;q=0.9, en;q=0.8"). Keys missing in every matching
// language render as the key itself.
func (l *Localizer) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := l.localizerFor(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: pas de message %q pour %q: %v", key, locale, err)
		return key
	}
	return msg
}

// localizerFor caches one go-i18n localizer per distinct locale string;
// sessions repeat the same header for every notice.
func (l *Localizer) localizerFor(locale string) *i18n.Localizer {
	if cached, ok := l.byLocale.Load(locale); ok {
		return cached.(*i18n.Localizer)
	}
	preferences := []string{l.defaultLanguage.String()}
	if locale != "" {
		preferences = append([]string{locale}, preferences...)
	}
	loc, _ := l.byLocale.LoadOrStore(locale, i18n.NewLocalizer(l.bundle, preferences...))
	return loc.(*i18n.Localizer)
}

// Supported reports the locales that have a message file.
func (l *Localizer) Supported() []language.Tag {
	return l.bundle.LanguageTags()
}
