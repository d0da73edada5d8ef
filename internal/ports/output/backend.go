package output

import (
	"context"

	"lingobot/internal/domain/entities"
)

// TranslationBackend is the remote translation service consumed by the
// conversation widget (GET /api/languages, POST /api/translate).
type TranslationBackend interface {
	Languages(ctx context.Context) ([]entities.LanguageOption, error)
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// TextTranslator is the machine translation provider behind the backend.
type TextTranslator interface {
	// Translate converts text from sourceLang ("auto" to detect) to targetLang.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	// Languages lists the target languages the provider supports.
	Languages(ctx context.Context) ([]entities.LanguageOption, error)
}
