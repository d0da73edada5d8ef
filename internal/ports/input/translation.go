package input

import (
	"context"

	"lingobot/internal/domain/entities"
)

// TranslationUseCase backs the REST translation API.
type TranslationUseCase interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	Languages(ctx context.Context) ([]entities.LanguageOption, error)
}
