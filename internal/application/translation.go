package application

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"lingobot/internal/domain"
	"lingobot/internal/domain/entities"
	"lingobot/internal/ports/input"
	"lingobot/internal/ports/output"
)

// AutoDetect asks the provider to detect the source language.
const AutoDetect = "auto"

var _ input.TranslationUseCase = (*TranslationService)(nil)

// TranslationService implements the backend side of the translation API.
type TranslationService struct {
	provider output.TextTranslator
}

func NewTranslationService(provider output.TextTranslator) *TranslationService {
	return &TranslationService{provider: provider}
}

func (s *TranslationService) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	targetLang = strings.TrimSpace(targetLang)
	if text == "" || targetLang == "" {
		return "", domain.ErrMissingParameters
	}
	sourceLang = strings.TrimSpace(sourceLang)
	if sourceLang == "" {
		sourceLang = AutoDetect
	}

	log.Printf("🌐 Traduction de %q (%s → %s)", text, sourceLang, targetLang)
	return s.provider.Translate(ctx, text, sourceLang, targetLang)
}

// Languages returns the supported languages sorted by display name.
func (s *TranslationService) Languages(ctx context.Context) ([]entities.LanguageOption, error) {
	options, err := s.provider.Languages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	sorted := slices.Clone(options)
	slices.SortStableFunc(sorted, func(a, b entities.LanguageOption) int {
		return strings.Compare(a.Name, b.Name)
	})
	log.Printf("✅ %d langues disponibles", len(sorted))
	return sorted, nil
}
