package input

import (
	"context"

	"lingobot/internal/domain/entities"
)

// ConversationUseCase is the set of actions a front-end can trigger on one
// conversation session.
type ConversationUseCase interface {
	LoadCatalog(ctx context.Context) error
	Catalog() []entities.LanguageOption
	SelectLanguage(ctx context.Context, code string) error
	SelectedLanguage() string
	SourceLanguage() string
	Accept(text string) (deliver func(context.Context) error, err error)
	Send(ctx context.Context, text string) error
	CanCaptureSpeech() bool
	CaptureSpeech(ctx context.Context, clip entities.Recording) error
	ReadAloud(ctx context.Context, messageID string) error
}
