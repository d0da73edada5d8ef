package output

import (
	"context"

	"lingobot/internal/domain/entities"
)

// Speaker reads text aloud. Speak returns immediately; starting a new
// utterance replaces the one in flight.
type Speaker interface {
	Speak(ctx context.Context, text, locale string)
}

// Synthesizer turns text into encoded audio for a speech locale (e.g. "es-ES").
type Synthesizer interface {
	Synthesize(ctx context.Context, text, locale string) ([]byte, error)
}

// Recognizer transcribes a single speech clip spoken in locale.
type Recognizer interface {
	Recognize(ctx context.Context, clip entities.Recording, locale string) (string, error)
}
