package application

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"lingobot/internal/domain"
	"lingobot/internal/domain/entities"
)

// Transcript is the append-only message log of one conversation.
type Transcript struct {
	mu       sync.RWMutex
	messages []entities.ChatMessage
	byID     map[string]int
	now      func() time.Time
}

func NewTranscript() *Transcript {
	return &Transcript{
		byID: make(map[string]int),
		now:  time.Now,
	}
}

// Append records a new entry and returns it with its ID and position set.
func (t *Transcript) Append(author entities.Author, text string) entities.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := entities.ChatMessage{
		ID:        uuid.NewString(),
		Index:     len(t.messages),
		Author:    author,
		Text:      text,
		CreatedAt: t.now(),
	}
	t.messages = append(t.messages, msg)
	t.byID[msg.ID] = msg.Index
	return msg
}

// Find returns the entry with the given ID.
func (t *Transcript) Find(id string) (entities.ChatMessage, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx, ok := t.byID[id]
	if !ok {
		return entities.ChatMessage{}, domain.ErrMessageNotFound
	}
	return t.messages[idx], nil
}
