package entities

import "time"

// Author identifies who produced a transcript entry.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
	AuthorSystem    Author = "system"
)

// ChatMessage is one entry of a conversation transcript. Entries are
// append-only: once created they are never mutated or removed.
type ChatMessage struct {
	ID        string
	Index     int
	Author    Author
	Text      string
	CreatedAt time.Time
}

// Speakable reports whether the entry carries a read-aloud control.
func (m ChatMessage) Speakable() bool {
	return m.Author == AuthorAssistant
}
