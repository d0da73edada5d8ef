package application

import (
	"sync"

	"lingobot/internal/ports/output"
)

// Sessions keeps the live conversations of a front-end, keyed by whatever
// identifies a chat surface there (websocket session, Discord channel).
type Sessions struct {
	deps   ConversationDeps
	source string

	mu    sync.Mutex
	byKey map[string]*Conversation
}

func NewSessions(deps ConversationDeps, sourceLanguage string) *Sessions {
	return &Sessions{
		deps:   deps,
		source: sourceLanguage,
		byKey:  make(map[string]*Conversation),
	}
}

// Open starts a fresh conversation under key, dropping any previous one.
func (s *Sessions) Open(key string, view output.View, speaker output.Speaker, locale string) *Conversation {
	conv := NewConversation(s.deps, view, speaker, locale, s.source)

	s.mu.Lock()
	s.byKey[key] = conv
	s.mu.Unlock()
	return conv
}

func (s *Sessions) Get(key string) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.byKey[key]
	return conv, ok
}

func (s *Sessions) Close(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byKey, key)
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byKey)
}
