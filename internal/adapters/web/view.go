package web

import (
	"context"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"lingobot/internal/domain/entities"
	"lingobot/internal/ports/output"
)

// pageWriter serialises writes to one websocket connection.
type pageWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (p *pageWriter) send(ev event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.conn.WriteJSON(ev); err != nil {
		log.Printf("⚠️ Échec d'écriture WebSocket (%s): %v", ev.Type, err)
	}
}

var (
	_ output.View    = (*pageView)(nil)
	_ output.Speaker = (*pageView)(nil)
)

// pageView renders a conversation into the browser page. Speech runs in the
// browser, which keeps a single current utterance.
type pageView struct {
	out *pageWriter
}

func (v *pageView) ShowLanguages(options []entities.LanguageOption) {
	v.out.send(event{Type: eventLanguages, Languages: options})
}

func (v *pageView) AppendMessage(msg entities.ChatMessage) {
	v.out.send(event{Type: eventMessage, ID: msg.ID, Author: msg.Author, Text: msg.Text})
}

func (v *pageView) ClearInput() {
	v.out.send(event{Type: eventClear})
}

func (v *pageView) Speak(_ context.Context, text, locale string) {
	v.out.send(event{Type: eventSpeak, Text: text, Locale: locale})
}
