package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"lingobot/internal/application"
	"lingobot/internal/domain"
	"lingobot/internal/ports/output"
	"lingobot/pkg/speechlocale"
)

// WSHandler runs one conversation per websocket connection.
type WSHandler struct {
	sessions       *application.Sessions
	tr             output.T
	allowedOrigins map[string]bool
	upgrader       websocket.Upgrader
}

func NewWSHandler(sessions *application.Sessions, tr output.T, allowedOrigins []string) *WSHandler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	h := &WSHandler{sessions: sessions, tr: tr, allowedOrigins: origins}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

func (h *WSHandler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // allow non-browser clients
	}
	return h.allowedOrigins[origin]
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var inflight sync.WaitGroup
	defer func() {
		cancel()
		inflight.Wait()
	}()

	sessionID := uuid.NewString()
	locale := r.Header.Get("Accept-Language")
	out := &pageWriter{conn: conn}
	view := &pageView{out: out}
	conv := h.sessions.Open(sessionID, view, view, locale)
	log.Printf("🔌 Session %s ouverte (%d active(s))", sessionID, h.sessions.Len())
	defer func() {
		h.sessions.Close(sessionID)
		log.Printf("👋 Session %s fermée (%d active(s))", sessionID, h.sessions.Len())
	}()

	out.send(event{
		Type:         eventSession,
		SessionID:    sessionID,
		SourceLocale: speechlocale.Resolve(conv.SourceLanguage()),
	})

	inflight.Add(1)
	go func() {
		defer inflight.Done()
		_ = conv.LoadCatalog(ctx)
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket closed unexpectedly: %v", err)
			}
			return
		}

		var a action
		if err := json.Unmarshal(raw, &a); err != nil {
			log.Printf("Invalid message format: %v", err)
			continue
		}

		switch a.Type {
		case actionSelect:
			_ = conv.SelectLanguage(ctx, a.Code)
		case actionSend:
			// Accepted in arrival order; translations may overlap.
			deliver, err := conv.Accept(a.Text)
			if err != nil {
				continue
			}
			inflight.Add(1)
			go func() {
				defer inflight.Done()
				_ = deliver(ctx)
			}()
		case actionRead:
			if err := conv.ReadAloud(ctx, a.ID); errors.Is(err, domain.ErrMessageNotFound) {
				out.send(event{Type: eventNotice, Text: h.tr.T(locale, "message.missing", nil)})
			}
		default:
			log.Printf("Unknown action %q", a.Type)
		}
	}
}
