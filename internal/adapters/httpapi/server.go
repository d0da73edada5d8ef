// Package httpapi exposes the translation backend over REST.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"lingobot/internal/domain"
	"lingobot/internal/ports/input"
)

const maxBodyBytes = 1 << 20

// Server routes /api/languages and /api/translate and lets other front-ends
// mount themselves on the same mux.
type Server struct {
	translation input.TranslationUseCase
	mux         *http.ServeMux
	origins     map[string]bool
}

// NewServer wires the routes. An empty allowedOrigins list allows any origin.
func NewServer(translation input.TranslationUseCase, allowedOrigins []string) *Server {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	s := &Server{
		translation: translation,
		mux:         http.NewServeMux(),
		origins:     origins,
	}
	s.mux.HandleFunc("GET /api/languages", s.handleLanguages)
	s.mux.HandleFunc("POST /api/translate", s.handleTranslate)
	s.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

// Handle mounts an extra handler (widget page, websocket endpoint).
func (s *Server) Handle(pattern string, h http.Handler) {
	s.mux.Handle(pattern, h)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" {
		if !s.allowOrigin(origin) {
			writeError(w, http.StatusForbidden, "origin not allowed")
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	s.mux.ServeHTTP(w, r)
}

func (s *Server) allowOrigin(origin string) bool {
	return len(s.origins) == 0 || s.origins[origin]
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
	SourceLang string `json:"source_lang"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Printf("❌ Corps de requête invalide: %v", err)
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	translated, err := s.translation.Translate(r.Context(), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		if errors.Is(err, domain.ErrMissingParameters) {
			log.Println("❌ Paramètre 'text' ou 'target_lang' manquant.")
			writeError(w, http.StatusBadRequest, "Missing required parameters")
			return
		}
		log.Printf("❌ Erreur lors de la traduction: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"translatedText": translated})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	options, err := s.translation.Languages(r.Context())
	if err != nil {
		log.Printf("❌ Erreur lors de la récupération des langues: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️ Erreur lors de l'écriture de la réponse: %v", err)
	}
}
