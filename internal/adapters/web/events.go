package web

import "lingobot/internal/domain/entities"

// Event types pushed to the page.
const (
	eventSession   = "session"
	eventLanguages = "languages"
	eventMessage   = "message"
	eventClear     = "clear"
	eventSpeak     = "speak"
	eventNotice    = "notice"
)

// Action types sent by the page.
const (
	actionSelect = "select"
	actionSend   = "send"
	actionRead   = "read"
)

type event struct {
	Type         string                    `json:"type"`
	SessionID    string                    `json:"session_id,omitempty"`
	SourceLocale string                    `json:"source_locale,omitempty"`
	Languages    []entities.LanguageOption `json:"languages,omitempty"`
	ID           string                    `json:"id,omitempty"`
	Author       entities.Author           `json:"author,omitempty"`
	Text         string                    `json:"text,omitempty"`
	Locale       string                    `json:"locale,omitempty"`
}

type action struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Code string `json:"code"`
	ID   string `json:"id"`
}
