package output

import "lingobot/internal/domain/entities"

// View renders a conversation for one front-end (browser page, Discord channel).
type View interface {
	// ShowLanguages populates the language selection control.
	ShowLanguages(options []entities.LanguageOption)
	// AppendMessage adds an entry at the bottom of the transcript and keeps it
	// scrolled to the latest entry. Assistant entries carry a read-aloud
	// control referencing msg.ID.
	AppendMessage(msg entities.ChatMessage)
	// ClearInput empties the text entry field, if the front-end has one.
	ClearInput()
}
