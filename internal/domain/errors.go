package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrLanguageNotSelected    = errors.New("no target language selected")
	ErrEmptyText              = errors.New("empty text")
	ErrUnknownLanguage        = errors.New("language is not in the catalog")
	ErrRecognitionUnavailable = errors.New("speech recognition is not available")
	ErrRecognitionFailed      = errors.New("speech recognition failed")
	ErrMessageNotFound        = errors.New("message not found")
	ErrMissingParameters      = errors.New("missing required parameters")
	ErrUnsupportedLanguage    = errors.New("language not supported")
)

// BackendError is an error string reported by the translation backend in an
// {"error": "..."} body. Message is passed through untouched to the user.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

// NewBackendError wraps a backend-reported message.
func NewBackendError(msg string) error {
	return &BackendError{Message: msg}
}

// UserMessage returns the text shown to a user for err: the backend message
// when the backend reported one, the error text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var be *BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	return err.Error()
}

// UnsupportedLanguage returns ErrUnsupportedLanguage annotated with code.
func UnsupportedLanguage(code string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}
