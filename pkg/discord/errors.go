package discord

import (
	"errors"

	"lingobot/internal/domain"
)

// NoticeKey maps an error the conversation did not report itself to the
// i18n key of the ephemeral notice shown instead. Empty means no notice.
func NoticeKey(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmptyText):
		return "input.empty"
	case errors.Is(err, domain.ErrRecognitionUnavailable):
		return "speech.unsupported"
	case errors.Is(err, domain.ErrRecognitionFailed):
		return "speech.failed"
	case errors.Is(err, domain.ErrMessageNotFound):
		return "message.missing"
	default:
		return ""
	}
}
