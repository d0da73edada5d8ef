package output

// T looks up user-facing interface strings (system notices, prompts) in the
// locale of the person driving a conversation. It is unrelated to the
// translation of chat text, which goes through TranslationBackend.
type T interface {
	// T renders the message identified by key for the given locale.
	// data holds template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}
