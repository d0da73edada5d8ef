package entities

// Recording is a single captured speech clip submitted for recognition.
type Recording struct {
	Filename    string
	ContentType string
	Data        []byte
}
