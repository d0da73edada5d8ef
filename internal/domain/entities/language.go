package entities

// LanguageOption is one entry of the language catalog served by the backend.
type LanguageOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FindLanguage returns the option whose code matches code.
func FindLanguage(options []LanguageOption, code string) (LanguageOption, bool) {
	for _, o := range options {
		if o.Code == code {
			return o, true
		}
	}
	return LanguageOption{}, false
}
