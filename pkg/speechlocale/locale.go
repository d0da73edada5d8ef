// Package speechlocale maps two-letter language codes to the full locale tags
// expected by speech engines.
package speechlocale

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is used when a language has no mapped voice.
const Default = "en-US"

var locales = map[string]string{
	"en": "en-US",
	"es": "es-ES",
	"fr": "fr-FR",
	"de": "de-DE",
	"it": "it-IT",
	"pt": "pt-PT",
	"ru": "ru-RU",
	"ja": "ja-JP",
	"ko": "ko-KR",
	"zh": "zh-CN",
	"ar": "ar-SA",
	"hi": "hi-IN",
	"tr": "tr-TR",
	"nl": "nl-NL",
	"pl": "pl-PL",
	"vi": "vi-VN",
	"th": "th-TH",
	"sv": "sv-SE",
	"da": "da-DK",
	"fi": "fi-FI",
}

// Lookup returns the speech locale mapped to code. Codes carrying a region or
// script ("zh-CN", "pt_BR") are reduced to their base language first.
func Lookup(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	if l, ok := locales[strings.ToLower(code)]; ok {
		return l, true
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	l, ok := locales[base.String()]
	return l, ok
}

// Resolve is Lookup with the Default fallback.
func Resolve(code string) string {
	if l, ok := Lookup(code); ok {
		return l
	}
	return Default
}
