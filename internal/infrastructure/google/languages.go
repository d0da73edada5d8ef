package google

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"lingobot/internal/domain/entities"
)

// codes are the target languages accepted by the web translation endpoint.
var codes = []string{
	"af", "sq", "am", "ar", "hy", "as", "ay", "az", "bm", "eu", "be", "bn",
	"bho", "bs", "bg", "ca", "ceb", "ny", "zh-CN", "zh-TW", "co", "hr", "cs",
	"da", "dv", "doi", "nl", "en", "eo", "et", "ee", "tl", "fi", "fr", "fy",
	"gl", "ka", "de", "el", "gn", "gu", "ht", "ha", "haw", "iw", "hi", "hmn",
	"hu", "is", "ig", "ilo", "id", "ga", "it", "ja", "jw", "kn", "kk", "km",
	"rw", "gom", "ko", "kri", "ku", "ckb", "ky", "lo", "la", "lv", "ln", "lt",
	"lg", "lb", "mk", "mai", "mg", "ms", "ml", "mt", "mi", "mr", "mni-Mtei",
	"lus", "mn", "my", "ne", "no", "or", "om", "ps", "fa", "pl", "pt", "pa",
	"qu", "ro", "ru", "sm", "sa", "gd", "nso", "sr", "st", "sn", "sd", "si",
	"sk", "sl", "so", "es", "su", "sw", "sv", "tg", "ta", "tt", "te", "th",
	"ti", "ts", "tr", "tk", "ak", "uk", "ur", "ug", "uz", "vi", "cy", "xh",
	"yi", "yo", "zu",
}

// Names the CLDR tables do not give the way the endpoint labels them.
var nameOverrides = map[string]string{
	"zh-CN":    "Chinese (Simplified)",
	"zh-TW":    "Chinese (Traditional)",
	"iw":       "Hebrew",
	"jw":       "Javanese",
	"tl":       "Filipino",
	"ckb":      "Kurdish (Sorani)",
	"ku":       "Kurdish (Kurmanji)",
	"mni-Mtei": "Meiteilon (Manipuri)",
	"gom":      "Konkani",
	"lus":      "Mizo",
	"kri":      "Krio",
	"doi":      "Dogri",
	"ilo":      "Ilocano",
	"bho":      "Bhojpuri",
	"nso":      "Sepedi",
	"ny":       "Chichewa",
}

var supported = func() map[string]string {
	m := make(map[string]string, len(codes))
	for _, c := range codes {
		m[strings.ToLower(c)] = c
	}
	return m
}()

// canonicalCode returns the endpoint spelling of code and whether it is
// supported. Matching ignores case ("zh-cn" is "zh-CN").
func canonicalCode(code string) (string, bool) {
	c, ok := supported[strings.ToLower(strings.TrimSpace(code))]
	return c, ok
}

// languageName returns the English display name of an endpoint code.
func languageName(code string) string {
	if name, ok := nameOverrides[code]; ok {
		return name
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

func catalog() []entities.LanguageOption {
	out := make([]entities.LanguageOption, 0, len(codes))
	for _, c := range codes {
		out = append(out, entities.LanguageOption{Code: c, Name: languageName(c)})
	}
	return out
}
