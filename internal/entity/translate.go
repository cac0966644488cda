package entity

// Language is one of the three locales the menu is maintained in.
type Language string

const (
	LangUz Language = "uz"
	LangRu Language = "ru"
	LangEn Language = "en"
)

// ParseLanguage maps a request parameter to a supported locale,
// defaulting to English.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LangUz, LangRu, LangEn:
		return Language(s)
	default:
		return LangEn
	}
}

// Translatable holds the same text in all supported locales.
type Translatable struct {
	Uz string `json:"uz"`
	Ru string `json:"ru"`
	En string `json:"en"`
}

// Localize returns the text for lang. An unset locale falls back to
// English, then to whichever locale is non-empty.
func (t Translatable) Localize(lang Language) string {
	var preferred string
	switch lang {
	case LangUz:
		preferred = t.Uz
	case LangRu:
		preferred = t.Ru
	default:
		preferred = t.En
	}
	if preferred != "" {
		return preferred
	}
	for _, s := range []string{t.En, t.Uz, t.Ru} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Set returns a copy with the given locale replaced.
func (t Translatable) Set(lang Language, text string) Translatable {
	switch lang {
	case LangUz:
		t.Uz = text
	case LangRu:
		t.Ru = text
	case LangEn:
		t.En = text
	}
	return t
}
