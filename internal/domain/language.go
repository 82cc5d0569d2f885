package domain

type Language string

const (
	LanguageZH Language = "zh"
	LanguageEN Language = "en"
)

// Toggled returns the other of the two supported languages.
func (l Language) Toggled() Language {
	if l == LanguageZH {
		return LanguageEN
	}
	return LanguageZH
}
