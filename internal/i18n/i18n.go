package i18n

import (
	"sync"

	"github.com/1739467001-svg/kaiyan/internal/domain"
)

// Translator resolves translation keys against a process-wide active
// language. A missing key resolves to the key itself, so gaps in the
// table show up in the output instead of failing.
type Translator struct {
	mu       sync.RWMutex
	language domain.Language
}

func New(language domain.Language) *Translator {
	if language != domain.LanguageEN {
		language = domain.LanguageZH
	}
	return &Translator{language: language}
}

func (t *Translator) Language() domain.Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

// Toggle flips the active language and returns the new value.
func (t *Translator) Toggle() domain.Language {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.language = t.language.Toggled()
	return t.language
}

func (t *Translator) Translate(key string) string {
	t.mu.RLock()
	lang := t.language
	t.mu.RUnlock()

	if entry, ok := translations[key]; ok {
		if s, ok := entry[lang]; ok {
			return s
		}
	}
	return key
}

// All returns the full table resolved for the active language.
func (t *Translator) All() map[string]string {
	t.mu.RLock()
	lang := t.language
	t.mu.RUnlock()

	out := make(map[string]string, len(translations))
	for key, entry := range translations {
		if s, ok := entry[lang]; ok {
			out[key] = s
		} else {
			out[key] = key
		}
	}
	return out
}
