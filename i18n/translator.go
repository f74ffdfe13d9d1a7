// Package i18n provides localized messages for the validation codes used by
// tform and its rules package.
package i18n

import (
	"strings"
	"sync"
)

// Message codes produced by the rules package.
const (
	CodeRequired = "required"
	CodeTooShort = "too_short"
	CodeTooLong  = "too_long"
	CodeTooSmall = "too_small"
	CodeTooBig   = "too_big"
	CodePattern  = "pattern"
)

// Translator retrieves localized messages for validation codes. data provides
// optional parameters to embed in the message (for example, "min" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Messages may
// contain {param} placeholders filled from data.
type dictTranslator struct{ lang string }

var builtinMessages = map[string]map[string]string{
	"en": {
		CodeRequired: "required",
		CodeTooShort: "must be at least {min} characters",
		CodeTooLong:  "must be at most {max} characters",
		CodeTooSmall: "must be at least {min}",
		CodeTooBig:   "must be at most {max}",
		CodePattern:  "invalid format",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msgs, ok := lookupCatalog(t.lang)
	if !ok {
		msgs = builtinMessages["en"]
	}
	msg, ok := msgs[code]
	if !ok {
		if en, found := builtinMessages["en"][code]; found {
			msg = en
		} else {
			return code
		}
	}
	return interpolate(msg, data)
}

func interpolate(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var (
	translatorMu      sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language. Unknown languages
// fall back to "en" per code.
func SetLanguage(lang string) {
	translatorMu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	translatorMu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the built-in English translator.
func SetTranslator(tr Translator) {
	translatorMu.Lock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
	} else {
		currentTranslator = tr
	}
	translatorMu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	translatorMu.RLock()
	tr := currentTranslator
	translatorMu.RUnlock()
	return tr.Message(code, data)
}
