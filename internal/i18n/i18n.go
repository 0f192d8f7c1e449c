// Package i18n holds the console's message catalog and picks a language
// for each request.
package i18n

import (
	"golang.org/x/text/language"
)

type Lang string

const (
	Korean  Lang = "ko"
	English Lang = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.Korean, language.English})

// Parse maps a configured language name to a supported Lang.
func Parse(s string, fallback Lang) Lang {
	switch Lang(s) {
	case Korean, English:
		return Lang(s)
	}
	return fallback
}

// Match picks the best supported language for an Accept-Language header.
func Match(acceptLanguage string, fallback Lang) Lang {
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	tag, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	base, _ := tag.Base()
	return Parse(base.String(), fallback)
}

// T translates key, falling back to Korean and then to the key itself.
func T(lang Lang, key string) string {
	if msg, ok := catalog[lang][key]; ok {
		return msg
	}
	if msg, ok := catalog[Korean][key]; ok {
		return msg
	}
	return key
}

// Has reports whether key is a known message.
func Has(key string) bool {
	_, ok := catalog[Korean][key]
	return ok
}
