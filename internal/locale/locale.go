// Package locale описывает поддерживаемые языки сайта и выбор языка из запроса.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	Spanish = "es"
	English = "en"
	Catalan = "ca"

	Default = Spanish
)

// Supported — порядок важен: первый элемент используется матчером как запасной вариант.
var Supported = []string{Spanish, English, Catalan}

var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
	language.Catalan,
})

func IsSupported(loc string) bool {
	for _, s := range Supported {
		if s == loc {
			return true
		}
	}
	return false
}

// Normalize приводит "es-ES", "EN_us" и т.п. к базовому коду.
// Возвращает "" для неподдерживаемого языка.
func Normalize(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	raw = strings.ReplaceAll(raw, "_", "-")
	if i := strings.IndexByte(raw, '-'); i > 0 {
		raw = raw[:i]
	}
	if IsSupported(raw) {
		return raw
	}
	return ""
}

// Negotiate выбирает язык по заголовку Accept-Language.
// Если ни один язык не подходит, возвращает fallback (или Default, если fallback не поддерживается).
func Negotiate(acceptLanguage, fallback string) string {
	if !IsSupported(fallback) {
		fallback = Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}
