package middleware

import (
	"net/http"

	"fiscalblog/internal/locale"
	"fiscalblog/internal/reqctx"

	"github.com/gorilla/mux"
)

// Locale кладёт язык запроса в контекст: {locale} из пути, затем ?lang=, затем Accept-Language.
// Неподдерживаемый {locale} в пути — 400. defaultLocale — язык, если заголовок ничего не дал.
func Locale(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var loc string
			if raw, ok := mux.Vars(r)["locale"]; ok {
				loc = locale.Normalize(raw)
				if loc == "" {
					http.Error(w, "unsupported locale", http.StatusBadRequest)
					return
				}
			} else if q := locale.Normalize(r.URL.Query().Get("lang")); q != "" {
				loc = q
			} else {
				loc = locale.Negotiate(r.Header.Get("Accept-Language"), defaultLocale)
			}
			w.Header().Set("Content-Language", loc)
			next.ServeHTTP(w, r.WithContext(reqctx.WithLocale(r.Context(), loc)))
		})
	}
}
