package middleware

import (
	"context"
	"net/http"

	"github.com/slitherhq/slither/internal/i18n"
)

const (
	// LangCookieName is the cookie holding the chosen UI language
	LangCookieName = "lang"

	langContextKey = contextKey("lang")
)

// GetLang retrieves the UI language code from the request context
func GetLang(ctx context.Context) string {
	lang, _ := ctx.Value(langContextKey).(string)
	if lang == "" {
		return i18n.DefaultLang
	}
	return lang
}

// Lang returns middleware that resolves the UI language from the lang cookie.
// Unknown or missing codes fall back to the default language.
func Lang() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := i18n.DefaultLang
			if cookie, err := r.Cookie(LangCookieName); err == nil && i18n.Known(cookie.Value) {
				lang = cookie.Value
			}

			ctx := context.WithValue(r.Context(), langContextKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
