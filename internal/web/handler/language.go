package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/slitherhq/slither/internal/i18n"
	"github.com/slitherhq/slither/internal/web/middleware"
)

// LanguageHandler switches the UI language
type LanguageHandler struct{}

// NewLanguageHandler creates a new LanguageHandler
func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

// SetLanguage sets the language cookie when the code is known and redirects
// back to the referring page. Unknown codes leave the cookie unchanged.
func (h *LanguageHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lang := vars["lang"]

	if i18n.Known(lang) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.LangCookieName,
			Value:    lang,
			Path:     "/",
			MaxAge:   86400 * 365,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
