package handler

import (
	"net/http"

	"github.com/slitherhq/slither/internal/i18n"
	"github.com/slitherhq/slither/internal/web/middleware"
	"github.com/slitherhq/slither/internal/web/templates"
)

// pageData assembles the common layout data for a request
func pageData(r *http.Request, title string) *templates.PageData {
	lang := middleware.GetLang(r.Context())
	return &templates.PageData{
		Title: title,
		Path:  r.URL.Path,
		User:  middleware.GetUser(r.Context()),
		Flash: middleware.GetFlash(r.Context()),
		Lang:  lang,
		T:     i18n.Table(lang),
	}
}

// renderPage executes a page template, falling back to a plain 500 on error
func renderPage(w http.ResponseWriter, r *http.Request, renderer *templates.Renderer, page string, data *templates.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, page, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
