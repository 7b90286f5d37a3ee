package handler

import (
	"net/http"

	"github.com/slitherhq/slither/internal/web/templates"
)

// HomeHandler handles the home page
type HomeHandler struct {
	renderer *templates.Renderer
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(renderer *templates.Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pageData(r, "Snake Game")
	renderPage(w, r, h.renderer, "home.html", data)
}
