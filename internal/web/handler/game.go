package handler

import (
	"net/http"

	"github.com/slitherhq/slither/internal/web/templates"
)

// GameHandler handles the game page
type GameHandler struct {
	renderer *templates.Renderer
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(renderer *templates.Renderer) *GameHandler {
	return &GameHandler{renderer: renderer}
}

// Game renders the game page. Auth is enforced by the router middleware.
func (h *GameHandler) Game(w http.ResponseWriter, r *http.Request) {
	data := pageData(r, "Snake Game")
	data.Title = data.T["game_title"]
	renderPage(w, r, h.renderer, "game.html", data)
}
