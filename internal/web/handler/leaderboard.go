package handler

import (
	"log/slog"
	"net/http"

	"github.com/slitherhq/slither/internal/services/leaderboard"
	"github.com/slitherhq/slither/internal/web/templates"
)

// LeaderboardHandler handles the leaderboard page
type LeaderboardHandler struct {
	service  *leaderboard.Service
	renderer *templates.Renderer
	logger   *slog.Logger
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(service *leaderboard.Service, renderer *templates.Renderer, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Leaderboard renders the top-10 table
func (h *LeaderboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.TopScores(r.Context(), leaderboard.DefaultLimit)
	if err != nil {
		h.logger.Error("leaderboard query failed", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pageData(r, "Leaderboard")
	data.Title = data.T["leaderboard_title"]
	data.Users = users
	renderPage(w, r, h.renderer, "leaderboard.html", data)
}
