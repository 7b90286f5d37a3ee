package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/slitherhq/slither/internal/model"
	"github.com/slitherhq/slither/internal/services/auth"
	"github.com/slitherhq/slither/internal/services/score"
)

// Handler serves websocket connections and processes inbound game events.
// Invalid, malformed, or rejected events are dropped silently; the channel
// has no error-reporting path.
type Handler struct {
	hub          *Hub
	authService  *auth.Service
	scoreService *score.Service
	upgrader     websocket.Upgrader
	logger       *slog.Logger
}

// NewHandler creates a websocket Handler
func NewHandler(hub *Hub, authService *auth.Service, scoreService *score.Service, logger *slog.Logger) *Handler {
	return &Handler{
		hub:          hub,
		authService:  authService,
		scoreService: scoreService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger.With(slog.String("component", "ws")),
	}
}

// inboundEvent is the envelope for client -> server messages
type inboundEvent struct {
	Type model.EventType `json:"event"`
	Data json.RawMessage `json:"data"`
}

// Serve upgrades the HTTP request and runs the connection. Unauthenticated
// connections are accepted; they can receive broadcasts and set difficulty
// but their score reports are ignored.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	// Resolve the session cookie before the upgrade; the binding is fixed
	// for the lifetime of the connection
	var user *model.User
	if cookie, err := r.Cookie("session"); err == nil {
		user, _ = h.authService.GetUser(r.Context(), cookie.Value)
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", slog.Any("error", err))
		return
	}

	client := NewClient(h.hub, conn, user, h.logger)
	h.hub.Register(client)

	go client.writePump()
	client.readPump(h)
}

// HandleMessage dispatches one inbound message from a client
func (h *Handler) HandleMessage(c *Client, message []byte) {
	var event inboundEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return
	}

	switch event.Type {
	case model.EventSetDifficulty:
		h.handleSetDifficulty(event.Data)
	case model.EventUpdateScore:
		h.handleUpdateScore(c, event.Data)
	}
}

// handleSetDifficulty rebroadcasts the chosen difficulty to all clients.
// The value is passed through unvalidated.
func (h *Handler) handleSetDifficulty(data json.RawMessage) {
	var payload model.SetDifficultyPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	h.hub.BroadcastEvent(model.EventDifficultySet, model.DifficultySetPayload{
		Difficulty: payload.Difficulty,
	})
}

// handleUpdateScore records a reported score for an authenticated client and
// broadcasts the new personal best when it improves on the stored one
func (h *Handler) handleUpdateScore(c *Client, data json.RawMessage) {
	if !c.authenticated() {
		return
	}

	var payload model.UpdateScorePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	updated, err := h.scoreService.Submit(context.Background(), c.userID, payload.Score)
	if err != nil {
		h.logger.Error("ws score submit failed",
			slog.String("user", c.username),
			slog.Any("error", err))
		return
	}
	if !updated {
		return
	}

	h.hub.BroadcastEvent(model.EventScoreUpdated, model.ScoreUpdatedPayload{
		Username: c.username,
		Score:    payload.Score,
	})
}
