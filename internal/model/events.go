package model

// EventType identifies the type of realtime event
type EventType string

const (
	// Client -> server
	EventSetDifficulty EventType = "set_difficulty"
	EventUpdateScore   EventType = "update_score"

	// Server -> client broadcasts
	EventDifficultySet EventType = "difficulty_set"
	EventScoreUpdated  EventType = "score_updated"
)

// Event is the wire envelope for all realtime messages
type Event struct {
	Type EventType `json:"event"`
	Data any       `json:"data"`
}

// SetDifficultyPayload is sent by a client choosing a difficulty
type SetDifficultyPayload struct {
	Difficulty string `json:"difficulty"`
}

// DifficultySetPayload is rebroadcast to all clients unchanged
type DifficultySetPayload struct {
	Difficulty string `json:"difficulty"`
}

// UpdateScorePayload is sent by a client reporting a finished game
type UpdateScorePayload struct {
	Score int `json:"score"`
}

// ScoreUpdatedPayload announces a new personal best to all clients
type ScoreUpdatedPayload struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
