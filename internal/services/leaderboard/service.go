package leaderboard

import (
	"context"

	"github.com/slitherhq/slither/internal/model"
	"github.com/slitherhq/slither/internal/storage"
)

// DefaultLimit is the fixed leaderboard size shown on the web page
const DefaultLimit = 10

// Service provides read-only leaderboard queries
type Service struct {
	store storage.UserStore
}

// New creates a new leaderboard Service
func New(store storage.UserStore) *Service {
	return &Service{store: store}
}

// TopScores returns up to limit users ordered by high score descending.
// A non-positive limit falls back to DefaultLimit.
func (s *Service) TopScores(ctx context.Context, limit int) ([]*model.User, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.store.TopScores(ctx, limit)
}
