package score

import (
	"context"
	"log/slog"

	"github.com/slitherhq/slither/internal/dependencies/clock"
	"github.com/slitherhq/slither/internal/model"
	"github.com/slitherhq/slither/internal/storage"
)

// Service applies reported game scores to the user store
type Service struct {
	store  storage.UserStore
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new score Service
func New(store storage.UserStore, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clock,
		logger: logger.With(slog.String("component", "score")),
	}
}

// Submit records a reported score for a user. The stored high score is
// monotonically non-decreasing: the row is only written when the reported
// score beats the stored value. Returns true when the score was accepted.
func (s *Service) Submit(ctx context.Context, userID model.UserID, reported int) (bool, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return false, err
	}

	if reported <= user.HighScore {
		return false, nil
	}

	playedAt := s.clock.Now().UTC()
	if err := s.store.UpdateHighScore(ctx, userID, reported, playedAt); err != nil {
		return false, err
	}

	s.logger.Info("high score updated",
		slog.String("user_id", string(userID)),
		slog.String("username", user.Username),
		slog.Int("score", reported))

	return true, nil
}
