package storage

import (
	"context"
	"time"

	"github.com/slitherhq/slither/internal/model"
)

// UserStore defines the interface for user persistence
type UserStore interface {
	// CreateUser inserts a new user. Returns model.ErrUsernameExists if the
	// username is already taken.
	CreateUser(ctx context.Context, user *model.User) error

	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// UpdateHighScore sets a user's high score and last-played timestamp.
	// Callers are responsible for the monotonicity check; the store performs a
	// plain single-row write.
	UpdateHighScore(ctx context.Context, id model.UserID, score int, playedAt time.Time) error

	// TopScores returns up to limit users ordered by high score descending.
	// Ties are broken by last_played ascending, then username.
	TopScores(ctx context.Context, limit int) ([]*model.User, error)

	Close() error
}
