package redis

import (
	"fmt"

	"github.com/slitherhq/slither/internal/model"
)

// Key prefix for all snake-related data
const keyPrefix = "snake"

// userKey returns the Redis key for a User record
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// leaderboardKey returns the Redis key for the high-score sorted set
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}
