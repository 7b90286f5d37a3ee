package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents a registered player account
type User struct {
	ID           UserID
	Username     string // login username (immutable, unique)
	PasswordHash string // bcrypt hash, never rendered or serialized to clients
	HighScore    int
	LastPlayed   time.Time // UTC; defaults to creation time
	CreatedAt    time.Time
}
