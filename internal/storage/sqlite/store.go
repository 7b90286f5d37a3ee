// Package sqlite provides a SQLite-backed user store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/slitherhq/slither/internal/model"
	"github.com/slitherhq/slither/internal/storage"
	"github.com/slitherhq/slither/internal/storage/sqlite/migrations"
)

// Store persists users in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Ensure Store implements the interface
var _ storage.UserStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite user store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO users (id, username, password_hash, high_score, last_played, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		string(user.ID),
		user.Username,
		user.PasswordHash,
		user.HighScore,
		toMillis(user.LastPlayed),
		toMillis(user.CreatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return model.ErrUsernameExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, username, password_hash, high_score, last_played, created_at
FROM users WHERE id = ?`, string(id))
	return scanUser(row)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, username, password_hash, high_score, last_played, created_at
FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (s *Store) UpdateHighScore(ctx context.Context, id model.UserID, score int, playedAt time.Time) error {
	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE users SET high_score = ?, last_played = ? WHERE id = ?`,
		score, toMillis(playedAt), string(id))
	if err != nil {
		return fmt.Errorf("update high score: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update high score: %w", err)
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (s *Store) TopScores(ctx context.Context, limit int) ([]*model.User, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, username, password_hash, high_score, last_played, created_at
FROM users
ORDER BY high_score DESC, last_played ASC, username ASC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top scores: %w", err)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row *sql.Row) (*model.User, error) {
	user, err := scanUserRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	return user, err
}

func scanUserRow(row rowScanner) (*model.User, error) {
	var (
		user       model.User
		id         string
		lastPlayed int64
		createdAt  int64
	)
	if err := row.Scan(&id, &user.Username, &user.PasswordHash, &user.HighScore, &lastPlayed, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.ID = model.UserID(id)
	user.LastPlayed = fromMillis(lastPlayed)
	user.CreatedAt = fromMillis(createdAt)
	return &user, nil
}

func isUniqueConstraintError(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
