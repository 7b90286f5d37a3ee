package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/slitherhq/slither/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
	base    time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
	s.base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newUser(id, username string, highScore int) *model.User {
	return &model.User{
		ID:           model.UserID(id),
		Username:     username,
		PasswordHash: "hash",
		HighScore:    highScore,
		LastPlayed:   s.base,
		CreatedAt:    s.base,
	}
}

func (s *StorageSuite) TestCreateAndGetUser() {
	user := s.newUser("user-1", "alice", 0)

	err := s.storage.CreateUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal("hash", retrieved.PasswordHash)
}

func (s *StorageSuite) TestCreateUserDuplicateUsername() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("user-1", "alice", 0)))

	err := s.storage.CreateUser(s.ctx, s.newUser("user-2", "alice", 0))
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("user-1", "alice", 0)))

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateHighScore() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("user-1", "alice", 10)))

	playedAt := s.base.Add(time.Hour)
	err := s.storage.UpdateHighScore(s.ctx, "user-1", 42, playedAt)
	s.Require().NoError(err)

	retrieved, _ := s.storage.GetUser(s.ctx, "user-1")
	s.Equal(42, retrieved.HighScore)
	s.True(retrieved.LastPlayed.Equal(playedAt))
}

func (s *StorageSuite) TestUpdateHighScoreNotFound() {
	err := s.storage.UpdateHighScore(s.ctx, "nonexistent", 42, s.base)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateHighScoreReordersLeaderboard() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("user-1", "alice", 10)))
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("user-2", "bob", 20)))

	s.Require().NoError(s.storage.UpdateHighScore(s.ctx, "user-1", 30, s.base.Add(time.Hour)))

	users, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Username)
}

func (s *StorageSuite) TestTopScoresOrdering() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("user-1", "alice", 50)))
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("user-2", "bob", 90)))
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("user-3", "carol", 30)))

	users, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)

	s.Require().Len(users, 3)
	s.Equal("bob", users[0].Username)
	s.Equal("alice", users[1].Username)
	s.Equal("carol", users[2].Username)
}

func (s *StorageSuite) TestTopScoresLimit() {
	for i, name := range []string{"alice", "bob", "carol", "dave"} {
		s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser(name+"-id", name, (i+1)*10)))
	}

	users, err := s.storage.TopScores(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(users, 2)
	s.Equal("dave", users[0].Username)
}

func (s *StorageSuite) TestTopScoresTieBreakEarlierPlayWins() {
	early := s.newUser("user-1", "early", 50)
	late := s.newUser("user-2", "late", 50)
	late.LastPlayed = s.base.Add(time.Hour)

	s.Require().NoError(s.storage.CreateUser(s.ctx, late))
	s.Require().NoError(s.storage.CreateUser(s.ctx, early))

	users, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)

	s.Require().Len(users, 2)
	s.Equal("early", users[0].Username)
	s.Equal("late", users[1].Username)
}
