package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/slitherhq/slither/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
	base  time.Time
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	path := filepath.Join(s.T().TempDir(), "test.db")

	store, err := Open(path)
	s.Require().NoError(err)

	s.store = store
	s.ctx = context.Background()
	s.base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (s *StoreSuite) newUser(id, username string, highScore int) *model.User {
	return &model.User{
		ID:           model.UserID(id),
		Username:     username,
		PasswordHash: "hash",
		HighScore:    highScore,
		LastPlayed:   s.base,
		CreatedAt:    s.base,
	}
}

func (s *StoreSuite) TestCreateAndGetUser() {
	user := s.newUser("user-1", "alice", 0)

	err := s.store.CreateUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.store.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal("hash", retrieved.PasswordHash)
	s.True(retrieved.LastPlayed.Equal(s.base))
	s.True(retrieved.CreatedAt.Equal(s.base))
}

func (s *StoreSuite) TestCreateUserDuplicateUsername() {
	s.Require().NoError(s.store.CreateUser(s.ctx, s.newUser("user-1", "alice", 0)))

	err := s.store.CreateUser(s.ctx, s.newUser("user-2", "alice", 0))
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *StoreSuite) TestGetUserNotFound() {
	_, err := s.store.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StoreSuite) TestGetUserByUsername() {
	s.Require().NoError(s.store.CreateUser(s.ctx, s.newUser("user-1", "alice", 0)))

	retrieved, err := s.store.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)
}

func (s *StoreSuite) TestGetUserByUsernameNotFound() {
	_, err := s.store.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StoreSuite) TestUpdateHighScore() {
	s.Require().NoError(s.store.CreateUser(s.ctx, s.newUser("user-1", "alice", 10)))

	playedAt := s.base.Add(time.Hour)
	err := s.store.UpdateHighScore(s.ctx, "user-1", 42, playedAt)
	s.Require().NoError(err)

	retrieved, _ := s.store.GetUser(s.ctx, "user-1")
	s.Equal(42, retrieved.HighScore)
	s.True(retrieved.LastPlayed.Equal(playedAt))
}

func (s *StoreSuite) TestUpdateHighScoreNotFound() {
	err := s.store.UpdateHighScore(s.ctx, "nonexistent", 42, s.base)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StoreSuite) TestTopScoresOrdering() {
	s.Require().NoError(s.store.CreateUser(s.ctx, s.newUser("user-1", "alice", 50)))
	s.Require().NoError(s.store.CreateUser(s.ctx, s.newUser("user-2", "bob", 90)))
	s.Require().NoError(s.store.CreateUser(s.ctx, s.newUser("user-3", "carol", 30)))

	users, err := s.store.TopScores(s.ctx, 10)
	s.Require().NoError(err)

	s.Require().Len(users, 3)
	s.Equal("bob", users[0].Username)
	s.Equal("alice", users[1].Username)
	s.Equal("carol", users[2].Username)
}

func (s *StoreSuite) TestTopScoresLimit() {
	for i, name := range []string{"alice", "bob", "carol", "dave"} {
		s.Require().NoError(s.store.CreateUser(s.ctx, s.newUser(name+"-id", name, (i+1)*10)))
	}

	users, err := s.store.TopScores(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(users, 2)
	s.Equal("dave", users[0].Username)
}

func (s *StoreSuite) TestTopScoresTieBreakEarlierPlayWins() {
	early := s.newUser("user-1", "early", 50)
	late := s.newUser("user-2", "late", 50)
	late.LastPlayed = s.base.Add(time.Hour)

	s.Require().NoError(s.store.CreateUser(s.ctx, late))
	s.Require().NoError(s.store.CreateUser(s.ctx, early))

	users, err := s.store.TopScores(s.ctx, 10)
	s.Require().NoError(err)

	s.Require().Len(users, 2)
	s.Equal("early", users[0].Username)
	s.Equal("late", users[1].Username)
}

func (s *StoreSuite) TestReopenPreservesData() {
	path := filepath.Join(s.T().TempDir(), "persist.db")

	store, err := Open(path)
	s.Require().NoError(err)
	s.Require().NoError(store.CreateUser(s.ctx, s.newUser("user-1", "alice", 77)))
	s.Require().NoError(store.Close())

	reopened, err := Open(path)
	s.Require().NoError(err)
	defer reopened.Close()

	retrieved, err := reopened.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(77, retrieved.HighScore)
}
