package score

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/slitherhq/slither/internal/dependencies/mocks"
	"github.com/slitherhq/slither/internal/model"
	"github.com/slitherhq/slither/internal/storage/memory"
	"github.com/slitherhq/slither/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
	user    *model.User
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.user = &model.User{
		ID:         "user-1",
		Username:   "alice",
		HighScore:  50,
		LastPlayed: s.clock.Now(),
		CreatedAt:  s.clock.Now(),
	}
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.user))
}

func (s *ServiceSuite) TestSubmitAcceptsHigherScore() {
	updated, err := s.service.Submit(s.ctx, s.user.ID, 60)
	s.Require().NoError(err)
	s.True(updated)

	stored, err := s.storage.GetUser(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Equal(60, stored.HighScore)
}

func (s *ServiceSuite) TestSubmitRejectsEqualScore() {
	updated, err := s.service.Submit(s.ctx, s.user.ID, 50)
	s.Require().NoError(err)
	s.False(updated)

	stored, _ := s.storage.GetUser(s.ctx, s.user.ID)
	s.Equal(50, stored.HighScore)
}

func (s *ServiceSuite) TestSubmitRejectsLowerScore() {
	updated, err := s.service.Submit(s.ctx, s.user.ID, 10)
	s.Require().NoError(err)
	s.False(updated)

	stored, _ := s.storage.GetUser(s.ctx, s.user.ID)
	s.Equal(50, stored.HighScore)
}

func (s *ServiceSuite) TestSubmitUpdatesLastPlayed() {
	s.clock.Advance(2 * time.Hour)

	updated, err := s.service.Submit(s.ctx, s.user.ID, 70)
	s.Require().NoError(err)
	s.True(updated)

	stored, _ := s.storage.GetUser(s.ctx, s.user.ID)
	s.Equal(s.clock.Now().UTC(), stored.LastPlayed)
}

func (s *ServiceSuite) TestSubmitDoesNotTouchLastPlayedWhenRejected() {
	before, _ := s.storage.GetUser(s.ctx, s.user.ID)

	s.clock.Advance(2 * time.Hour)

	updated, err := s.service.Submit(s.ctx, s.user.ID, 10)
	s.Require().NoError(err)
	s.False(updated)

	stored, _ := s.storage.GetUser(s.ctx, s.user.ID)
	s.Equal(before.LastPlayed, stored.LastPlayed)
}

func (s *ServiceSuite) TestSubmitFailsForUnknownUser() {
	_, err := s.service.Submit(s.ctx, "missing", 100)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestSubmitIsMonotonicAcrossCalls() {
	for _, reported := range []int{60, 55, 80, 80, 79} {
		_, err := s.service.Submit(s.ctx, s.user.ID, reported)
		s.Require().NoError(err)
	}

	stored, _ := s.storage.GetUser(s.ctx, s.user.ID)
	s.Equal(80, stored.HighScore)
}
