package factory

import (
	"time"

	"github.com/slitherhq/slither/internal/dependencies/mocks"
	"github.com/slitherhq/slither/internal/services/auth"
	"github.com/slitherhq/slither/internal/storage/memory"
	"github.com/slitherhq/slither/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App backed by in-memory storage and a mocked clock
func NewTestApp() (*TestApp, error) {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app, err := newWithDependencies(store, mockClock, auth.DefaultConfig(), testutil.NopLogger())
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}, nil
}
