package testutil

import (
	"context"
	"sync"
	"time"

	"nepalidate/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockDateResolver is a mock for service.DateResolver
type MockDateResolver struct {
	mock.Mock
}

func (m *MockDateResolver) Resolve(ctx context.Context, today time.Time) (domain.RawDateToken, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(domain.RawDateToken), args.Error(1)
}

// MockTokenParser is a mock for service.TokenParser
type MockTokenParser struct {
	mock.Mock
}

func (m *MockTokenParser) Parse(token domain.RawDateToken) (domain.LocalDate, error) {
	args := m.Called(token)
	return args.Get(0).(domain.LocalDate), args.Error(1)
}

// MockHistoryRepository is a mock for repository.HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) SaveResolution(date time.Time, token string) error {
	args := m.Called(date, token)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetResolution(date time.Time) (string, error) {
	args := m.Called(date)
	return args.String(0), args.Error(1)
}

func (m *MockHistoryRepository) CleanOldResolutions(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// RecordingLabel remembers every text written to it
type RecordingLabel struct {
	mu    sync.Mutex
	texts []string
}

func (l *RecordingLabel) Set(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.texts = append(l.texts, text)
}

// Texts returns a copy of the recorded writes
func (l *RecordingLabel) Texts() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.texts...)
}

// MockDateRefresher is a mock for handler.DateRefresher
type MockDateRefresher struct {
	mock.Mock
}

func (m *MockDateRefresher) Refresh(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}
