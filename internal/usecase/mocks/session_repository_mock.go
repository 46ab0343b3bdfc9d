package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lanshare/lanshare/internal/domain/entities"
)

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

// Upsert mocks the Upsert method
func (m *MockSessionRepository) Upsert(ctx context.Context, session *entities.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// CountActive mocks the CountActive method
func (m *MockSessionRepository) CountActive(ctx context.Context, networkID string, cutoff time.Time) (int, error) {
	args := m.Called(ctx, networkID, cutoff)
	return args.Int(0), args.Error(1)
}

// DeleteSeenBefore mocks the DeleteSeenBefore method
func (m *MockSessionRepository) DeleteSeenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockBlobStore is a mock implementation of BlobStore
type MockBlobStore struct {
	mock.Mock
}

// Put mocks the Put method
func (m *MockBlobStore) Put(ctx context.Context, key string, contentType string, body io.ReadSeeker) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}
