package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lanshare/lanshare/internal/domain/entities"
)

// MockItemRepository is a mock implementation of ItemRepository
type MockItemRepository struct {
	mock.Mock
}

// Insert mocks the Insert method
func (m *MockItemRepository) Insert(ctx context.Context, item *entities.SharedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// ListLive mocks the ListLive method
func (m *MockItemRepository) ListLive(ctx context.Context, networkID string, now time.Time, limit int) ([]*entities.SharedItem, error) {
	args := m.Called(ctx, networkID, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SharedItem), args.Error(1)
}

// GetLive mocks the GetLive method
func (m *MockItemRepository) GetLive(ctx context.Context, id string, now time.Time) (*entities.SharedItem, error) {
	args := m.Called(ctx, id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SharedItem), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// IncrementDownloads mocks the IncrementDownloads method
func (m *MockItemRepository) IncrementDownloads(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// LiveUsage mocks the LiveUsage method
func (m *MockItemRepository) LiveUsage(ctx context.Context, networkID string, now time.Time) (*entities.NetworkUsage, error) {
	args := m.Called(ctx, networkID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.NetworkUsage), args.Error(1)
}

// LiveStats mocks the LiveStats method
func (m *MockItemRepository) LiveStats(ctx context.Context, networkID string, now time.Time) (*entities.ShareStats, error) {
	args := m.Called(ctx, networkID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ShareStats), args.Error(1)
}

// DeleteExpired mocks the DeleteExpired method
func (m *MockItemRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteCreatedBefore mocks the DeleteCreatedBefore method
func (m *MockItemRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
