package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lanshare/lanshare/internal/domain/entities"
)

// MockHealthRepository is a mock implementation of HealthRepository
type MockHealthRepository struct {
	mock.Mock
}

// CheckDatabase mocks the CheckDatabase method
func (m *MockHealthRepository) CheckDatabase(ctx context.Context) entities.ComponentHealth {
	args := m.Called(ctx)
	return args.Get(0).(entities.ComponentHealth)
}

// CheckItemStore mocks the CheckItemStore method
func (m *MockHealthRepository) CheckItemStore(ctx context.Context) entities.ComponentHealth {
	args := m.Called(ctx)
	return args.Get(0).(entities.ComponentHealth)
}
