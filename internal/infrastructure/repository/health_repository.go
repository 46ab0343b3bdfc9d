package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lanshare/lanshare/internal/domain/entities"
	"github.com/lanshare/lanshare/internal/domain/repository"
)

// HealthRepositoryImpl implements HealthRepository over the SQLite handle
type HealthRepositoryImpl struct {
	db *sql.DB
}

// NewHealthRepository creates a new health repository
func NewHealthRepository(db *sql.DB) repository.HealthRepository {
	return &HealthRepositoryImpl{db: db}
}

// CheckDatabase verifies database connectivity
func (h *HealthRepositoryImpl) CheckDatabase(ctx context.Context) entities.ComponentHealth {
	if err := h.db.PingContext(ctx); err != nil {
		return entities.ComponentHealth{
			Status:  entities.HealthStatusDown,
			Message: fmt.Sprintf("ping failed: %v", err),
		}
	}
	return entities.ComponentHealth{Status: entities.HealthStatusUp}
}

// CheckItemStore verifies the shared item tables are queryable
func (h *HealthRepositoryImpl) CheckItemStore(ctx context.Context) entities.ComponentHealth {
	var count int64
	err := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shared_items`).Scan(&count)
	if err != nil {
		return entities.ComponentHealth{
			Status:  entities.HealthStatusDown,
			Message: fmt.Sprintf("item store query failed: %v", err),
		}
	}
	return entities.ComponentHealth{
		Status:  entities.HealthStatusUp,
		Message: fmt.Sprintf("%d items stored", count),
	}
}
