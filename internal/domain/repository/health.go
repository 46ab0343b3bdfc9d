package repository

import (
	"context"

	"github.com/lanshare/lanshare/internal/domain/entities"
)

// HealthRepository probes the service's backing stores
type HealthRepository interface {
	// CheckDatabase verifies database connectivity
	CheckDatabase(ctx context.Context) entities.ComponentHealth

	// CheckItemStore verifies the shared item tables are queryable
	CheckItemStore(ctx context.Context) entities.ComponentHealth
}
