package usecase

import (
	"context"
	"time"

	"github.com/lanshare/lanshare/internal/domain/entities"
	"github.com/lanshare/lanshare/internal/domain/repository"
)

// HealthUseCase aggregates component probes into a service health report
type HealthUseCase struct {
	health  repository.HealthRepository
	version string
	started time.Time
	now     func() time.Time
}

// NewHealthUseCase creates a new health use case
func NewHealthUseCase(health repository.HealthRepository, version string) *HealthUseCase {
	return &HealthUseCase{
		health:  health,
		version: version,
		started: time.Now(),
		now:     time.Now,
	}
}

// Report probes each backing component. The overall status is down as
// soon as any component is.
func (u *HealthUseCase) Report(ctx context.Context) *entities.HealthReport {
	now := u.now()

	components := map[string]entities.ComponentHealth{
		"database":  u.health.CheckDatabase(ctx),
		"itemStore": u.health.CheckItemStore(ctx),
	}

	status := entities.HealthStatusUp
	for _, component := range components {
		if component.Status == entities.HealthStatusDown {
			status = entities.HealthStatusDown
			break
		}
	}

	return &entities.HealthReport{
		Status:     status,
		Version:    u.version,
		Uptime:     now.Sub(u.started).Round(time.Second).String(),
		Timestamp:  now,
		Components: components,
	}
}
