package offboarding

import (
	"context"
	"time"
)

// TerminationCount aggregates terminations by type over a period.
type TerminationCount struct {
	Type  TerminationType
	Count int64
}

// OffboardingRepository defines data access for offboarding instances.
// "One active offboarding per employee" is enforced by a partial
// unique index on (employee_id) WHERE status NOT IN (COMPLETED,
// CANCELLED).
type OffboardingRepository interface {
	Create(ctx context.Context, ob Offboarding) (Offboarding, error)
	GetByID(ctx context.Context, id string) (Offboarding, error)
	GetActiveByEmployee(ctx context.Context, employeeID string) (Offboarding, error)
	ListActive(ctx context.Context) ([]Offboarding, error)
	Update(ctx context.Context, ob Offboarding) error
	CountActive(ctx context.Context) (int64, error)
	CountByTerminationType(ctx context.Context, start, end time.Time) ([]TerminationCount, error)
}
