package onboarding

import "context"

// OnboardingRepository defines data access for onboarding instances.
// "One active onboarding per employee" is enforced by a partial unique
// index on (employee_id) WHERE status IN (NOT_STARTED, IN_PROGRESS).
type OnboardingRepository interface {
	Create(ctx context.Context, ob Onboarding) (Onboarding, error)
	GetByID(ctx context.Context, id string) (Onboarding, error)
	GetActiveByEmployee(ctx context.Context, employeeID string) (Onboarding, error)
	ListActive(ctx context.Context) ([]Onboarding, error)
	Update(ctx context.Context, ob Onboarding) error
	CountActive(ctx context.Context) (int64, error)
	AverageProgress(ctx context.Context) (float64, error)
}

// TaskRepository defines data access for the cloned task rows.
type TaskRepository interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	ListByOnboarding(ctx context.Context, onboardingID string) ([]Task, error)
	Update(ctx context.Context, task Task) error
	CountByOnboarding(ctx context.Context, onboardingID string) (int64, error)
	CountCompletedByOnboarding(ctx context.Context, onboardingID string) (int64, error)
}

// TemplateRepository defines data access for templates; tasks are
// loaded eagerly with their template.
type TemplateRepository interface {
	GetByID(ctx context.Context, id string) (Template, error)
	GetActiveByDepartment(ctx context.Context, departmentID string) (Template, error)
	GetDefaultActive(ctx context.Context) (Template, error)
	List(ctx context.Context) ([]Template, error)
}
