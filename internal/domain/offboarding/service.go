package offboarding

import (
	"context"
	"time"
)

// OffboardingService defines business logic for the termination flow.
type OffboardingService interface {
	// Start opens a new instance; fails when the employee already has
	// an active one. Last working day defaults to the termination
	// date, notice date to today.
	Start(ctx context.Context, req StartOffboardingRequest) (OffboardingResponse, error)

	// UpdateChecklist applies the provided flags; when all five plus
	// the exit interview are done it completes the instance and
	// terminates the employee.
	UpdateChecklist(ctx context.Context, req UpdateChecklistRequest) (OffboardingResponse, error)

	ScheduleExitInterview(ctx context.Context, id string, interviewDate time.Time) (OffboardingResponse, error)
	CompleteExitInterview(ctx context.Context, req CompleteExitInterviewRequest) (OffboardingResponse, error)

	// Complete forces completion regardless of checklist state.
	Complete(ctx context.Context, id string) (OffboardingResponse, error)

	Get(ctx context.Context, id string) (OffboardingResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) (OffboardingResponse, error)
	ListActive(ctx context.Context) ([]OffboardingResponse, error)
	CountActive(ctx context.Context) (int64, error)
	TerminationStats(ctx context.Context, start, end time.Time) ([]TerminationCount, error)
}
