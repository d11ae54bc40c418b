package onboarding

import "context"

// OnboardingService defines business logic for the onboarding
// checklist flow.
type OnboardingService interface {
	// Start resolves a template (explicit id, else the department's
	// active template, else the department-less default), clones its
	// tasks and opens the instance IN_PROGRESS at 0%.
	Start(ctx context.Context, req StartOnboardingRequest) (OnboardingResponse, error)

	// CompleteTask closes one task and recomputes the owning
	// instance's progress; hitting 100% completes the instance.
	CompleteTask(ctx context.Context, req CompleteTaskRequest) (TaskResponse, error)

	// SkipTask records a skip with its reason. Required tasks cannot
	// be skipped. Skipped tasks still count in the progress
	// denominator.
	SkipTask(ctx context.Context, req SkipTaskRequest) (TaskResponse, error)

	AssignMentor(ctx context.Context, onboardingID, mentorID string) (OnboardingResponse, error)

	Get(ctx context.Context, id string) (OnboardingResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) (OnboardingResponse, error)
	ListActive(ctx context.Context) ([]OnboardingResponse, error)
	CountActive(ctx context.Context) (int64, error)
	AverageProgress(ctx context.Context) (float64, error)
}
