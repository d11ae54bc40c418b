package vacation

import "context"

// VacationService handles time-off requests and their review.
type VacationService interface {
	Create(ctx context.Context, req CreateVacationRequest) (VacationResponse, error)
	Approve(ctx context.Context, id, reviewerID string) (VacationResponse, error)
	Reject(ctx context.Context, id, reviewerID, reason string) (VacationResponse, error)
	Cancel(ctx context.Context, id string) (VacationResponse, error)
	Get(ctx context.Context, id string) (VacationResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]VacationResponse, error)
	ListPending(ctx context.Context) ([]VacationResponse, error)
}
