package vacation

import "context"

// VacationRepository defines data access for vacation requests.
type VacationRepository interface {
	Create(ctx context.Context, req VacationRequest) (VacationRequest, error)
	GetByID(ctx context.Context, id string) (VacationRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]VacationRequest, error)
	ListByStatus(ctx context.Context, status VacationStatus) ([]VacationRequest, error)
	Update(ctx context.Context, req VacationRequest) error
}
