package employee

import "context"

// EmployeeService manages the employee master records.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	ListByStatus(ctx context.Context, status EmployeeStatus) ([]EmployeeResponse, error)
}
