package vacation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/vacation"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type fakeVacationRepo struct {
	requests map[string]vacation.VacationRequest
}

func newFakeVacationRepo() *fakeVacationRepo {
	return &fakeVacationRepo{requests: make(map[string]vacation.VacationRequest)}
}

func (r *fakeVacationRepo) Create(ctx context.Context, req vacation.VacationRequest) (vacation.VacationRequest, error) {
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeVacationRepo) GetByID(ctx context.Context, id string) (vacation.VacationRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return vacation.VacationRequest{}, vacation.ErrRequestNotFound
	}
	return req, nil
}

func (r *fakeVacationRepo) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationRequest, error) {
	var result []vacation.VacationRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *fakeVacationRepo) ListByStatus(ctx context.Context, status vacation.VacationStatus) ([]vacation.VacationRequest, error) {
	var result []vacation.VacationRequest
	for _, req := range r.requests {
		if req.Status == status {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *fakeVacationRepo) Update(ctx context.Context, req vacation.VacationRequest) error {
	if _, ok := r.requests[req.ID]; !ok {
		return vacation.ErrRequestNotFound
	}
	r.requests[req.ID] = req
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range emps {
		repo.employees[emp.ID] = emp
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByStatus(ctx context.Context, status employee.EmployeeStatus) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	r.employees[emp.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.EmployeeStatus) error {
	emp, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	r.employees[id] = emp
	return nil
}

func newVacationTestService() vacation.VacationService {
	employees := newFakeEmployeeRepo(employee.Employee{
		ID:     "emp-1",
		Name:   "Test Employee",
		Status: employee.StatusActive,
	})
	clk := clock.Fixed{T: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)}
	return NewVacationService(newFakeVacationRepo(), employees, nil, clk)
}

func TestVacationService_Create_InclusiveDays(t *testing.T) {
	ctx := context.Background()
	svc := newVacationTestService()

	resp, err := svc.Create(ctx, vacation.CreateVacationRequest{
		EmployeeID: "emp-1",
		Type:       "VACATION",
		StartDate:  "2024-07-01",
		EndDate:    "2024-07-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.Days)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestVacationService_Create_SingleDay(t *testing.T) {
	ctx := context.Background()
	svc := newVacationTestService()

	resp, err := svc.Create(ctx, vacation.CreateVacationRequest{
		EmployeeID: "emp-1",
		Type:       "SICK_LEAVE",
		StartDate:  "2024-07-01",
		EndDate:    "2024-07-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

func TestVacationService_Create_EndBeforeStart(t *testing.T) {
	ctx := context.Background()
	svc := newVacationTestService()

	_, err := svc.Create(ctx, vacation.CreateVacationRequest{
		EmployeeID: "emp-1",
		Type:       "VACATION",
		StartDate:  "2024-07-10",
		EndDate:    "2024-07-01",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestVacationService_Approve_OnlyPending(t *testing.T) {
	ctx := context.Background()
	svc := newVacationTestService()

	resp, err := svc.Create(ctx, vacation.CreateVacationRequest{
		EmployeeID: "emp-1",
		Type:       "VACATION",
		StartDate:  "2024-07-01",
		EndDate:    "2024-07-05",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, resp.ID, "manager-1")
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "manager-1", *approved.ReviewedBy)

	_, err = svc.Approve(ctx, resp.ID, "manager-1")
	assert.ErrorIs(t, err, vacation.ErrAlreadyProcessed)
}

func TestVacationService_Reject(t *testing.T) {
	ctx := context.Background()
	svc := newVacationTestService()

	resp, err := svc.Create(ctx, vacation.CreateVacationRequest{
		EmployeeID: "emp-1",
		Type:       "VACATION",
		StartDate:  "2024-07-01",
		EndDate:    "2024-07-05",
	})
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, resp.ID, "manager-1", "team shortage")
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "team shortage", *rejected.RejectionReason)

	_, err = svc.Cancel(ctx, resp.ID)
	assert.ErrorIs(t, err, vacation.ErrAlreadyProcessed)
}

func TestVacationService_ListPending(t *testing.T) {
	ctx := context.Background()
	svc := newVacationTestService()

	first, err := svc.Create(ctx, vacation.CreateVacationRequest{
		EmployeeID: "emp-1",
		Type:       "VACATION",
		StartDate:  "2024-07-01",
		EndDate:    "2024-07-05",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, vacation.CreateVacationRequest{
		EmployeeID: "emp-1",
		Type:       "PERSONAL",
		StartDate:  "2024-08-01",
		EndDate:    "2024-08-02",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, first.ID, "manager-1")
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
