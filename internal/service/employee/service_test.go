package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
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
	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.Status == status {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := r.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
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

func newEmployeeTestService() employee.EmployeeService {
	clk := clock.Fixed{T: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)}
	return NewEmployeeService(newFakeEmployeeRepo(), clk)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService()

	resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Salary:   "4500.00",
		HireDate: "2024-06-01",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, "4500.00", resp.Salary)
	assert.Equal(t, "2024-06-01", resp.HireDate)
}

func TestEmployeeService_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService()

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:     "",
		Email:    "not-an-email",
		Salary:   "-100",
		HireDate: "June 1st",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs, 4)
}

func TestEmployeeService_Update_PartialFields(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Salary:   "4500.00",
		HireDate: "2024-06-01",
	})
	require.NoError(t, err)

	salary := "5200.00"
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Salary: &salary})
	require.NoError(t, err)

	assert.Equal(t, "5200.00", updated.Salary)
	assert.Equal(t, "Ana Souza", updated.Name)
}

func TestEmployeeService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Salary:   "4500.00",
		HireDate: "2024-06-01",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(ctx, employee.UpdateStatusRequest{ID: created.ID, Status: "ON_LEAVE"})
	require.NoError(t, err)
	assert.Equal(t, "ON_LEAVE", resp.Status)

	_, err = svc.UpdateStatus(ctx, employee.UpdateStatusRequest{ID: created.ID, Status: "RETIRED"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestEmployeeService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_ListByStatus(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService()

	for _, name := range []string{"Ana Souza", "Bruno Lima"} {
		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Name:     name,
			Email:    "person@example.com",
			Salary:   "3000.00",
			HireDate: "2024-06-01",
		})
		require.NoError(t, err)
	}

	active, err := svc.ListByStatus(ctx, employee.StatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	terminated, err := svc.ListByStatus(ctx, employee.StatusTerminated)
	require.NoError(t, err)
	assert.Empty(t, terminated)
}
