package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, clk clock.Clock) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	salary, _ := decimal.NewFromString(req.Salary)
	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	now := s.clock.Now()
	emp := employee.Employee{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		Salary:       salary,
		HireDate:     hireDate,
		Status:       employee.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Salary != nil {
		salary, _ := decimal.NewFromString(*req.Salary)
		emp.Salary = salary
	}
	emp.UpdatedAt = s.clock.Now()

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) UpdateStatus(ctx context.Context, req employee.UpdateStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.EmployeeStatus(req.Status)
	if err := s.employeeRepo.UpdateStatus(ctx, emp.ID, status); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee status: %w", err)
	}

	emp.Status = status
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return employee.ToResponses(employees), nil
}

func (s *EmployeeServiceImpl) ListByStatus(ctx context.Context, status employee.EmployeeStatus) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return employee.ToResponses(employees), nil
}
