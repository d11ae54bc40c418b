package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/domain/payroll"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	calculator   *TaxCalculator
	notifier     notification.NotificationService
	clock        clock.Clock
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	calculator *TaxCalculator,
	notifier notification.NotificationService,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		calculator:   calculator,
		notifier:     notifier,
		clock:        clk,
	}
}

func (s *PayrollServiceImpl) CreateDraft(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	_, err = s.payrollRepo.GetByEmployeeAndPeriod(ctx, emp.ID, req.ReferenceYear, req.ReferenceMonth)
	if err == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollAlreadyExists
	}
	if !errors.Is(err, payroll.ErrPayrollNotFound) {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to check existing payroll: %w", err)
	}

	now := s.clock.Now()
	record := payroll.Payroll{
		ID:             uuid.New().String(),
		EmployeeID:     emp.ID,
		ReferenceYear:  req.ReferenceYear,
		ReferenceMonth: req.ReferenceMonth,
		BaseSalary:     emp.Salary,
		Status:         payroll.StatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return payroll.ToResponse(created), nil
}

func (s *PayrollServiceImpl) UpdateLineItems(ctx context.Context, req payroll.UpdateLineItemsRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.Status != payroll.StatusDraft && record.Status != payroll.StatusCalculated {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotEditable
	}

	applyIfSet := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	applyIfSet(&record.OvertimeHours, req.OvertimeHours)
	applyIfSet(&record.OvertimeValue, req.OvertimeValue)
	applyIfSet(&record.Bonus, req.Bonus)
	applyIfSet(&record.Commission, req.Commission)
	applyIfSet(&record.MealAllowance, req.MealAllowance)
	applyIfSet(&record.TransportAllowance, req.TransportAllowance)
	applyIfSet(&record.HealthAllowance, req.HealthAllowance)
	applyIfSet(&record.OtherEarnings, req.OtherEarnings)
	applyIfSet(&record.HealthDiscount, req.HealthDiscount)
	applyIfSet(&record.DentalDiscount, req.DentalDiscount)
	applyIfSet(&record.MealDiscount, req.MealDiscount)
	applyIfSet(&record.TransportDiscount, req.TransportDiscount)
	applyIfSet(&record.LoanDiscount, req.LoanDiscount)
	applyIfSet(&record.OtherDeductions, req.OtherDeductions)
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	record.UpdatedAt = s.clock.Now()
	if err := s.payrollRepo.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) Calculate(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.Status != payroll.StatusDraft && record.Status != payroll.StatusCalculated {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotEditable
	}

	record.GrossSalary = record.BaseSalary.Add(record.TotalEarnings()).Round(2)

	taxes := s.calculator.Calculate(record.GrossSalary)
	record.SocialSecurityValue = taxes.SocialSecurityValue
	record.SocialSecurityRate = taxes.SocialSecurityRate
	record.IncomeTaxValue = taxes.IncomeTaxValue
	record.IncomeTaxRate = taxes.IncomeTaxRate
	record.StatutoryFundValue = taxes.StatutoryFundValue

	record.TotalDeductions = taxes.SocialSecurityValue.
		Add(taxes.IncomeTaxValue).
		Add(taxes.StatutoryFundValue).
		Add(record.HealthDiscount).
		Add(record.DentalDiscount).
		Add(record.MealDiscount).
		Add(record.TransportDiscount).
		Add(record.LoanDiscount).
		Add(record.OtherDeductions).
		Round(2)
	record.NetSalary = record.GrossSalary.Sub(record.TotalDeductions).Round(2)

	now := s.clock.Now()
	record.Status = payroll.StatusCalculated
	record.ProcessedAt = &now
	record.UpdatedAt = now

	if err := s.payrollRepo.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) Approve(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.Status != payroll.StatusCalculated {
		return payroll.PayrollResponse{}, payroll.ErrNotCalculated
	}

	record.Status = payroll.StatusApproved
	record.UpdatedAt = s.clock.Now()
	if err := s.payrollRepo.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	s.notify(ctx, record, notification.TypePayrollApproved, "Payroll approved",
		fmt.Sprintf("Your payroll for %02d/%d was approved.", record.ReferenceMonth, record.ReferenceYear))

	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.Status != payroll.StatusApproved {
		return payroll.PayrollResponse{}, payroll.ErrNotApproved
	}

	now := s.clock.Now()
	record.Status = payroll.StatusPaid
	record.PaymentDate = &now
	record.UpdatedAt = now
	if err := s.payrollRepo.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	s.notify(ctx, record, notification.TypePayrollPaid, "Payroll paid",
		fmt.Sprintf("Your payroll for %02d/%d was paid.", record.ReferenceMonth, record.ReferenceYear))

	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) Cancel(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.Status == payroll.StatusPaid {
		return payroll.PayrollResponse{}, payroll.ErrAlreadyPaid
	}

	record.Status = payroll.StatusCancelled
	record.UpdatedAt = s.clock.Now()
	if err := s.payrollRepo.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) GenerateForPeriod(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetByStatus(ctx, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	created := make([]payroll.PayrollResponse, 0, len(employees))
	for _, emp := range employees {
		_, err := s.payrollRepo.GetByEmployeeAndPeriod(ctx, emp.ID, req.ReferenceYear, req.ReferenceMonth)
		if err == nil {
			continue
		}
		if !errors.Is(err, payroll.ErrPayrollNotFound) {
			return nil, fmt.Errorf("failed to check existing payroll: %w", err)
		}

		now := s.clock.Now()
		record := payroll.Payroll{
			ID:             uuid.New().String(),
			EmployeeID:     emp.ID,
			ReferenceYear:  req.ReferenceYear,
			ReferenceMonth: req.ReferenceMonth,
			BaseSalary:     emp.Salary,
			Status:         payroll.StatusDraft,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		stored, err := s.payrollRepo.Create(ctx, record)
		if err != nil {
			// A concurrent generate may have created the record first.
			if errors.Is(err, payroll.ErrPayrollAlreadyExists) {
				continue
			}
			return nil, fmt.Errorf("failed to create payroll record: %w", err)
		}
		created = append(created, payroll.ToResponse(stored))

		s.notify(ctx, stored, notification.TypePayrollGenerated, "Payroll generated",
			fmt.Sprintf("Your payroll draft for %02d/%d was generated.", stored.ReferenceMonth, stored.ReferenceYear))
	}

	return created, nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponses(records), nil
}

func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, year, month int) ([]payroll.PayrollResponse, error) {
	if month < 1 || month > 12 {
		return nil, payroll.ErrInvalidPeriod
	}
	records, err := s.payrollRepo.ListByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponses(records), nil
}

func (s *PayrollServiceImpl) TotalPaidByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error) {
	if month < 1 || month > 12 {
		return decimal.Zero, payroll.ErrInvalidPeriod
	}
	return s.payrollRepo.TotalPaidByPeriod(ctx, year, month)
}

func (s *PayrollServiceImpl) notify(ctx context.Context, record payroll.Payroll, notifType notification.NotificationType, title, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, record.EmployeeID, notifType, title, message); err != nil {
		slog.Error("failed to send payroll notification",
			"payroll_id", record.ID, "employee_id", record.EmployeeID, "error", err)
	}
}
