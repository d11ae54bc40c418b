package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// PayrollRepository defines data access methods for payroll records.
// The (employee_id, reference_year, reference_month) uniqueness is
// enforced by a unique index; Create surfaces ErrPayrollAlreadyExists
// on violation.
type PayrollRepository interface {
	Create(ctx context.Context, record Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (Payroll, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	ListByPeriod(ctx context.Context, year, month int) ([]Payroll, error)
	Update(ctx context.Context, record Payroll) error
	TotalPaidByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error)
}
