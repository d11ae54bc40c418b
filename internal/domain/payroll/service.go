package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// PayrollService defines business logic for payroll operations.
type PayrollService interface {
	// CreateDraft opens a DRAFT record for the period, base salary
	// copied from the employee's current salary.
	CreateDraft(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)

	// UpdateLineItems overwrites editable earnings/discount fields.
	// Permitted while DRAFT or CALCULATED only.
	UpdateLineItems(ctx context.Context, req UpdateLineItemsRequest) (PayrollResponse, error)

	// Calculate derives gross, statutory deductions, totals and net,
	// then moves the record to CALCULATED. Idempotent for unchanged
	// inputs.
	Calculate(ctx context.Context, id string) (PayrollResponse, error)

	// Approve moves CALCULATED to APPROVED.
	Approve(ctx context.Context, id string) (PayrollResponse, error)

	// MarkPaid moves APPROVED to PAID.
	MarkPaid(ctx context.Context, id string) (PayrollResponse, error)

	// Cancel moves any pre-PAID record to CANCELLED.
	Cancel(ctx context.Context, id string) (PayrollResponse, error)

	// GenerateForPeriod creates a DRAFT record for every active
	// employee that does not already have one for the period.
	GenerateForPeriod(ctx context.Context, req GeneratePayrollRequest) ([]PayrollResponse, error)

	Get(ctx context.Context, id string) (PayrollResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error)
	ListByPeriod(ctx context.Context, year, month int) ([]PayrollResponse, error)
	TotalPaidByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error)
}
