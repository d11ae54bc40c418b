package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	StatusDraft      PayrollStatus = "DRAFT"
	StatusCalculated PayrollStatus = "CALCULATED"
	StatusApproved   PayrollStatus = "APPROVED"
	StatusPaid       PayrollStatus = "PAID"
	StatusCancelled  PayrollStatus = "CANCELLED"
)

// Payroll is one record per (employee, reference year, reference month).
// Earnings and discounts are editable while the record is DRAFT or
// CALCULATED; the gross/deduction/net fields are derived by Calculate
// and meaningful only from CALCULATED onward (ProcessedAt marks that).
type Payroll struct {
	ID             string
	EmployeeID     string
	ReferenceMonth int
	ReferenceYear  int
	BaseSalary     decimal.Decimal

	// Earnings
	OvertimeHours      decimal.Decimal
	OvertimeValue      decimal.Decimal
	Bonus              decimal.Decimal
	Commission         decimal.Decimal
	MealAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	HealthAllowance    decimal.Decimal
	OtherEarnings      decimal.Decimal

	GrossSalary decimal.Decimal

	// Statutory deductions, derived by Calculate
	SocialSecurityValue decimal.Decimal
	SocialSecurityRate  decimal.Decimal
	IncomeTaxValue      decimal.Decimal
	IncomeTaxRate       decimal.Decimal
	StatutoryFundValue  decimal.Decimal

	// Manually entered discounts
	HealthDiscount    decimal.Decimal
	DentalDiscount    decimal.Decimal
	MealDiscount      decimal.Decimal
	TransportDiscount decimal.Decimal
	LoanDiscount      decimal.Decimal
	OtherDeductions   decimal.Decimal

	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	Status      PayrollStatus
	PaymentDate *time.Time
	Notes       *string
	ProcessedAt *time.Time
	ProcessedBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}

// TotalEarnings sums the editable earnings line items (base salary
// excluded).
func (p Payroll) TotalEarnings() decimal.Decimal {
	return p.OvertimeValue.
		Add(p.Bonus).
		Add(p.Commission).
		Add(p.MealAllowance).
		Add(p.TransportAllowance).
		Add(p.HealthAllowance).
		Add(p.OtherEarnings)
}
