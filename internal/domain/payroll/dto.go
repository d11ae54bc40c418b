package payroll

import (
	"time"

	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	EmployeeID     string `json:"employee_id"`
	ReferenceYear  int    `json:"reference_year"`
	ReferenceMonth int    `json:"reference_month"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.ReferenceYear < 2000 || r.ReferenceYear > 2100 {
		errs = append(errs, validator.ValidationError{Field: "reference_year", Message: "must be a valid year"})
	}
	if r.ReferenceMonth < 1 || r.ReferenceMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "reference_month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateLineItemsRequest overwrites editable fields; nil fields are
// left untouched.
type UpdateLineItemsRequest struct {
	ID                 string           `json:"-"`
	OvertimeHours      *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeValue      *decimal.Decimal `json:"overtime_value,omitempty"`
	Bonus              *decimal.Decimal `json:"bonus,omitempty"`
	Commission         *decimal.Decimal `json:"commission,omitempty"`
	MealAllowance      *decimal.Decimal `json:"meal_allowance,omitempty"`
	TransportAllowance *decimal.Decimal `json:"transport_allowance,omitempty"`
	HealthAllowance    *decimal.Decimal `json:"health_allowance,omitempty"`
	OtherEarnings      *decimal.Decimal `json:"other_earnings,omitempty"`
	HealthDiscount     *decimal.Decimal `json:"health_discount,omitempty"`
	DentalDiscount     *decimal.Decimal `json:"dental_discount,omitempty"`
	MealDiscount       *decimal.Decimal `json:"meal_discount,omitempty"`
	TransportDiscount  *decimal.Decimal `json:"transport_discount,omitempty"`
	LoanDiscount       *decimal.Decimal `json:"loan_discount,omitempty"`
	OtherDeductions    *decimal.Decimal `json:"other_deductions,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
}

func (r *UpdateLineItemsRequest) Validate() error {
	var errs validator.ValidationErrors

	fields := map[string]*decimal.Decimal{
		"overtime_hours":      r.OvertimeHours,
		"overtime_value":      r.OvertimeValue,
		"bonus":               r.Bonus,
		"commission":          r.Commission,
		"meal_allowance":      r.MealAllowance,
		"transport_allowance": r.TransportAllowance,
		"health_allowance":    r.HealthAllowance,
		"other_earnings":      r.OtherEarnings,
		"health_discount":     r.HealthDiscount,
		"dental_discount":     r.DentalDiscount,
		"meal_discount":       r.MealDiscount,
		"transport_discount":  r.TransportDiscount,
		"loan_discount":       r.LoanDiscount,
		"other_deductions":    r.OtherDeductions,
	}
	for name, value := range fields {
		if value != nil && value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: name, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GeneratePayrollRequest struct {
	ReferenceYear  int `json:"reference_year"`
	ReferenceMonth int `json:"reference_month"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ReferenceYear < 2000 || r.ReferenceYear > 2100 {
		errs = append(errs, validator.ValidationError{Field: "reference_year", Message: "must be a valid year"})
	}
	if r.ReferenceMonth < 1 || r.ReferenceMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "reference_month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	ReferenceYear  int             `json:"reference_year"`
	ReferenceMonth int             `json:"reference_month"`
	BaseSalary     decimal.Decimal `json:"base_salary"`

	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimeValue      decimal.Decimal `json:"overtime_value"`
	Bonus              decimal.Decimal `json:"bonus"`
	Commission         decimal.Decimal `json:"commission"`
	MealAllowance      decimal.Decimal `json:"meal_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	HealthAllowance    decimal.Decimal `json:"health_allowance"`
	OtherEarnings      decimal.Decimal `json:"other_earnings"`

	GrossSalary decimal.Decimal `json:"gross_salary"`

	SocialSecurityValue decimal.Decimal `json:"social_security_value"`
	SocialSecurityRate  decimal.Decimal `json:"social_security_rate"`
	IncomeTaxValue      decimal.Decimal `json:"income_tax_value"`
	IncomeTaxRate       decimal.Decimal `json:"income_tax_rate"`
	StatutoryFundValue  decimal.Decimal `json:"statutory_fund_value"`

	HealthDiscount    decimal.Decimal `json:"health_discount"`
	DentalDiscount    decimal.Decimal `json:"dental_discount"`
	MealDiscount      decimal.Decimal `json:"meal_discount"`
	TransportDiscount decimal.Decimal `json:"transport_discount"`
	LoanDiscount      decimal.Decimal `json:"loan_discount"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`

	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	Status      string  `json:"status"`
	ProcessedAt *string `json:"processed_at,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func ToResponse(p Payroll) PayrollResponse {
	var processedAt *string
	if p.ProcessedAt != nil {
		str := p.ProcessedAt.Format(time.RFC3339)
		processedAt = &str
	}

	employeeName := ""
	if p.EmployeeName != nil {
		employeeName = *p.EmployeeName
	}

	return PayrollResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		EmployeeName:   employeeName,
		ReferenceYear:  p.ReferenceYear,
		ReferenceMonth: p.ReferenceMonth,
		BaseSalary:     p.BaseSalary,

		OvertimeHours:      p.OvertimeHours,
		OvertimeValue:      p.OvertimeValue,
		Bonus:              p.Bonus,
		Commission:         p.Commission,
		MealAllowance:      p.MealAllowance,
		TransportAllowance: p.TransportAllowance,
		HealthAllowance:    p.HealthAllowance,
		OtherEarnings:      p.OtherEarnings,

		GrossSalary: p.GrossSalary,

		SocialSecurityValue: p.SocialSecurityValue,
		SocialSecurityRate:  p.SocialSecurityRate,
		IncomeTaxValue:      p.IncomeTaxValue,
		IncomeTaxRate:       p.IncomeTaxRate,
		StatutoryFundValue:  p.StatutoryFundValue,

		HealthDiscount:    p.HealthDiscount,
		DentalDiscount:    p.DentalDiscount,
		MealDiscount:      p.MealDiscount,
		TransportDiscount: p.TransportDiscount,
		LoanDiscount:      p.LoanDiscount,
		OtherDeductions:   p.OtherDeductions,

		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,

		Status:      string(p.Status),
		ProcessedAt: processedAt,
		Notes:       p.Notes,
	}
}

func ToResponses(records []Payroll) []PayrollResponse {
	result := make([]PayrollResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
