package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollAlreadyExists = errors.New("payroll record already exists for this period")
	ErrPayrollNotEditable   = errors.New("payroll record can only be edited while draft or calculated")
	ErrNotCalculated        = errors.New("payroll record has not been calculated")
	ErrNotApproved          = errors.New("payroll record has not been approved")
	ErrAlreadyPaid          = errors.New("payroll record already paid")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
