package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeStatus enum
type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "ACTIVE"
	StatusOnLeave    EmployeeStatus = "ON_LEAVE"
	StatusTerminated EmployeeStatus = "TERMINATED"
)

// Employee holds the HR master record. Related aggregates (payroll,
// time records, onboarding) reference it by ID only.
type Employee struct {
	ID           string
	UserID       *string
	Name         string
	Email        string
	DepartmentID *string
	Position     *string
	Salary       decimal.Decimal
	HireDate     time.Time
	Status       EmployeeStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
}
