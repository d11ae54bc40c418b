package vacation

import "time"

// VacationType enum
type VacationType string

const (
	TypeVacation  VacationType = "VACATION"
	TypeSickLeave VacationType = "SICK_LEAVE"
	TypePersonal  VacationType = "PERSONAL"
	TypeMaternity VacationType = "MATERNITY"
	TypePaternity VacationType = "PATERNITY"
)

// VacationStatus enum
type VacationStatus string

const (
	StatusPending   VacationStatus = "PENDING"
	StatusApproved  VacationStatus = "APPROVED"
	StatusRejected  VacationStatus = "REJECTED"
	StatusCancelled VacationStatus = "CANCELLED"
)

// VacationRequest is a time-off request. Days is inclusive of both
// endpoints (end - start + 1).
type VacationRequest struct {
	ID              string
	EmployeeID      string
	Type            VacationType
	StartDate       time.Time
	EndDate         time.Time
	Days            int
	Status          VacationStatus
	Reason          *string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}
