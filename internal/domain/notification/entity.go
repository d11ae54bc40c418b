package notification

import "time"

// NotificationType enum
type NotificationType string

const (
	TypeOnboardingStarted    NotificationType = "ONBOARDING_STARTED"
	TypeOnboardingCompleted  NotificationType = "ONBOARDING_COMPLETED"
	TypeOffboardingStarted   NotificationType = "OFFBOARDING_STARTED"
	TypeOffboardingCompleted NotificationType = "OFFBOARDING_COMPLETED"
	TypeVacationRequested    NotificationType = "VACATION_REQUESTED"
	TypeVacationApproved     NotificationType = "VACATION_APPROVED"
	TypeVacationRejected     NotificationType = "VACATION_REJECTED"
	TypePayrollGenerated     NotificationType = "PAYROLL_GENERATED"
	TypePayrollApproved      NotificationType = "PAYROLL_APPROVED"
	TypePayrollPaid          NotificationType = "PAYROLL_PAID"
	TypeReviewSubmitted      NotificationType = "REVIEW_SUBMITTED"
	TypeTimeRecordReviewed   NotificationType = "TIME_RECORD_REVIEWED"
	TypeGeneral              NotificationType = "GENERAL"
)

// Notification is an in-app message addressed to a single employee.
type Notification struct {
	ID         string
	EmployeeID string
	Type       NotificationType
	Title      string
	Message    string
	Read       bool
	ReadAt     *time.Time
	CreatedAt  time.Time
}
