package timerecord

import "time"

// RecordType enum
type RecordType string

const (
	TypeNormal     RecordType = "NORMAL"
	TypeHomeOffice RecordType = "HOME_OFFICE"
	TypeExternal   RecordType = "EXTERNAL"
	TypeHoliday    RecordType = "HOLIDAY"
	TypeWeekend    RecordType = "WEEKEND"
)

// RecordStatus enum
type RecordStatus string

const (
	StatusPending   RecordStatus = "PENDING"
	StatusApproved  RecordStatus = "APPROVED"
	StatusRejected  RecordStatus = "REJECTED"
	StatusJustified RecordStatus = "JUSTIFIED"
)

// TimeRecord is one row per (employee, calendar date). The four clock
// marks are strictly ordered in time when present:
// clock-in < lunch-out < lunch-in < clock-out. Derived minute fields
// are filled as the marks land; the approval status is independent of
// the clock sequence.
type TimeRecord struct {
	ID         string
	EmployeeID string
	RecordDate time.Time

	ClockIn  *time.Time
	LunchOut *time.Time
	LunchIn  *time.Time
	ClockOut *time.Time

	WorkedMinutes         *int
	OvertimeMinutes       *int
	LateMinutes           *int
	EarlyDepartureMinutes *int

	Type          RecordType
	Status        RecordStatus
	Justification *string
	IPAddress     *string
	Location      *string

	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
