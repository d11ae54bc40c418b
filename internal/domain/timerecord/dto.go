package timerecord

import (
	"time"

	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string  `json:"employee_id"`
	IPAddress  *string `json:"ip_address,omitempty"`
	Location   *string `json:"location,omitempty"`
	Type       *string `json:"type,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Type != nil {
		valid := []string{
			string(TypeNormal), string(TypeHomeOffice), string(TypeExternal),
			string(TypeHoliday), string(TypeWeekend),
		}
		if !validator.IsInSlice(*r.Type, valid) {
			errs = append(errs, validator.ValidationError{Field: "type", Message: "is not a valid record type"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeRecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	RecordDate string `json:"record_date"`

	ClockIn  *string `json:"clock_in,omitempty"`
	LunchOut *string `json:"lunch_out,omitempty"`
	LunchIn  *string `json:"lunch_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`

	WorkedMinutes         *int `json:"worked_minutes,omitempty"`
	OvertimeMinutes       *int `json:"overtime_minutes,omitempty"`
	LateMinutes           *int `json:"late_minutes,omitempty"`
	EarlyDepartureMinutes *int `json:"early_departure_minutes,omitempty"`

	Type          string  `json:"type"`
	Status        string  `json:"status"`
	Justification *string `json:"justification,omitempty"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func ToResponse(r TimeRecord) TimeRecordResponse {
	var approvedAt *string
	if r.ApprovedAt != nil {
		str := r.ApprovedAt.Format(time.RFC3339)
		approvedAt = &str
	}

	return TimeRecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		RecordDate: r.RecordDate.Format("2006-01-02"),

		ClockIn:  timePtrToString(r.ClockIn),
		LunchOut: timePtrToString(r.LunchOut),
		LunchIn:  timePtrToString(r.LunchIn),
		ClockOut: timePtrToString(r.ClockOut),

		WorkedMinutes:         r.WorkedMinutes,
		OvertimeMinutes:       r.OvertimeMinutes,
		LateMinutes:           r.LateMinutes,
		EarlyDepartureMinutes: r.EarlyDepartureMinutes,

		Type:          string(r.Type),
		Status:        string(r.Status),
		Justification: r.Justification,
		ApprovedBy:    r.ApprovedBy,
		ApprovedAt:    approvedAt,
	}
}

func ToResponses(records []TimeRecord) []TimeRecordResponse {
	result := make([]TimeRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
