package vacation

import (
	"time"

	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type CreateVacationRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	valid := []string{
		string(TypeVacation), string(TypeSickLeave), string(TypePersonal),
		string(TypeMaternity), string(TypePaternity),
	}
	if !validator.IsInSlice(r.Type, valid) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is not a valid vacation type"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VacationResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	Type            string  `json:"type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            int     `json:"days"`
	Status          string  `json:"status"`
	Reason          *string `json:"reason,omitempty"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func ToResponse(v VacationRequest) VacationResponse {
	var reviewedAt *string
	if v.ReviewedAt != nil {
		str := v.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &str
	}

	employeeName := ""
	if v.EmployeeName != nil {
		employeeName = *v.EmployeeName
	}

	return VacationResponse{
		ID:              v.ID,
		EmployeeID:      v.EmployeeID,
		EmployeeName:    employeeName,
		Type:            string(v.Type),
		StartDate:       v.StartDate.Format("2006-01-02"),
		EndDate:         v.EndDate.Format("2006-01-02"),
		Days:            v.Days,
		Status:          string(v.Status),
		Reason:          v.Reason,
		ReviewedBy:      v.ReviewedBy,
		ReviewedAt:      reviewedAt,
		RejectionReason: v.RejectionReason,
	}
}

func ToResponses(records []VacationRequest) []VacationResponse {
	result := make([]VacationResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
