package review

import (
	"time"

	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID   string  `json:"employee_id"`
	ReviewerID   string  `json:"reviewer_id"`
	PeriodStart  string  `json:"period_start"`
	PeriodEnd    string  `json:"period_end"`
	Rating       int     `json:"rating"`
	Strengths    *string `json:"strengths,omitempty"`
	Improvements *string `json:"improvements,omitempty"`
	Goals        *string `json:"goals,omitempty"`
	Comments     *string `json:"comments,omitempty"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ReviewerID) {
		errs = append(errs, validator.ValidationError{Field: "reviewer_id", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateReviewRequest struct {
	ID           string  `json:"-"`
	Rating       *int    `json:"rating,omitempty"`
	Strengths    *string `json:"strengths,omitempty"`
	Improvements *string `json:"improvements,omitempty"`
	Goals        *string `json:"goals,omitempty"`
	Comments     *string `json:"comments,omitempty"`
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	ReviewerID     string  `json:"reviewer_id"`
	PeriodStart    string  `json:"period_start"`
	PeriodEnd      string  `json:"period_end"`
	Rating         int     `json:"rating"`
	Strengths      *string `json:"strengths,omitempty"`
	Improvements   *string `json:"improvements,omitempty"`
	Goals          *string `json:"goals,omitempty"`
	Comments       *string `json:"comments,omitempty"`
	Status         string  `json:"status"`
	SubmittedAt    *string `json:"submitted_at,omitempty"`
	AcknowledgedAt *string `json:"acknowledged_at,omitempty"`
}

func ToResponse(r PerformanceReview) ReviewResponse {
	var submittedAt, acknowledgedAt *string
	if r.SubmittedAt != nil {
		str := r.SubmittedAt.Format(time.RFC3339)
		submittedAt = &str
	}
	if r.AcknowledgedAt != nil {
		str := r.AcknowledgedAt.Format(time.RFC3339)
		acknowledgedAt = &str
	}

	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	return ReviewResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   employeeName,
		ReviewerID:     r.ReviewerID,
		PeriodStart:    r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:      r.PeriodEnd.Format("2006-01-02"),
		Rating:         r.Rating,
		Strengths:      r.Strengths,
		Improvements:   r.Improvements,
		Goals:          r.Goals,
		Comments:       r.Comments,
		Status:         string(r.Status),
		SubmittedAt:    submittedAt,
		AcknowledgedAt: acknowledgedAt,
	}
}

func ToResponses(records []PerformanceReview) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
