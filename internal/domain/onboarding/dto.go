package onboarding

import (
	"time"

	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type StartOnboardingRequest struct {
	EmployeeID string  `json:"employee_id"`
	TemplateID *string `json:"template_id,omitempty"`
	MentorID   *string `json:"mentor_id,omitempty"`
}

func (r *StartOnboardingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompleteTaskRequest struct {
	TaskID      string  `json:"-"`
	CompletedBy *string `json:"completed_by,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type SkipTaskRequest struct {
	TaskID string `json:"-"`
	Reason string `json:"reason"`
}

func (r *SkipTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OnboardingResponse struct {
	ID                 string         `json:"id"`
	EmployeeID         string         `json:"employee_id"`
	EmployeeName       string         `json:"employee_name,omitempty"`
	TemplateID         *string        `json:"template_id,omitempty"`
	StartDate          string         `json:"start_date"`
	ExpectedEndDate    *string        `json:"expected_end_date,omitempty"`
	ActualEndDate      *string        `json:"actual_end_date,omitempty"`
	Status             string         `json:"status"`
	ProgressPercentage int            `json:"progress_percentage"`
	MentorID           *string        `json:"mentor_id,omitempty"`
	Tasks              []TaskResponse `json:"tasks,omitempty"`
}

type TaskResponse struct {
	ID           string  `json:"id"`
	OnboardingID string  `json:"onboarding_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Category     string  `json:"category"`
	OrderIndex   int     `json:"order_index"`
	DueDate      *string `json:"due_date,omitempty"`
	IsRequired   bool    `json:"is_required"`
	Status       string  `json:"status"`
	CompletedBy  *string `json:"completed_by,omitempty"`
	CompletedAt  *string `json:"completed_at,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format("2006-01-02")
	return &str
}

func ToResponse(ob Onboarding, tasks []Task) OnboardingResponse {
	employeeName := ""
	if ob.EmployeeName != nil {
		employeeName = *ob.EmployeeName
	}

	return OnboardingResponse{
		ID:                 ob.ID,
		EmployeeID:         ob.EmployeeID,
		EmployeeName:       employeeName,
		TemplateID:         ob.TemplateID,
		StartDate:          ob.StartDate.Format("2006-01-02"),
		ExpectedEndDate:    datePtrToString(ob.ExpectedEndDate),
		ActualEndDate:      datePtrToString(ob.ActualEndDate),
		Status:             string(ob.Status),
		ProgressPercentage: ob.ProgressPercentage,
		MentorID:           ob.MentorID,
		Tasks:              ToTaskResponses(tasks),
	}
}

func ToTaskResponse(t Task) TaskResponse {
	var completedAt *string
	if t.CompletedAt != nil {
		str := t.CompletedAt.Format(time.RFC3339)
		completedAt = &str
	}

	return TaskResponse{
		ID:           t.ID,
		OnboardingID: t.OnboardingID,
		Title:        t.Title,
		Description:  t.Description,
		Category:     string(t.Category),
		OrderIndex:   t.OrderIndex,
		DueDate:      datePtrToString(t.DueDate),
		IsRequired:   t.IsRequired,
		Status:       string(t.Status),
		CompletedBy:  t.CompletedBy,
		CompletedAt:  completedAt,
		Notes:        t.Notes,
	}
}

func ToTaskResponses(tasks []Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, ToTaskResponse(t))
	}
	return result
}
