package offboarding

import (
	"time"

	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type StartOffboardingRequest struct {
	EmployeeID      string  `json:"employee_id"`
	TerminationType string  `json:"termination_type"`
	TerminationDate string  `json:"termination_date"`
	LastWorkingDay  *string `json:"last_working_day,omitempty"`
	Reason          *string `json:"reason,omitempty"`
	ProcessedBy     *string `json:"processed_by,omitempty"`
}

func (r *StartOffboardingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	valid := []string{
		string(TerminationVoluntary), string(TerminationInvoluntary),
		string(TerminationJustCause), string(TerminationMutualAgreement),
		string(TerminationContractEnd), string(TerminationRetirement),
		string(TerminationDeath),
	}
	if !validator.IsInSlice(r.TerminationType, valid) {
		errs = append(errs, validator.ValidationError{Field: "termination_type", Message: "is not a valid termination type"})
	}

	if _, ok := validator.IsValidDate(r.TerminationDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "termination_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.LastWorkingDay != nil {
		if _, ok := validator.IsValidDate(*r.LastWorkingDay); !ok {
			errs = append(errs, validator.ValidationError{Field: "last_working_day", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateChecklistRequest applies only the non-nil flags.
type UpdateChecklistRequest struct {
	ID                     string `json:"-"`
	EquipmentReturned      *bool  `json:"equipment_returned,omitempty"`
	AccessRevoked          *bool  `json:"access_revoked,omitempty"`
	FinalPaymentProcessed  *bool  `json:"final_payment_processed,omitempty"`
	DocumentsCollected     *bool  `json:"documents_collected,omitempty"`
	KnowledgeTransferred   *bool  `json:"knowledge_transferred,omitempty"`
	ExitInterviewCompleted *bool  `json:"exit_interview_completed,omitempty"`
}

type CompleteExitInterviewRequest struct {
	ID             string  `json:"-"`
	Notes          *string `json:"notes,omitempty"`
	RehireEligible *bool   `json:"rehire_eligible,omitempty"`
	RehireNotes    *string `json:"rehire_notes,omitempty"`
}

type OffboardingResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name,omitempty"`
	TerminationType   string  `json:"termination_type"`
	TerminationDate   string  `json:"termination_date"`
	LastWorkingDay    string  `json:"last_working_day"`
	NoticeDate        string  `json:"notice_date"`
	Status            string  `json:"status"`
	TerminationReason *string `json:"termination_reason,omitempty"`

	EquipmentReturned     bool `json:"equipment_returned"`
	AccessRevoked         bool `json:"access_revoked"`
	FinalPaymentProcessed bool `json:"final_payment_processed"`
	DocumentsCollected    bool `json:"documents_collected"`
	KnowledgeTransferred  bool `json:"knowledge_transferred"`
	ChecklistProgress     int  `json:"checklist_progress"`

	ExitInterviewScheduled bool    `json:"exit_interview_scheduled"`
	ExitInterviewDate      *string `json:"exit_interview_date,omitempty"`
	ExitInterviewCompleted bool    `json:"exit_interview_completed"`
	ExitInterviewNotes     *string `json:"exit_interview_notes,omitempty"`

	RehireEligible *bool   `json:"rehire_eligible,omitempty"`
	CompletedAt    *string `json:"completed_at,omitempty"`
}

func ToResponse(o Offboarding) OffboardingResponse {
	var interviewDate, completedAt *string
	if o.ExitInterviewDate != nil {
		str := o.ExitInterviewDate.Format(time.RFC3339)
		interviewDate = &str
	}
	if o.CompletedAt != nil {
		str := o.CompletedAt.Format(time.RFC3339)
		completedAt = &str
	}

	employeeName := ""
	if o.EmployeeName != nil {
		employeeName = *o.EmployeeName
	}

	return OffboardingResponse{
		ID:                o.ID,
		EmployeeID:        o.EmployeeID,
		EmployeeName:      employeeName,
		TerminationType:   string(o.TerminationType),
		TerminationDate:   o.TerminationDate.Format("2006-01-02"),
		LastWorkingDay:    o.LastWorkingDay.Format("2006-01-02"),
		NoticeDate:        o.NoticeDate.Format("2006-01-02"),
		Status:            string(o.Status),
		TerminationReason: o.TerminationReason,

		EquipmentReturned:     o.EquipmentReturned,
		AccessRevoked:         o.AccessRevoked,
		FinalPaymentProcessed: o.FinalPaymentProcessed,
		DocumentsCollected:    o.DocumentsCollected,
		KnowledgeTransferred:  o.KnowledgeTransferred,
		ChecklistProgress:     o.ChecklistProgress(),

		ExitInterviewScheduled: o.ExitInterviewScheduled,
		ExitInterviewDate:      interviewDate,
		ExitInterviewCompleted: o.ExitInterviewCompleted,
		ExitInterviewNotes:     o.ExitInterviewNotes,

		RehireEligible: o.RehireEligible,
		CompletedAt:    completedAt,
	}
}

func ToResponses(records []Offboarding) []OffboardingResponse {
	result := make([]OffboardingResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
