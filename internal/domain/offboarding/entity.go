package offboarding

import "time"

// TerminationType enum
type TerminationType string

const (
	TerminationVoluntary       TerminationType = "VOLUNTARY"
	TerminationInvoluntary     TerminationType = "INVOLUNTARY"
	TerminationJustCause       TerminationType = "JUST_CAUSE"
	TerminationMutualAgreement TerminationType = "MUTUAL_AGREEMENT"
	TerminationContractEnd     TerminationType = "CONTRACT_END"
	TerminationRetirement      TerminationType = "RETIREMENT"
	TerminationDeath           TerminationType = "DEATH"
)

// OffboardingStatus enum
type OffboardingStatus string

const (
	StatusInitiated            OffboardingStatus = "INITIATED"
	StatusInProgress           OffboardingStatus = "IN_PROGRESS"
	StatusPendingExitInterview OffboardingStatus = "PENDING_EXIT_INTERVIEW"
	StatusPendingDocuments     OffboardingStatus = "PENDING_DOCUMENTS"
	StatusPendingPayment       OffboardingStatus = "PENDING_PAYMENT"
	StatusCompleted            OffboardingStatus = "COMPLETED"
	StatusCancelled            OffboardingStatus = "CANCELLED"
)

// Offboarding tracks one termination event. The instance completes
// automatically once all five checklist flags and the exit interview
// are done, which also terminates the employee.
type Offboarding struct {
	ID                string
	EmployeeID        string
	TerminationType   TerminationType
	TerminationDate   time.Time
	LastWorkingDay    time.Time
	NoticeDate        time.Time
	Status            OffboardingStatus
	TerminationReason *string
	ProcessedBy       *string

	// Checklist
	EquipmentReturned     bool
	AccessRevoked         bool
	FinalPaymentProcessed bool
	DocumentsCollected    bool
	KnowledgeTransferred  bool

	// Exit interview sub-state
	ExitInterviewScheduled bool
	ExitInterviewDate      *time.Time
	ExitInterviewCompleted bool
	ExitInterviewNotes     *string

	RehireEligible *bool
	RehireNotes    *string

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}

// ChecklistDone reports whether every checklist flag is set.
func (o Offboarding) ChecklistDone() bool {
	return o.EquipmentReturned &&
		o.AccessRevoked &&
		o.FinalPaymentProcessed &&
		o.DocumentsCollected &&
		o.KnowledgeTransferred
}

// ChecklistProgress is round(100 * true-count / 5).
func (o Offboarding) ChecklistProgress() int {
	count := 0
	for _, flag := range []bool{
		o.EquipmentReturned, o.AccessRevoked, o.FinalPaymentProcessed,
		o.DocumentsCollected, o.KnowledgeTransferred,
	} {
		if flag {
			count++
		}
	}
	return count * 100 / 5
}
