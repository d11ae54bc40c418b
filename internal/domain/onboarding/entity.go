package onboarding

import "time"

// OnboardingStatus enum
type OnboardingStatus string

const (
	StatusNotStarted OnboardingStatus = "NOT_STARTED"
	StatusInProgress OnboardingStatus = "IN_PROGRESS"
	StatusCompleted  OnboardingStatus = "COMPLETED"
	StatusCancelled  OnboardingStatus = "CANCELLED"
)

// TaskStatus enum
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskSkipped    TaskStatus = "SKIPPED"
	TaskBlocked    TaskStatus = "BLOCKED"
)

// TaskCategory enum
type TaskCategory string

const (
	CategoryDocumentation TaskCategory = "DOCUMENTATION"
	CategoryEquipment     TaskCategory = "EQUIPMENT"
	CategoryTraining      TaskCategory = "TRAINING"
	CategoryIntegration   TaskCategory = "INTEGRATION"
	CategoryAccess        TaskCategory = "ACCESS"
	CategoryOther         TaskCategory = "OTHER"
)

// Template is a reusable onboarding checklist, optionally scoped to a
// department. Starting an onboarding clones its task templates.
type Template struct {
	ID            string
	Name          string
	Description   *string
	DepartmentID  *string
	EstimatedDays *int
	IsActive      bool
	Tasks         []TaskTemplate
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TaskTemplate is a single checklist entry inside a Template.
type TaskTemplate struct {
	ID          string
	TemplateID  string
	Title       string
	Description *string
	Category    TaskCategory
	OrderIndex  int
	DueDays     *int
	IsRequired  bool
}

// Onboarding is one active instance per employee. Progress is derived
// from the cloned task rows: round(100 * completed / total). Skipped
// tasks stay in the denominator.
type Onboarding struct {
	ID                 string
	EmployeeID         string
	TemplateID         *string
	StartDate          time.Time
	ExpectedEndDate    *time.Time
	ActualEndDate      *time.Time
	Status             OnboardingStatus
	ProgressPercentage int
	MentorID           *string
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	EmployeeName *string
	MentorName   *string
}

// Task is a cloned checklist row owned by one Onboarding instance.
type Task struct {
	ID           string
	OnboardingID string
	Title        string
	Description  *string
	Category     TaskCategory
	OrderIndex   int
	DueDate      *time.Time
	IsRequired   bool
	Status       TaskStatus
	AssignedTo   *string
	CompletedBy  *string
	CompletedAt  *time.Time
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
