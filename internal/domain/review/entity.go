package review

import "time"

// ReviewStatus enum
type ReviewStatus string

const (
	StatusDraft        ReviewStatus = "DRAFT"
	StatusSubmitted    ReviewStatus = "SUBMITTED"
	StatusAcknowledged ReviewStatus = "ACKNOWLEDGED"
)

// PerformanceReview covers one review period for an employee. Rating
// is bounded to [1,5].
type PerformanceReview struct {
	ID             string
	EmployeeID     string
	ReviewerID     string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Rating         int
	Strengths      *string
	Improvements   *string
	Goals          *string
	Comments       *string
	Status         ReviewStatus
	SubmittedAt    *time.Time
	AcknowledgedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
	ReviewerName *string
}
