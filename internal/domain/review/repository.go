package review

import "context"

// ReviewRepository defines data access for performance reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r PerformanceReview) (PerformanceReview, error)
	GetByID(ctx context.Context, id string) (PerformanceReview, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PerformanceReview, error)
	Update(ctx context.Context, r PerformanceReview) error
	AverageRatingByEmployee(ctx context.Context, employeeID string) (float64, error)
}
