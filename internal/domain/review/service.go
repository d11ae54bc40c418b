package review

import "context"

// ReviewService manages the performance review lifecycle. A review is
// created as a draft, submitted by the reviewer and finally
// acknowledged by the employee.
type ReviewService interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	Update(ctx context.Context, req UpdateReviewRequest) (ReviewResponse, error)
	Submit(ctx context.Context, id string) (ReviewResponse, error)
	Acknowledge(ctx context.Context, id string) (ReviewResponse, error)
	Get(ctx context.Context, id string) (ReviewResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ReviewResponse, error)
	AverageRating(ctx context.Context, employeeID string) (float64, error)
}
