package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/domain/review"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type ReviewServiceImpl struct {
	reviewRepo   review.ReviewRepository
	employeeRepo employee.EmployeeRepository
	notifier     notification.NotificationService
	clock        clock.Clock
}

func NewReviewService(
	reviewRepo review.ReviewRepository,
	employeeRepo employee.EmployeeRepository,
	notifier notification.NotificationService,
	clk clock.Clock,
) review.ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		clock:        clk,
	}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, req review.CreateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return review.ReviewResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	now := s.clock.Now()
	r := review.PerformanceReview{
		ID:           uuid.New().String(),
		EmployeeID:   emp.ID,
		ReviewerID:   req.ReviewerID,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		Rating:       req.Rating,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Goals:        req.Goals,
		Comments:     req.Comments,
		Status:       review.StatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.reviewRepo.Create(ctx, r)
	if err != nil {
		return review.ReviewResponse{}, fmt.Errorf("failed to create performance review: %w", err)
	}
	return review.ToResponse(created), nil
}

func (s *ReviewServiceImpl) Update(ctx context.Context, req review.UpdateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	r, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	if r.Status != review.StatusDraft {
		return review.ReviewResponse{}, review.ErrNotEditable
	}

	if req.Rating != nil {
		r.Rating = *req.Rating
	}
	if req.Strengths != nil {
		r.Strengths = req.Strengths
	}
	if req.Improvements != nil {
		r.Improvements = req.Improvements
	}
	if req.Goals != nil {
		r.Goals = req.Goals
	}
	if req.Comments != nil {
		r.Comments = req.Comments
	}
	r.UpdatedAt = s.clock.Now()

	if err := s.reviewRepo.Update(ctx, r); err != nil {
		return review.ReviewResponse{}, fmt.Errorf("failed to update performance review: %w", err)
	}
	return review.ToResponse(r), nil
}

func (s *ReviewServiceImpl) Submit(ctx context.Context, id string) (review.ReviewResponse, error) {
	r, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	if r.Status != review.StatusDraft {
		return review.ReviewResponse{}, review.ErrNotEditable
	}

	now := s.clock.Now()
	r.Status = review.StatusSubmitted
	r.SubmittedAt = &now
	r.UpdatedAt = now

	if err := s.reviewRepo.Update(ctx, r); err != nil {
		return review.ReviewResponse{}, fmt.Errorf("failed to update performance review: %w", err)
	}

	if s.notifier != nil {
		err := s.notifier.Notify(ctx, r.EmployeeID, notification.TypeReviewSubmitted,
			"Performance review available",
			fmt.Sprintf("A review covering %s to %s is ready for your acknowledgement.",
				r.PeriodStart.Format("2006-01-02"), r.PeriodEnd.Format("2006-01-02")))
		if err != nil {
			slog.Error("failed to send review notification",
				"review_id", r.ID, "employee_id", r.EmployeeID, "error", err)
		}
	}

	return review.ToResponse(r), nil
}

func (s *ReviewServiceImpl) Acknowledge(ctx context.Context, id string) (review.ReviewResponse, error) {
	r, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	if r.Status == review.StatusAcknowledged {
		return review.ReviewResponse{}, review.ErrAlreadyFinal
	}
	if r.Status != review.StatusSubmitted {
		return review.ReviewResponse{}, review.ErrNotSubmitted
	}

	now := s.clock.Now()
	r.Status = review.StatusAcknowledged
	r.AcknowledgedAt = &now
	r.UpdatedAt = now

	if err := s.reviewRepo.Update(ctx, r); err != nil {
		return review.ReviewResponse{}, fmt.Errorf("failed to update performance review: %w", err)
	}
	return review.ToResponse(r), nil
}

func (s *ReviewServiceImpl) Get(ctx context.Context, id string) (review.ReviewResponse, error) {
	r, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	return review.ToResponse(r), nil
}

func (s *ReviewServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]review.ReviewResponse, error) {
	records, err := s.reviewRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return review.ToResponses(records), nil
}

func (s *ReviewServiceImpl) AverageRating(ctx context.Context, employeeID string) (float64, error) {
	return s.reviewRepo.AverageRatingByEmployee(ctx, employeeID)
}
