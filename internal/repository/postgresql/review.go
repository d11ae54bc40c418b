package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/review"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const reviewColumns = `
	r.id, r.employee_id, r.reviewer_id, r.period_start, r.period_end,
	r.rating, r.strengths, r.improvements, r.goals, r.comments,
	r.status, r.submitted_at, r.acknowledged_at, r.created_at, r.updated_at,
	e.name AS employee_name, rv.name AS reviewer_name
`

type reviewRepository struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) review.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rec review.PerformanceReview) (review.PerformanceReview, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			id, employee_id, reviewer_id, period_start, period_end,
			rating, strengths, improvements, goals, comments,
			status, submitted_at, acknowledged_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := q.Exec(ctx, query,
		rec.ID, rec.EmployeeID, rec.ReviewerID, rec.PeriodStart, rec.PeriodEnd,
		rec.Rating, rec.Strengths, rec.Improvements, rec.Goals, rec.Comments,
		string(rec.Status), rec.SubmittedAt, rec.AcknowledgedAt, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return review.PerformanceReview{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return rec, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (review.PerformanceReview, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		LEFT JOIN employees rv ON rv.id = r.reviewer_id
		WHERE r.id = $1
	`, reviewColumns)

	rec, err := scanReview(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return review.PerformanceReview{}, review.ErrReviewNotFound
		}
		return review.PerformanceReview{}, fmt.Errorf("failed to get performance review: %w", err)
	}
	return rec, nil
}

func (r *reviewRepository) ListByEmployee(ctx context.Context, employeeID string) ([]review.PerformanceReview, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		LEFT JOIN employees rv ON rv.id = r.reviewer_id
		WHERE r.employee_id = $1
		ORDER BY r.period_end DESC
	`, reviewColumns)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []review.PerformanceReview
	for rows.Next() {
		rec, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read performance reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, rec review.PerformanceReview) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews
		SET rating = $2, strengths = $3, improvements = $4, goals = $5, comments = $6,
		    status = $7, submitted_at = $8, acknowledged_at = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.Rating, rec.Strengths, rec.Improvements, rec.Goals, rec.Comments,
		string(rec.Status), rec.SubmittedAt, rec.AcknowledgedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) AverageRatingByEmployee(ctx context.Context, employeeID string) (float64, error) {
	q := database.GetQuerier(ctx, r.db)

	var avg float64
	err := q.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM performance_reviews WHERE employee_id = $1 AND status != 'DRAFT'`,
		employeeID,
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to average review ratings: %w", err)
	}
	return avg, nil
}

func scanReview(row pgx.Row) (review.PerformanceReview, error) {
	var rec review.PerformanceReview
	var status string

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.ReviewerID, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.Rating, &rec.Strengths, &rec.Improvements, &rec.Goals, &rec.Comments,
		&status, &rec.SubmittedAt, &rec.AcknowledgedAt, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.ReviewerName,
	)
	if err != nil {
		return review.PerformanceReview{}, err
	}

	rec.Status = review.ReviewStatus(status)
	return rec, nil
}
