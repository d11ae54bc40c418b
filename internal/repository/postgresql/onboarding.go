package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/onboarding"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const onboardingColumns = `
	o.id, o.employee_id, o.template_id, o.start_date,
	o.expected_end_date, o.actual_end_date, o.status, o.progress_percentage,
	o.mentor_id, o.notes, o.created_at, o.updated_at,
	e.name AS employee_name, m.name AS mentor_name
`

type onboardingRepository struct {
	db *database.DB
}

func NewOnboardingRepository(db *database.DB) onboarding.OnboardingRepository {
	return &onboardingRepository{db: db}
}

func (r *onboardingRepository) Create(ctx context.Context, ob onboarding.Onboarding) (onboarding.Onboarding, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO onboardings (
			id, employee_id, template_id, start_date, expected_end_date, actual_end_date,
			status, progress_percentage, mentor_id, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := q.Exec(ctx, query,
		ob.ID, ob.EmployeeID, ob.TemplateID, ob.StartDate, ob.ExpectedEndDate, ob.ActualEndDate,
		string(ob.Status), ob.ProgressPercentage, ob.MentorID, ob.Notes, ob.CreatedAt, ob.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return onboarding.Onboarding{}, onboarding.ErrActiveOnboardingExists
		}
		return onboarding.Onboarding{}, fmt.Errorf("failed to create onboarding: %w", err)
	}

	return ob, nil
}

func (r *onboardingRepository) GetByID(ctx context.Context, id string) (onboarding.Onboarding, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM onboardings o
		JOIN employees e ON e.id = o.employee_id
		LEFT JOIN employees m ON m.id = o.mentor_id
		WHERE o.id = $1
	`, onboardingColumns)

	ob, err := scanOnboarding(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return onboarding.Onboarding{}, onboarding.ErrOnboardingNotFound
		}
		return onboarding.Onboarding{}, fmt.Errorf("failed to get onboarding: %w", err)
	}
	return ob, nil
}

func (r *onboardingRepository) GetActiveByEmployee(ctx context.Context, employeeID string) (onboarding.Onboarding, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM onboardings o
		JOIN employees e ON e.id = o.employee_id
		LEFT JOIN employees m ON m.id = o.mentor_id
		WHERE o.employee_id = $1 AND o.status IN ('NOT_STARTED', 'IN_PROGRESS')
	`, onboardingColumns)

	ob, err := scanOnboarding(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return onboarding.Onboarding{}, onboarding.ErrOnboardingNotFound
		}
		return onboarding.Onboarding{}, fmt.Errorf("failed to get onboarding: %w", err)
	}
	return ob, nil
}

func (r *onboardingRepository) ListActive(ctx context.Context) ([]onboarding.Onboarding, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM onboardings o
		JOIN employees e ON e.id = o.employee_id
		LEFT JOIN employees m ON m.id = o.mentor_id
		WHERE o.status IN ('NOT_STARTED', 'IN_PROGRESS')
		ORDER BY o.start_date
	`, onboardingColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query onboardings: %w", err)
	}
	defer rows.Close()

	var items []onboarding.Onboarding
	for rows.Next() {
		ob, err := scanOnboarding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan onboarding: %w", err)
		}
		items = append(items, ob)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read onboardings: %w", err)
	}
	return items, nil
}

func (r *onboardingRepository) Update(ctx context.Context, ob onboarding.Onboarding) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE onboardings
		SET expected_end_date = $2, actual_end_date = $3, status = $4,
		    progress_percentage = $5, mentor_id = $6, notes = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		ob.ID, ob.ExpectedEndDate, ob.ActualEndDate, string(ob.Status),
		ob.ProgressPercentage, ob.MentorID, ob.Notes, ob.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update onboarding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrOnboardingNotFound
	}
	return nil
}

func (r *onboardingRepository) CountActive(ctx context.Context) (int64, error) {
	q := database.GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM onboardings WHERE status IN ('NOT_STARTED', 'IN_PROGRESS')`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active onboardings: %w", err)
	}
	return count, nil
}

func (r *onboardingRepository) AverageProgress(ctx context.Context) (float64, error) {
	q := database.GetQuerier(ctx, r.db)

	var avg float64
	err := q.QueryRow(ctx,
		`SELECT COALESCE(AVG(progress_percentage), 0) FROM onboardings WHERE status IN ('NOT_STARTED', 'IN_PROGRESS')`,
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to average onboarding progress: %w", err)
	}
	return avg, nil
}

func scanOnboarding(row pgx.Row) (onboarding.Onboarding, error) {
	var ob onboarding.Onboarding
	var status string

	err := row.Scan(
		&ob.ID, &ob.EmployeeID, &ob.TemplateID, &ob.StartDate,
		&ob.ExpectedEndDate, &ob.ActualEndDate, &status, &ob.ProgressPercentage,
		&ob.MentorID, &ob.Notes, &ob.CreatedAt, &ob.UpdatedAt,
		&ob.EmployeeName, &ob.MentorName,
	)
	if err != nil {
		return onboarding.Onboarding{}, err
	}

	ob.Status = onboarding.OnboardingStatus(status)
	return ob, nil
}
