package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/onboarding"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const onboardingTaskColumns = `
	id, onboarding_id, title, description, category, order_index,
	due_date, is_required, status, assigned_to, completed_by, completed_at,
	notes, created_at, updated_at
`

type onboardingTaskRepository struct {
	db *database.DB
}

func NewOnboardingTaskRepository(db *database.DB) onboarding.TaskRepository {
	return &onboardingTaskRepository{db: db}
}

func (r *onboardingTaskRepository) Create(ctx context.Context, task onboarding.Task) (onboarding.Task, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO onboarding_tasks (
			id, onboarding_id, title, description, category, order_index,
			due_date, is_required, status, assigned_to, completed_by, completed_at,
			notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := q.Exec(ctx, query,
		task.ID, task.OnboardingID, task.Title, task.Description, string(task.Category), task.OrderIndex,
		task.DueDate, task.IsRequired, string(task.Status), task.AssignedTo, task.CompletedBy, task.CompletedAt,
		task.Notes, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return onboarding.Task{}, fmt.Errorf("failed to create onboarding task: %w", err)
	}

	return task, nil
}

func (r *onboardingTaskRepository) GetByID(ctx context.Context, id string) (onboarding.Task, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM onboarding_tasks WHERE id = $1`, onboardingTaskColumns)

	task, err := scanOnboardingTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return onboarding.Task{}, onboarding.ErrTaskNotFound
		}
		return onboarding.Task{}, fmt.Errorf("failed to get onboarding task: %w", err)
	}
	return task, nil
}

func (r *onboardingTaskRepository) ListByOnboarding(ctx context.Context, onboardingID string) ([]onboarding.Task, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM onboarding_tasks
		WHERE onboarding_id = $1
		ORDER BY order_index
	`, onboardingTaskColumns)

	rows, err := q.Query(ctx, query, onboardingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query onboarding tasks: %w", err)
	}
	defer rows.Close()

	var tasks []onboarding.Task
	for rows.Next() {
		task, err := scanOnboardingTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan onboarding task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read onboarding tasks: %w", err)
	}
	return tasks, nil
}

func (r *onboardingTaskRepository) Update(ctx context.Context, task onboarding.Task) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE onboarding_tasks
		SET status = $2, assigned_to = $3, completed_by = $4, completed_at = $5,
		    notes = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		task.ID, string(task.Status), task.AssignedTo, task.CompletedBy, task.CompletedAt,
		task.Notes, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update onboarding task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrTaskNotFound
	}
	return nil
}

func (r *onboardingTaskRepository) CountByOnboarding(ctx context.Context, onboardingID string) (int64, error) {
	q := database.GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM onboarding_tasks WHERE onboarding_id = $1`,
		onboardingID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count onboarding tasks: %w", err)
	}
	return count, nil
}

func (r *onboardingTaskRepository) CountCompletedByOnboarding(ctx context.Context, onboardingID string) (int64, error) {
	q := database.GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM onboarding_tasks WHERE onboarding_id = $1 AND status = 'COMPLETED'`,
		onboardingID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed onboarding tasks: %w", err)
	}
	return count, nil
}

func scanOnboardingTask(row pgx.Row) (onboarding.Task, error) {
	var t onboarding.Task
	var category, status string

	err := row.Scan(
		&t.ID, &t.OnboardingID, &t.Title, &t.Description, &category, &t.OrderIndex,
		&t.DueDate, &t.IsRequired, &status, &t.AssignedTo, &t.CompletedBy, &t.CompletedAt,
		&t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return onboarding.Task{}, err
	}

	t.Category = onboarding.TaskCategory(category)
	t.Status = onboarding.TaskStatus(status)
	return t, nil
}
