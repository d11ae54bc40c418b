package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/onboarding"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const templateColumns = `
	id, name, description, department_id, estimated_days, is_active, created_at, updated_at
`

type onboardingTemplateRepository struct {
	db *database.DB
}

func NewOnboardingTemplateRepository(db *database.DB) onboarding.TemplateRepository {
	return &onboardingTemplateRepository{db: db}
}

func (r *onboardingTemplateRepository) GetByID(ctx context.Context, id string) (onboarding.Template, error) {
	query := fmt.Sprintf(`SELECT %s FROM onboarding_templates WHERE id = $1`, templateColumns)
	return r.getOne(ctx, query, id)
}

func (r *onboardingTemplateRepository) GetActiveByDepartment(ctx context.Context, departmentID string) (onboarding.Template, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM onboarding_templates
		WHERE department_id = $1 AND is_active = true
		ORDER BY updated_at DESC
		LIMIT 1
	`, templateColumns)
	return r.getOne(ctx, query, departmentID)
}

func (r *onboardingTemplateRepository) GetDefaultActive(ctx context.Context) (onboarding.Template, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM onboarding_templates
		WHERE department_id IS NULL AND is_active = true
		ORDER BY updated_at DESC
		LIMIT 1
	`, templateColumns)
	return r.getOne(ctx, query)
}

func (r *onboardingTemplateRepository) List(ctx context.Context) ([]onboarding.Template, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM onboarding_templates ORDER BY name`, templateColumns)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []onboarding.Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, tmpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	for i := range templates {
		tasks, err := r.loadTasks(ctx, templates[i].ID)
		if err != nil {
			return nil, err
		}
		templates[i].Tasks = tasks
	}
	return templates, nil
}

func (r *onboardingTemplateRepository) getOne(ctx context.Context, query string, args ...any) (onboarding.Template, error) {
	q := database.GetQuerier(ctx, r.db)

	tmpl, err := scanTemplate(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return onboarding.Template{}, onboarding.ErrTemplateNotFound
		}
		return onboarding.Template{}, fmt.Errorf("failed to get template: %w", err)
	}

	tasks, err := r.loadTasks(ctx, tmpl.ID)
	if err != nil {
		return onboarding.Template{}, err
	}
	tmpl.Tasks = tasks
	return tmpl, nil
}

func (r *onboardingTemplateRepository) loadTasks(ctx context.Context, templateID string) ([]onboarding.TaskTemplate, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, template_id, title, description, category, order_index, due_days, is_required
		FROM onboarding_task_templates
		WHERE template_id = $1
		ORDER BY order_index
	`

	rows, err := q.Query(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task templates: %w", err)
	}
	defer rows.Close()

	var tasks []onboarding.TaskTemplate
	for rows.Next() {
		var t onboarding.TaskTemplate
		var category string
		err := rows.Scan(&t.ID, &t.TemplateID, &t.Title, &t.Description, &category, &t.OrderIndex, &t.DueDays, &t.IsRequired)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task template: %w", err)
		}
		t.Category = onboarding.TaskCategory(category)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task templates: %w", err)
	}
	return tasks, nil
}

func scanTemplate(row pgx.Row) (onboarding.Template, error) {
	var tmpl onboarding.Template
	err := row.Scan(
		&tmpl.ID, &tmpl.Name, &tmpl.Description, &tmpl.DepartmentID,
		&tmpl.EstimatedDays, &tmpl.IsActive, &tmpl.CreatedAt, &tmpl.UpdatedAt,
	)
	if err != nil {
		return onboarding.Template{}, err
	}
	return tmpl, nil
}
