package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/vacation"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const vacationColumns = `
	v.id, v.employee_id, v.type, v.start_date, v.end_date, v.days,
	v.status, v.reason, v.reviewed_by, v.reviewed_at, v.rejection_reason,
	v.created_at, v.updated_at,
	e.name AS employee_name
`

type vacationRepository struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepository{db: db}
}

func (r *vacationRepository) Create(ctx context.Context, req vacation.VacationRequest) (vacation.VacationRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_requests (
			id, employee_id, type, start_date, end_date, days,
			status, reason, reviewed_by, reviewed_at, rejection_reason,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := q.Exec(ctx, query,
		req.ID, req.EmployeeID, string(req.Type), req.StartDate, req.EndDate, req.Days,
		string(req.Status), req.Reason, req.ReviewedBy, req.ReviewedAt, req.RejectionReason,
		req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return vacation.VacationRequest{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return req, nil
}

func (r *vacationRepository) GetByID(ctx context.Context, id string) (vacation.VacationRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM vacation_requests v
		JOIN employees e ON e.id = v.employee_id
		WHERE v.id = $1
	`, vacationColumns)

	req, err := scanVacation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return vacation.VacationRequest{}, vacation.ErrRequestNotFound
		}
		return vacation.VacationRequest{}, fmt.Errorf("failed to get vacation request: %w", err)
	}
	return req, nil
}

func (r *vacationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM vacation_requests v
		JOIN employees e ON e.id = v.employee_id
		WHERE v.employee_id = $1
		ORDER BY v.start_date DESC
	`, vacationColumns)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacation requests: %w", err)
	}
	defer rows.Close()

	return collectVacations(rows)
}

func (r *vacationRepository) ListByStatus(ctx context.Context, status vacation.VacationStatus) ([]vacation.VacationRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM vacation_requests v
		JOIN employees e ON e.id = v.employee_id
		WHERE v.status = $1
		ORDER BY v.created_at
	`, vacationColumns)

	rows, err := q.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query vacation requests: %w", err)
	}
	defer rows.Close()

	return collectVacations(rows)
}

func (r *vacationRepository) Update(ctx context.Context, req vacation.VacationRequest) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE vacation_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, rejection_reason = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, string(req.Status), req.ReviewedBy, req.ReviewedAt, req.RejectionReason, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update vacation request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrRequestNotFound
	}
	return nil
}

func scanVacation(row pgx.Row) (vacation.VacationRequest, error) {
	var v vacation.VacationRequest
	var vacationType, status string

	err := row.Scan(
		&v.ID, &v.EmployeeID, &vacationType, &v.StartDate, &v.EndDate, &v.Days,
		&status, &v.Reason, &v.ReviewedBy, &v.ReviewedAt, &v.RejectionReason,
		&v.CreatedAt, &v.UpdatedAt,
		&v.EmployeeName,
	)
	if err != nil {
		return vacation.VacationRequest{}, err
	}

	v.Type = vacation.VacationType(vacationType)
	v.Status = vacation.VacationStatus(status)
	return v, nil
}

func collectVacations(rows pgx.Rows) ([]vacation.VacationRequest, error) {
	var requests []vacation.VacationRequest
	for rows.Next() {
		req, err := scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vacation requests: %w", err)
	}
	return requests, nil
}
