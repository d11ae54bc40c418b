package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/offboarding"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const offboardingColumns = `
	o.id, o.employee_id, o.termination_type, o.termination_date,
	o.last_working_day, o.notice_date, o.status, o.termination_reason, o.processed_by,
	o.equipment_returned, o.access_revoked, o.final_payment_processed,
	o.documents_collected, o.knowledge_transferred,
	o.exit_interview_scheduled, o.exit_interview_date,
	o.exit_interview_completed, o.exit_interview_notes,
	o.rehire_eligible, o.rehire_notes,
	o.completed_at, o.created_at, o.updated_at,
	e.name AS employee_name
`

type offboardingRepository struct {
	db *database.DB
}

func NewOffboardingRepository(db *database.DB) offboarding.OffboardingRepository {
	return &offboardingRepository{db: db}
}

func (r *offboardingRepository) Create(ctx context.Context, ob offboarding.Offboarding) (offboarding.Offboarding, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO offboardings (
			id, employee_id, termination_type, termination_date,
			last_working_day, notice_date, status, termination_reason, processed_by,
			equipment_returned, access_revoked, final_payment_processed,
			documents_collected, knowledge_transferred,
			exit_interview_scheduled, exit_interview_date,
			exit_interview_completed, exit_interview_notes,
			rehire_eligible, rehire_notes,
			completed_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`

	_, err := q.Exec(ctx, query,
		ob.ID, ob.EmployeeID, string(ob.TerminationType), ob.TerminationDate,
		ob.LastWorkingDay, ob.NoticeDate, string(ob.Status), ob.TerminationReason, ob.ProcessedBy,
		ob.EquipmentReturned, ob.AccessRevoked, ob.FinalPaymentProcessed,
		ob.DocumentsCollected, ob.KnowledgeTransferred,
		ob.ExitInterviewScheduled, ob.ExitInterviewDate,
		ob.ExitInterviewCompleted, ob.ExitInterviewNotes,
		ob.RehireEligible, ob.RehireNotes,
		ob.CompletedAt, ob.CreatedAt, ob.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return offboarding.Offboarding{}, offboarding.ErrActiveOffboardingExists
		}
		return offboarding.Offboarding{}, fmt.Errorf("failed to create offboarding: %w", err)
	}

	return ob, nil
}

func (r *offboardingRepository) GetByID(ctx context.Context, id string) (offboarding.Offboarding, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM offboardings o
		JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`, offboardingColumns)

	ob, err := scanOffboarding(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return offboarding.Offboarding{}, offboarding.ErrOffboardingNotFound
		}
		return offboarding.Offboarding{}, fmt.Errorf("failed to get offboarding: %w", err)
	}
	return ob, nil
}

func (r *offboardingRepository) GetActiveByEmployee(ctx context.Context, employeeID string) (offboarding.Offboarding, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM offboardings o
		JOIN employees e ON e.id = o.employee_id
		WHERE o.employee_id = $1 AND o.status NOT IN ('COMPLETED', 'CANCELLED')
	`, offboardingColumns)

	ob, err := scanOffboarding(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return offboarding.Offboarding{}, offboarding.ErrOffboardingNotFound
		}
		return offboarding.Offboarding{}, fmt.Errorf("failed to get offboarding: %w", err)
	}
	return ob, nil
}

func (r *offboardingRepository) ListActive(ctx context.Context) ([]offboarding.Offboarding, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM offboardings o
		JOIN employees e ON e.id = o.employee_id
		WHERE o.status NOT IN ('COMPLETED', 'CANCELLED')
		ORDER BY o.termination_date
	`, offboardingColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query offboardings: %w", err)
	}
	defer rows.Close()

	var items []offboarding.Offboarding
	for rows.Next() {
		ob, err := scanOffboarding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offboarding: %w", err)
		}
		items = append(items, ob)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read offboardings: %w", err)
	}
	return items, nil
}

func (r *offboardingRepository) Update(ctx context.Context, ob offboarding.Offboarding) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE offboardings
		SET status = $2, termination_reason = $3,
		    equipment_returned = $4, access_revoked = $5, final_payment_processed = $6,
		    documents_collected = $7, knowledge_transferred = $8,
		    exit_interview_scheduled = $9, exit_interview_date = $10,
		    exit_interview_completed = $11, exit_interview_notes = $12,
		    rehire_eligible = $13, rehire_notes = $14,
		    completed_at = $15, updated_at = $16
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		ob.ID, string(ob.Status), ob.TerminationReason,
		ob.EquipmentReturned, ob.AccessRevoked, ob.FinalPaymentProcessed,
		ob.DocumentsCollected, ob.KnowledgeTransferred,
		ob.ExitInterviewScheduled, ob.ExitInterviewDate,
		ob.ExitInterviewCompleted, ob.ExitInterviewNotes,
		ob.RehireEligible, ob.RehireNotes,
		ob.CompletedAt, ob.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update offboarding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return offboarding.ErrOffboardingNotFound
	}
	return nil
}

func (r *offboardingRepository) CountActive(ctx context.Context) (int64, error) {
	q := database.GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM offboardings WHERE status NOT IN ('COMPLETED', 'CANCELLED')`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active offboardings: %w", err)
	}
	return count, nil
}

func (r *offboardingRepository) CountByTerminationType(ctx context.Context, start, end time.Time) ([]offboarding.TerminationCount, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT termination_type, COUNT(*)
		FROM offboardings
		WHERE termination_date BETWEEN $1 AND $2
		GROUP BY termination_type
		ORDER BY termination_type
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query termination stats: %w", err)
	}
	defer rows.Close()

	var stats []offboarding.TerminationCount
	for rows.Next() {
		var terminationType string
		var count int64
		if err := rows.Scan(&terminationType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan termination stat: %w", err)
		}
		stats = append(stats, offboarding.TerminationCount{
			Type:  offboarding.TerminationType(terminationType),
			Count: count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read termination stats: %w", err)
	}
	return stats, nil
}

func scanOffboarding(row pgx.Row) (offboarding.Offboarding, error) {
	var ob offboarding.Offboarding
	var terminationType, status string

	err := row.Scan(
		&ob.ID, &ob.EmployeeID, &terminationType, &ob.TerminationDate,
		&ob.LastWorkingDay, &ob.NoticeDate, &status, &ob.TerminationReason, &ob.ProcessedBy,
		&ob.EquipmentReturned, &ob.AccessRevoked, &ob.FinalPaymentProcessed,
		&ob.DocumentsCollected, &ob.KnowledgeTransferred,
		&ob.ExitInterviewScheduled, &ob.ExitInterviewDate,
		&ob.ExitInterviewCompleted, &ob.ExitInterviewNotes,
		&ob.RehireEligible, &ob.RehireNotes,
		&ob.CompletedAt, &ob.CreatedAt, &ob.UpdatedAt,
		&ob.EmployeeName,
	)
	if err != nil {
		return offboarding.Offboarding{}, err
	}

	ob.TerminationType = offboarding.TerminationType(terminationType)
	ob.Status = offboarding.OffboardingStatus(status)
	return ob, nil
}
