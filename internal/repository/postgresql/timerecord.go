package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/timerecord"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const timeRecordColumns = `
	t.id, t.employee_id, t.record_date,
	t.clock_in, t.lunch_out, t.lunch_in, t.clock_out,
	t.worked_minutes, t.overtime_minutes, t.late_minutes, t.early_departure_minutes,
	t.type, t.status, t.justification, t.ip_address, t.location,
	t.approved_by, t.approved_at, t.created_at, t.updated_at,
	e.name AS employee_name
`

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

func (r *timeRecordRepository) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_records (
			id, employee_id, record_date,
			clock_in, lunch_out, lunch_in, clock_out,
			worked_minutes, overtime_minutes, late_minutes, early_departure_minutes,
			type, status, justification, ip_address, location,
			approved_by, approved_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := q.Exec(ctx, query,
		record.ID, record.EmployeeID, record.RecordDate,
		record.ClockIn, record.LunchOut, record.LunchIn, record.ClockOut,
		record.WorkedMinutes, record.OvertimeMinutes, record.LateMinutes, record.EarlyDepartureMinutes,
		string(record.Type), string(record.Status), record.Justification, record.IPAddress, record.Location,
		record.ApprovedBy, record.ApprovedAt, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return timerecord.TimeRecord{}, timerecord.ErrAlreadyClockedIn
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return record, nil
}

func (r *timeRecordRepository) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_records t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
	`, timeRecordColumns)

	record, err := scanTimeRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to get time record: %w", err)
	}
	return record, nil
}

func (r *timeRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (timerecord.TimeRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_records t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1 AND t.record_date = $2
	`, timeRecordColumns)

	record, err := scanTimeRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to get time record: %w", err)
	}
	return record, nil
}

func (r *timeRecordRepository) ListByEmployee(ctx context.Context, employeeID string) ([]timerecord.TimeRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_records t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1
		ORDER BY t.record_date DESC
	`, timeRecordColumns)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query time records: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

func (r *timeRecordRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year, month int) ([]timerecord.TimeRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_records t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1
		  AND EXTRACT(YEAR FROM t.record_date) = $2
		  AND EXTRACT(MONTH FROM t.record_date) = $3
		ORDER BY t.record_date
	`, timeRecordColumns)

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query time records: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

func (r *timeRecordRepository) Update(ctx context.Context, record timerecord.TimeRecord) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET clock_in = $2, lunch_out = $3, lunch_in = $4, clock_out = $5,
		    worked_minutes = $6, overtime_minutes = $7, late_minutes = $8, early_departure_minutes = $9,
		    status = $10, justification = $11, approved_by = $12, approved_at = $13,
		    updated_at = $14
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.ClockIn, record.LunchOut, record.LunchIn, record.ClockOut,
		record.WorkedMinutes, record.OvertimeMinutes, record.LateMinutes, record.EarlyDepartureMinutes,
		string(record.Status), record.Justification, record.ApprovedBy, record.ApprovedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update time record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrRecordNotFound
	}
	return nil
}

func (r *timeRecordRepository) TotalWorkedMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return r.sumMinutes(ctx, "worked_minutes", employeeID, start, end)
}

func (r *timeRecordRepository) TotalOvertimeMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return r.sumMinutes(ctx, "overtime_minutes", employeeID, start, end)
}

func (r *timeRecordRepository) CountPending(ctx context.Context) (int64, error) {
	q := database.GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM time_records WHERE status = 'PENDING'`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending time records: %w", err)
	}
	return count, nil
}

func (r *timeRecordRepository) sumMinutes(ctx context.Context, column, employeeID string, start, end time.Time) (int, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(%s), 0)
		FROM time_records
		WHERE employee_id = $1 AND record_date BETWEEN $2 AND $3
	`, column)

	var total int
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum time record minutes: %w", err)
	}
	return total, nil
}

func scanTimeRecord(row pgx.Row) (timerecord.TimeRecord, error) {
	var t timerecord.TimeRecord
	var recordType, status string

	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.RecordDate,
		&t.ClockIn, &t.LunchOut, &t.LunchIn, &t.ClockOut,
		&t.WorkedMinutes, &t.OvertimeMinutes, &t.LateMinutes, &t.EarlyDepartureMinutes,
		&recordType, &status, &t.Justification, &t.IPAddress, &t.Location,
		&t.ApprovedBy, &t.ApprovedAt, &t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeName,
	)
	if err != nil {
		return timerecord.TimeRecord{}, err
	}

	t.Type = timerecord.RecordType(recordType)
	t.Status = timerecord.RecordStatus(status)
	return t, nil
}

func collectTimeRecords(rows pgx.Rows) ([]timerecord.TimeRecord, error) {
	var records []timerecord.TimeRecord
	for rows.Next() {
		record, err := scanTimeRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time records: %w", err)
	}
	return records, nil
}
