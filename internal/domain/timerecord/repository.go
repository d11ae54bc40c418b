package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access methods for time records.
// (employee_id, record_date) is unique; the aggregate queries coalesce
// to zero when no rows match.
type TimeRecordRepository interface {
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)
	GetByID(ctx context.Context, id string) (TimeRecord, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (TimeRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]TimeRecord, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year, month int) ([]TimeRecord, error)
	Update(ctx context.Context, record TimeRecord) error
	TotalWorkedMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error)
	TotalOvertimeMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error)
	CountPending(ctx context.Context) (int64, error)
}
