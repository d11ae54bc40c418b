package timerecord

import (
	"context"
	"time"
)

// TimeRecordService defines business logic for the daily clock
// sequence and the reviewer approval flow.
type TimeRecordService interface {
	// ClockIn opens today's record. Fails when a clock-in already
	// exists for the day.
	ClockIn(ctx context.Context, req ClockInRequest) (TimeRecordResponse, error)

	// LunchOut requires clock-in set and lunch-out unset.
	LunchOut(ctx context.Context, employeeID string) (TimeRecordResponse, error)

	// LunchIn requires lunch-out set and lunch-in unset.
	LunchIn(ctx context.Context, employeeID string) (TimeRecordResponse, error)

	// ClockOut requires clock-in set and clock-out unset; derives
	// worked, overtime and early-departure minutes.
	ClockOut(ctx context.Context, employeeID string) (TimeRecordResponse, error)

	// Approve and Reject set the reviewer outcome on a PENDING record.
	Approve(ctx context.Context, id string, approvedBy string) (TimeRecordResponse, error)
	Reject(ctx context.Context, id string, justification string) (TimeRecordResponse, error)

	Get(ctx context.Context, id string) (TimeRecordResponse, error)
	GetToday(ctx context.Context, employeeID string) (TimeRecordResponse, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year, month int) ([]TimeRecordResponse, error)
	TotalWorkedMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error)
	TotalOvertimeMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error)
	CountPending(ctx context.Context) (int64, error)
}
