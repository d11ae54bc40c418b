package timerecord

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joabe-nascimento/talents-flow/internal/config"
	"github.com/joabe-nascimento/talents-flow/internal/domain/timerecord"
)

type fakeTimeRecordRepo struct {
	records map[string]timerecord.TimeRecord
}

func newFakeTimeRecordRepo() *fakeTimeRecordRepo {
	return &fakeTimeRecordRepo{records: make(map[string]timerecord.TimeRecord)}
}

func (r *fakeTimeRecordRepo) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	for _, existing := range r.records {
		if existing.EmployeeID == record.EmployeeID && existing.RecordDate.Equal(record.RecordDate) {
			return timerecord.TimeRecord{}, timerecord.ErrAlreadyClockedIn
		}
	}
	r.records[record.ID] = record
	return record, nil
}

func (r *fakeTimeRecordRepo) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
	}
	return record, nil
}

func (r *fakeTimeRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (timerecord.TimeRecord, error) {
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.RecordDate.Equal(date) {
			return record, nil
		}
	}
	return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
}

func (r *fakeTimeRecordRepo) ListByEmployee(ctx context.Context, employeeID string) ([]timerecord.TimeRecord, error) {
	var result []timerecord.TimeRecord
	for _, record := range r.records {
		if record.EmployeeID == employeeID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeTimeRecordRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year, month int) ([]timerecord.TimeRecord, error) {
	var result []timerecord.TimeRecord
	for _, record := range r.records {
		if record.EmployeeID == employeeID &&
			record.RecordDate.Year() == year && int(record.RecordDate.Month()) == month {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeTimeRecordRepo) Update(ctx context.Context, record timerecord.TimeRecord) error {
	if _, ok := r.records[record.ID]; !ok {
		return timerecord.ErrRecordNotFound
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeTimeRecordRepo) TotalWorkedMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	total := 0
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.WorkedMinutes != nil &&
			!record.RecordDate.Before(start) && !record.RecordDate.After(end) {
			total += *record.WorkedMinutes
		}
	}
	return total, nil
}

func (r *fakeTimeRecordRepo) TotalOvertimeMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	total := 0
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.OvertimeMinutes != nil &&
			!record.RecordDate.Before(start) && !record.RecordDate.After(end) {
			total += *record.OvertimeMinutes
		}
	}
	return total, nil
}

func (r *fakeTimeRecordRepo) CountPending(ctx context.Context) (int64, error) {
	var count int64
	for _, record := range r.records {
		if record.Status == timerecord.StatusPending {
			count++
		}
	}
	return count, nil
}

// movableClock lets a test walk through the day mark by mark.
type movableClock struct {
	t time.Time
}

func (c *movableClock) Now() time.Time {
	return c.t
}

func (c *movableClock) set(hour, minute int) {
	c.t = time.Date(c.t.Year(), c.t.Month(), c.t.Day(), hour, minute, 0, 0, time.UTC)
}

func defaultWorkDay() config.WorkDayConfig {
	return config.WorkDayConfig{StartMinutes: 9 * 60, EndMinutes: 18 * 60, StandardMinutes: 480}
}

func TestTimeRecordService_FullDay(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimeRecordRepo()
	clk := &movableClock{t: time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC)}
	svc := NewTimeRecordService(repo, defaultWorkDay(), clk)

	in, err := svc.ClockIn(ctx, timerecord.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, in.LateMinutes)
	assert.Equal(t, 15, *in.LateMinutes)
	assert.Equal(t, "PENDING", in.Status)
	assert.Equal(t, "NORMAL", in.Type)

	clk.set(12, 0)
	_, err = svc.LunchOut(ctx, "emp-1")
	require.NoError(t, err)

	clk.set(13, 0)
	_, err = svc.LunchIn(ctx, "emp-1")
	require.NoError(t, err)

	clk.set(18, 30)
	out, err := svc.ClockOut(ctx, "emp-1")
	require.NoError(t, err)

	// 09:15 to 18:30 is 555 minutes, minus 60 of lunch
	require.NotNil(t, out.WorkedMinutes)
	assert.Equal(t, 495, *out.WorkedMinutes)
	require.NotNil(t, out.OvertimeMinutes)
	assert.Equal(t, 15, *out.OvertimeMinutes)
	require.NotNil(t, out.EarlyDepartureMinutes)
	assert.Equal(t, 0, *out.EarlyDepartureMinutes)
}

func TestTimeRecordService_ClockIn_Twice(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimeRecordRepo()
	clk := &movableClock{t: time.Date(2024, 6, 3, 8, 55, 0, 0, time.UTC)}
	svc := NewTimeRecordService(repo, defaultWorkDay(), clk)

	in, err := svc.ClockIn(ctx, timerecord.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, in.LateMinutes)
	assert.Equal(t, 0, *in.LateMinutes)

	_, err = svc.ClockIn(ctx, timerecord.ClockInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, timerecord.ErrAlreadyClockedIn)
}

func TestTimeRecordService_LunchOut_WithoutClockIn(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimeRecordRepo()
	clk := &movableClock{t: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)}
	svc := NewTimeRecordService(repo, defaultWorkDay(), clk)

	_, err := svc.LunchOut(ctx, "emp-1")
	assert.ErrorIs(t, err, timerecord.ErrNoRecordToday)
}

func TestTimeRecordService_LunchIn_BeforeLunchOut(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimeRecordRepo()
	clk := &movableClock{t: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)}
	svc := NewTimeRecordService(repo, defaultWorkDay(), clk)

	_, err := svc.ClockIn(ctx, timerecord.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.LunchIn(ctx, "emp-1")
	assert.ErrorIs(t, err, timerecord.ErrLunchOutNotSet)
}

func TestTimeRecordService_ClockOut_EarlyDeparture(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimeRecordRepo()
	clk := &movableClock{t: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)}
	svc := NewTimeRecordService(repo, defaultWorkDay(), clk)

	_, err := svc.ClockIn(ctx, timerecord.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	clk.set(16, 30)
	out, err := svc.ClockOut(ctx, "emp-1")
	require.NoError(t, err)

	require.NotNil(t, out.WorkedMinutes)
	assert.Equal(t, 450, *out.WorkedMinutes)
	require.NotNil(t, out.OvertimeMinutes)
	assert.Equal(t, 0, *out.OvertimeMinutes)
	require.NotNil(t, out.EarlyDepartureMinutes)
	assert.Equal(t, 90, *out.EarlyDepartureMinutes)

	_, err = svc.ClockOut(ctx, "emp-1")
	assert.ErrorIs(t, err, timerecord.ErrAlreadyClockedOut)
}

func TestTimeRecordService_ApproveAndReject(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimeRecordRepo()
	clk := &movableClock{t: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)}
	svc := NewTimeRecordService(repo, defaultWorkDay(), clk)

	in, err := svc.ClockIn(ctx, timerecord.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, in.ID, "manager-1")
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "manager-1", *approved.ApprovedBy)

	// A reviewed record cannot be reviewed again.
	_, err = svc.Reject(ctx, in.ID, "late without reason")
	assert.ErrorIs(t, err, timerecord.ErrAlreadyReviewed)
}

func TestTimeRecordService_Totals(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimeRecordRepo()
	clk := &movableClock{t: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)}
	svc := NewTimeRecordService(repo, defaultWorkDay(), clk)

	_, err := svc.ClockIn(ctx, timerecord.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	clk.set(18, 0)
	_, err = svc.ClockOut(ctx, "emp-1")
	require.NoError(t, err)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	worked, err := svc.TotalWorkedMinutes(ctx, "emp-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, 540, worked)

	overtime, err := svc.TotalOvertimeMinutes(ctx, "emp-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, 60, overtime)
}
