package timerecord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joabe-nascimento/talents-flow/internal/config"
	"github.com/joabe-nascimento/talents-flow/internal/domain/timerecord"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type TimeRecordServiceImpl struct {
	recordRepo timerecord.TimeRecordRepository
	workDay    config.WorkDayConfig
	clock      clock.Clock
}

func NewTimeRecordService(
	recordRepo timerecord.TimeRecordRepository,
	workDay config.WorkDayConfig,
	clk clock.Clock,
) timerecord.TimeRecordService {
	return &TimeRecordServiceImpl{
		recordRepo: recordRepo,
		workDay:    workDay,
		clock:      clk,
	}
}

func (s *TimeRecordServiceImpl) ClockIn(ctx context.Context, req timerecord.ClockInRequest) (timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	now := s.clock.Now()
	today := dateOf(now)

	existing, err := s.recordRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err == nil {
		if existing.ClockIn != nil {
			return timerecord.TimeRecordResponse{}, timerecord.ErrAlreadyClockedIn
		}
		existing.ClockIn = &now
		late := maxInt(0, minutesOfDay(now)-s.workDay.StartMinutes)
		existing.LateMinutes = &late
		existing.UpdatedAt = now
		if err := s.recordRepo.Update(ctx, existing); err != nil {
			return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to update time record: %w", err)
		}
		return timerecord.ToResponse(existing), nil
	}
	if !errors.Is(err, timerecord.ErrRecordNotFound) {
		return timerecord.TimeRecordResponse{}, err
	}

	recordType := timerecord.TypeNormal
	if req.Type != nil {
		recordType = timerecord.RecordType(*req.Type)
	}

	late := maxInt(0, minutesOfDay(now)-s.workDay.StartMinutes)
	record := timerecord.TimeRecord{
		ID:          uuid.New().String(),
		EmployeeID:  req.EmployeeID,
		RecordDate:  today,
		ClockIn:     &now,
		LateMinutes: &late,
		Type:        recordType,
		Status:      timerecord.StatusPending,
		IPAddress:   req.IPAddress,
		Location:    req.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.recordRepo.Create(ctx, record)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to create time record: %w", err)
	}
	return timerecord.ToResponse(created), nil
}

func (s *TimeRecordServiceImpl) LunchOut(ctx context.Context, employeeID string) (timerecord.TimeRecordResponse, error) {
	record, err := s.todayRecord(ctx, employeeID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	if record.ClockIn == nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrNotClockedIn
	}
	if record.LunchOut != nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrLunchOutAlreadySet
	}

	now := s.clock.Now()
	record.LunchOut = &now
	record.UpdatedAt = now
	if err := s.recordRepo.Update(ctx, record); err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}
	return timerecord.ToResponse(record), nil
}

func (s *TimeRecordServiceImpl) LunchIn(ctx context.Context, employeeID string) (timerecord.TimeRecordResponse, error) {
	record, err := s.todayRecord(ctx, employeeID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	if record.LunchOut == nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrLunchOutNotSet
	}
	if record.LunchIn != nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrLunchInAlreadySet
	}

	now := s.clock.Now()
	record.LunchIn = &now
	record.UpdatedAt = now
	if err := s.recordRepo.Update(ctx, record); err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}
	return timerecord.ToResponse(record), nil
}

func (s *TimeRecordServiceImpl) ClockOut(ctx context.Context, employeeID string) (timerecord.TimeRecordResponse, error) {
	record, err := s.todayRecord(ctx, employeeID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	if record.ClockIn == nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrNotClockedIn
	}
	if record.ClockOut != nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrAlreadyClockedOut
	}

	now := s.clock.Now()
	record.ClockOut = &now

	worked := int(now.Sub(*record.ClockIn).Minutes())
	if record.LunchOut != nil && record.LunchIn != nil {
		worked -= int(record.LunchIn.Sub(*record.LunchOut).Minutes())
	}
	worked = maxInt(0, worked)
	overtime := maxInt(0, worked-s.workDay.StandardMinutes)
	early := maxInt(0, s.workDay.EndMinutes-minutesOfDay(now))

	record.WorkedMinutes = &worked
	record.OvertimeMinutes = &overtime
	record.EarlyDepartureMinutes = &early
	record.UpdatedAt = now

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}
	return timerecord.ToResponse(record), nil
}

func (s *TimeRecordServiceImpl) Approve(ctx context.Context, id string, approvedBy string) (timerecord.TimeRecordResponse, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	if record.Status != timerecord.StatusPending {
		return timerecord.TimeRecordResponse{}, timerecord.ErrAlreadyReviewed
	}

	now := s.clock.Now()
	record.Status = timerecord.StatusApproved
	record.ApprovedBy = &approvedBy
	record.ApprovedAt = &now
	record.UpdatedAt = now
	if err := s.recordRepo.Update(ctx, record); err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}
	return timerecord.ToResponse(record), nil
}

func (s *TimeRecordServiceImpl) Reject(ctx context.Context, id string, justification string) (timerecord.TimeRecordResponse, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	if record.Status != timerecord.StatusPending {
		return timerecord.TimeRecordResponse{}, timerecord.ErrAlreadyReviewed
	}

	now := s.clock.Now()
	record.Status = timerecord.StatusRejected
	record.Justification = &justification
	record.UpdatedAt = now
	if err := s.recordRepo.Update(ctx, record); err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}
	return timerecord.ToResponse(record), nil
}

func (s *TimeRecordServiceImpl) Get(ctx context.Context, id string) (timerecord.TimeRecordResponse, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	return timerecord.ToResponse(record), nil
}

func (s *TimeRecordServiceImpl) GetToday(ctx context.Context, employeeID string) (timerecord.TimeRecordResponse, error) {
	record, err := s.todayRecord(ctx, employeeID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	return timerecord.ToResponse(record), nil
}

func (s *TimeRecordServiceImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year, month int) ([]timerecord.TimeRecordResponse, error) {
	records, err := s.recordRepo.ListByEmployeeAndMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}
	return timerecord.ToResponses(records), nil
}

func (s *TimeRecordServiceImpl) TotalWorkedMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return s.recordRepo.TotalWorkedMinutes(ctx, employeeID, start, end)
}

func (s *TimeRecordServiceImpl) TotalOvertimeMinutes(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return s.recordRepo.TotalOvertimeMinutes(ctx, employeeID, start, end)
}

func (s *TimeRecordServiceImpl) CountPending(ctx context.Context) (int64, error) {
	return s.recordRepo.CountPending(ctx)
}

func (s *TimeRecordServiceImpl) todayRecord(ctx context.Context, employeeID string) (timerecord.TimeRecord, error) {
	record, err := s.recordRepo.GetByEmployeeAndDate(ctx, employeeID, dateOf(s.clock.Now()))
	if err != nil {
		if errors.Is(err, timerecord.ErrRecordNotFound) {
			return timerecord.TimeRecord{}, timerecord.ErrNoRecordToday
		}
		return timerecord.TimeRecord{}, err
	}
	return record, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
