package offboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/domain/offboarding"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type OffboardingServiceImpl struct {
	offboardingRepo offboarding.OffboardingRepository
	employeeRepo    employee.EmployeeRepository
	notifier        notification.NotificationService
	clock           clock.Clock
}

func NewOffboardingService(
	offboardingRepo offboarding.OffboardingRepository,
	employeeRepo employee.EmployeeRepository,
	notifier notification.NotificationService,
	clk clock.Clock,
) offboarding.OffboardingService {
	return &OffboardingServiceImpl{
		offboardingRepo: offboardingRepo,
		employeeRepo:    employeeRepo,
		notifier:        notifier,
		clock:           clk,
	}
}

func (s *OffboardingServiceImpl) Start(ctx context.Context, req offboarding.StartOffboardingRequest) (offboarding.OffboardingResponse, error) {
	if err := req.Validate(); err != nil {
		return offboarding.OffboardingResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return offboarding.OffboardingResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	_, err = s.offboardingRepo.GetActiveByEmployee(ctx, emp.ID)
	if err == nil {
		return offboarding.OffboardingResponse{}, offboarding.ErrActiveOffboardingExists
	}
	if !errors.Is(err, offboarding.ErrOffboardingNotFound) {
		return offboarding.OffboardingResponse{}, err
	}

	terminationDate, _ := time.Parse("2006-01-02", req.TerminationDate)
	lastWorkingDay := terminationDate
	if req.LastWorkingDay != nil {
		lastWorkingDay, _ = time.Parse("2006-01-02", *req.LastWorkingDay)
	}

	now := s.clock.Now()
	noticeDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	ob := offboarding.Offboarding{
		ID:                uuid.New().String(),
		EmployeeID:        emp.ID,
		TerminationType:   offboarding.TerminationType(req.TerminationType),
		TerminationDate:   terminationDate,
		LastWorkingDay:    lastWorkingDay,
		NoticeDate:        noticeDate,
		Status:            offboarding.StatusInitiated,
		TerminationReason: req.Reason,
		ProcessedBy:       req.ProcessedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.offboardingRepo.Create(ctx, ob)
	if err != nil {
		return offboarding.OffboardingResponse{}, fmt.Errorf("failed to create offboarding: %w", err)
	}

	s.notify(ctx, created.EmployeeID, notification.TypeOffboardingStarted, "Offboarding started",
		"An offboarding process has been opened for you.")

	return offboarding.ToResponse(created), nil
}

func (s *OffboardingServiceImpl) UpdateChecklist(ctx context.Context, req offboarding.UpdateChecklistRequest) (offboarding.OffboardingResponse, error) {
	ob, err := s.offboardingRepo.GetByID(ctx, req.ID)
	if err != nil {
		return offboarding.OffboardingResponse{}, err
	}
	if ob.Status == offboarding.StatusCompleted {
		return offboarding.OffboardingResponse{}, offboarding.ErrAlreadyCompleted
	}

	applyIfSet := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	applyIfSet(&ob.EquipmentReturned, req.EquipmentReturned)
	applyIfSet(&ob.AccessRevoked, req.AccessRevoked)
	applyIfSet(&ob.FinalPaymentProcessed, req.FinalPaymentProcessed)
	applyIfSet(&ob.DocumentsCollected, req.DocumentsCollected)
	applyIfSet(&ob.KnowledgeTransferred, req.KnowledgeTransferred)
	applyIfSet(&ob.ExitInterviewCompleted, req.ExitInterviewCompleted)

	now := s.clock.Now()
	if ob.Status == offboarding.StatusInitiated {
		ob.Status = offboarding.StatusInProgress
	}
	ob.UpdatedAt = now

	if ob.ChecklistDone() && ob.ExitInterviewCompleted {
		return s.finish(ctx, ob)
	}

	if err := s.offboardingRepo.Update(ctx, ob); err != nil {
		return offboarding.OffboardingResponse{}, fmt.Errorf("failed to update offboarding: %w", err)
	}
	return offboarding.ToResponse(ob), nil
}

func (s *OffboardingServiceImpl) ScheduleExitInterview(ctx context.Context, id string, interviewDate time.Time) (offboarding.OffboardingResponse, error) {
	ob, err := s.offboardingRepo.GetByID(ctx, id)
	if err != nil {
		return offboarding.OffboardingResponse{}, err
	}
	if ob.Status == offboarding.StatusCompleted {
		return offboarding.OffboardingResponse{}, offboarding.ErrAlreadyCompleted
	}

	ob.ExitInterviewScheduled = true
	ob.ExitInterviewDate = &interviewDate
	ob.Status = offboarding.StatusPendingExitInterview
	ob.UpdatedAt = s.clock.Now()

	if err := s.offboardingRepo.Update(ctx, ob); err != nil {
		return offboarding.OffboardingResponse{}, fmt.Errorf("failed to update offboarding: %w", err)
	}
	return offboarding.ToResponse(ob), nil
}

func (s *OffboardingServiceImpl) CompleteExitInterview(ctx context.Context, req offboarding.CompleteExitInterviewRequest) (offboarding.OffboardingResponse, error) {
	ob, err := s.offboardingRepo.GetByID(ctx, req.ID)
	if err != nil {
		return offboarding.OffboardingResponse{}, err
	}
	if ob.Status == offboarding.StatusCompleted {
		return offboarding.OffboardingResponse{}, offboarding.ErrAlreadyCompleted
	}

	ob.ExitInterviewCompleted = true
	ob.ExitInterviewNotes = req.Notes
	ob.RehireEligible = req.RehireEligible
	ob.RehireNotes = req.RehireNotes
	ob.Status = offboarding.StatusInProgress
	ob.UpdatedAt = s.clock.Now()

	if ob.ChecklistDone() {
		return s.finish(ctx, ob)
	}

	if err := s.offboardingRepo.Update(ctx, ob); err != nil {
		return offboarding.OffboardingResponse{}, fmt.Errorf("failed to update offboarding: %w", err)
	}
	return offboarding.ToResponse(ob), nil
}

func (s *OffboardingServiceImpl) Complete(ctx context.Context, id string) (offboarding.OffboardingResponse, error) {
	ob, err := s.offboardingRepo.GetByID(ctx, id)
	if err != nil {
		return offboarding.OffboardingResponse{}, err
	}
	if ob.Status == offboarding.StatusCompleted {
		return offboarding.OffboardingResponse{}, offboarding.ErrAlreadyCompleted
	}
	ob.UpdatedAt = s.clock.Now()
	return s.finish(ctx, ob)
}

func (s *OffboardingServiceImpl) Get(ctx context.Context, id string) (offboarding.OffboardingResponse, error) {
	ob, err := s.offboardingRepo.GetByID(ctx, id)
	if err != nil {
		return offboarding.OffboardingResponse{}, err
	}
	return offboarding.ToResponse(ob), nil
}

func (s *OffboardingServiceImpl) GetByEmployee(ctx context.Context, employeeID string) (offboarding.OffboardingResponse, error) {
	ob, err := s.offboardingRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return offboarding.OffboardingResponse{}, err
	}
	return offboarding.ToResponse(ob), nil
}

func (s *OffboardingServiceImpl) ListActive(ctx context.Context) ([]offboarding.OffboardingResponse, error) {
	items, err := s.offboardingRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return offboarding.ToResponses(items), nil
}

func (s *OffboardingServiceImpl) CountActive(ctx context.Context) (int64, error) {
	return s.offboardingRepo.CountActive(ctx)
}

func (s *OffboardingServiceImpl) TerminationStats(ctx context.Context, start, end time.Time) ([]offboarding.TerminationCount, error) {
	return s.offboardingRepo.CountByTerminationType(ctx, start, end)
}

// finish closes the instance and terminates the employee record.
func (s *OffboardingServiceImpl) finish(ctx context.Context, ob offboarding.Offboarding) (offboarding.OffboardingResponse, error) {
	now := s.clock.Now()
	ob.Status = offboarding.StatusCompleted
	ob.CompletedAt = &now
	ob.UpdatedAt = now

	if err := s.offboardingRepo.Update(ctx, ob); err != nil {
		return offboarding.OffboardingResponse{}, fmt.Errorf("failed to update offboarding: %w", err)
	}
	if err := s.employeeRepo.UpdateStatus(ctx, ob.EmployeeID, employee.StatusTerminated); err != nil {
		return offboarding.OffboardingResponse{}, fmt.Errorf("failed to terminate employee: %w", err)
	}

	s.notify(ctx, ob.EmployeeID, notification.TypeOffboardingCompleted, "Offboarding completed",
		"The offboarding process has been finalized.")

	return offboarding.ToResponse(ob), nil
}

func (s *OffboardingServiceImpl) notify(ctx context.Context, employeeID string, notifType notification.NotificationType, title, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, employeeID, notifType, title, message); err != nil {
		slog.Error("failed to send offboarding notification",
			"employee_id", employeeID, "error", err)
	}
}
