package vacation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/domain/vacation"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type VacationServiceImpl struct {
	vacationRepo vacation.VacationRepository
	employeeRepo employee.EmployeeRepository
	notifier     notification.NotificationService
	clock        clock.Clock
}

func NewVacationService(
	vacationRepo vacation.VacationRepository,
	employeeRepo employee.EmployeeRepository,
	notifier notification.NotificationService,
	clk clock.Clock,
) vacation.VacationService {
	return &VacationServiceImpl{
		vacationRepo: vacationRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		clock:        clk,
	}
}

func (s *VacationServiceImpl) Create(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	days := int(endDate.Sub(startDate).Hours()/24) + 1

	now := s.clock.Now()
	request := vacation.VacationRequest{
		ID:         uuid.New().String(),
		EmployeeID: emp.ID,
		Type:       vacation.VacationType(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Status:     vacation.StatusPending,
		Reason:     req.Reason,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.vacationRepo.Create(ctx, request)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return vacation.ToResponse(created), nil
}

func (s *VacationServiceImpl) Approve(ctx context.Context, id, reviewerID string) (vacation.VacationResponse, error) {
	request, err := s.vacationRepo.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	if request.Status != vacation.StatusPending {
		return vacation.VacationResponse{}, vacation.ErrAlreadyProcessed
	}

	now := s.clock.Now()
	request.Status = vacation.StatusApproved
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &now
	request.UpdatedAt = now

	if err := s.vacationRepo.Update(ctx, request); err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to update vacation request: %w", err)
	}

	s.notify(ctx, request.EmployeeID, notification.TypeVacationApproved, "Vacation approved",
		fmt.Sprintf("Your request from %s to %s was approved.",
			request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02")))

	return vacation.ToResponse(request), nil
}

func (s *VacationServiceImpl) Reject(ctx context.Context, id, reviewerID, reason string) (vacation.VacationResponse, error) {
	request, err := s.vacationRepo.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	if request.Status != vacation.StatusPending {
		return vacation.VacationResponse{}, vacation.ErrAlreadyProcessed
	}

	now := s.clock.Now()
	request.Status = vacation.StatusRejected
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &now
	request.RejectionReason = &reason
	request.UpdatedAt = now

	if err := s.vacationRepo.Update(ctx, request); err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to update vacation request: %w", err)
	}

	s.notify(ctx, request.EmployeeID, notification.TypeVacationRejected, "Vacation rejected",
		fmt.Sprintf("Your request from %s to %s was rejected.",
			request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02")))

	return vacation.ToResponse(request), nil
}

func (s *VacationServiceImpl) Cancel(ctx context.Context, id string) (vacation.VacationResponse, error) {
	request, err := s.vacationRepo.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	if request.Status != vacation.StatusPending {
		return vacation.VacationResponse{}, vacation.ErrAlreadyProcessed
	}

	request.Status = vacation.StatusCancelled
	request.UpdatedAt = s.clock.Now()

	if err := s.vacationRepo.Update(ctx, request); err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to update vacation request: %w", err)
	}
	return vacation.ToResponse(request), nil
}

func (s *VacationServiceImpl) Get(ctx context.Context, id string) (vacation.VacationResponse, error) {
	request, err := s.vacationRepo.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	return vacation.ToResponse(request), nil
}

func (s *VacationServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationResponse, error) {
	requests, err := s.vacationRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return vacation.ToResponses(requests), nil
}

func (s *VacationServiceImpl) ListPending(ctx context.Context) ([]vacation.VacationResponse, error) {
	requests, err := s.vacationRepo.ListByStatus(ctx, vacation.StatusPending)
	if err != nil {
		return nil, err
	}
	return vacation.ToResponses(requests), nil
}

func (s *VacationServiceImpl) notify(ctx context.Context, employeeID string, notifType notification.NotificationType, title, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, employeeID, notifType, title, message); err != nil {
		slog.Error("failed to send vacation notification",
			"employee_id", employeeID, "error", err)
	}
}
