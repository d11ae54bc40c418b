package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/domain/onboarding"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type OnboardingServiceImpl struct {
	onboardingRepo onboarding.OnboardingRepository
	taskRepo       onboarding.TaskRepository
	templateRepo   onboarding.TemplateRepository
	employeeRepo   employee.EmployeeRepository
	notifier       notification.NotificationService
	clock          clock.Clock
}

func NewOnboardingService(
	onboardingRepo onboarding.OnboardingRepository,
	taskRepo onboarding.TaskRepository,
	templateRepo onboarding.TemplateRepository,
	employeeRepo employee.EmployeeRepository,
	notifier notification.NotificationService,
	clk clock.Clock,
) onboarding.OnboardingService {
	return &OnboardingServiceImpl{
		onboardingRepo: onboardingRepo,
		taskRepo:       taskRepo,
		templateRepo:   templateRepo,
		employeeRepo:   employeeRepo,
		notifier:       notifier,
		clock:          clk,
	}
}

func (s *OnboardingServiceImpl) Start(ctx context.Context, req onboarding.StartOnboardingRequest) (onboarding.OnboardingResponse, error) {
	if err := req.Validate(); err != nil {
		return onboarding.OnboardingResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return onboarding.OnboardingResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	_, err = s.onboardingRepo.GetActiveByEmployee(ctx, emp.ID)
	if err == nil {
		return onboarding.OnboardingResponse{}, onboarding.ErrActiveOnboardingExists
	}
	if !errors.Is(err, onboarding.ErrOnboardingNotFound) {
		return onboarding.OnboardingResponse{}, err
	}

	tmpl, err := s.resolveTemplate(ctx, req.TemplateID, emp.DepartmentID)
	if err != nil {
		return onboarding.OnboardingResponse{}, err
	}

	now := s.clock.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	ob := onboarding.Onboarding{
		ID:         uuid.New().String(),
		EmployeeID: emp.ID,
		StartDate:  startDate,
		Status:     onboarding.StatusInProgress,
		MentorID:   req.MentorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if tmpl != nil {
		ob.TemplateID = &tmpl.ID
		if tmpl.EstimatedDays != nil {
			expected := startDate.AddDate(0, 0, *tmpl.EstimatedDays)
			ob.ExpectedEndDate = &expected
		}
	}

	created, err := s.onboardingRepo.Create(ctx, ob)
	if err != nil {
		return onboarding.OnboardingResponse{}, fmt.Errorf("failed to create onboarding: %w", err)
	}

	var tasks []onboarding.Task
	if tmpl != nil {
		tasks = make([]onboarding.Task, 0, len(tmpl.Tasks))
		for _, tt := range tmpl.Tasks {
			task := onboarding.Task{
				ID:           uuid.New().String(),
				OnboardingID: created.ID,
				Title:        tt.Title,
				Description:  tt.Description,
				Category:     tt.Category,
				OrderIndex:   tt.OrderIndex,
				IsRequired:   tt.IsRequired,
				Status:       onboarding.TaskPending,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if tt.DueDays != nil {
				due := startDate.AddDate(0, 0, *tt.DueDays)
				task.DueDate = &due
			}
			stored, err := s.taskRepo.Create(ctx, task)
			if err != nil {
				return onboarding.OnboardingResponse{}, fmt.Errorf("failed to create onboarding task: %w", err)
			}
			tasks = append(tasks, stored)
		}
	}

	s.notify(ctx, created.EmployeeID, notification.TypeOnboardingStarted, "Onboarding started",
		"Your onboarding checklist is ready.")

	return onboarding.ToResponse(created, tasks), nil
}

func (s *OnboardingServiceImpl) CompleteTask(ctx context.Context, req onboarding.CompleteTaskRequest) (onboarding.TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		return onboarding.TaskResponse{}, err
	}
	if task.Status == onboarding.TaskCompleted || task.Status == onboarding.TaskSkipped {
		return onboarding.TaskResponse{}, onboarding.ErrTaskAlreadyClosed
	}

	now := s.clock.Now()
	task.Status = onboarding.TaskCompleted
	task.CompletedBy = req.CompletedBy
	task.CompletedAt = &now
	if req.Notes != nil {
		task.Notes = req.Notes
	}
	task.UpdatedAt = now

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return onboarding.TaskResponse{}, fmt.Errorf("failed to update onboarding task: %w", err)
	}

	if err := s.refreshProgress(ctx, task.OnboardingID); err != nil {
		return onboarding.TaskResponse{}, err
	}

	return onboarding.ToTaskResponse(task), nil
}

func (s *OnboardingServiceImpl) SkipTask(ctx context.Context, req onboarding.SkipTaskRequest) (onboarding.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return onboarding.TaskResponse{}, err
	}

	task, err := s.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		return onboarding.TaskResponse{}, err
	}
	if task.IsRequired {
		return onboarding.TaskResponse{}, onboarding.ErrRequiredTaskSkip
	}
	if task.Status == onboarding.TaskCompleted || task.Status == onboarding.TaskSkipped {
		return onboarding.TaskResponse{}, onboarding.ErrTaskAlreadyClosed
	}

	now := s.clock.Now()
	task.Status = onboarding.TaskSkipped
	task.Notes = &req.Reason
	task.UpdatedAt = now

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return onboarding.TaskResponse{}, fmt.Errorf("failed to update onboarding task: %w", err)
	}

	if err := s.refreshProgress(ctx, task.OnboardingID); err != nil {
		return onboarding.TaskResponse{}, err
	}

	return onboarding.ToTaskResponse(task), nil
}

func (s *OnboardingServiceImpl) AssignMentor(ctx context.Context, onboardingID, mentorID string) (onboarding.OnboardingResponse, error) {
	ob, err := s.onboardingRepo.GetByID(ctx, onboardingID)
	if err != nil {
		return onboarding.OnboardingResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, mentorID); err != nil {
		return onboarding.OnboardingResponse{}, fmt.Errorf("failed to get mentor: %w", err)
	}

	ob.MentorID = &mentorID
	ob.UpdatedAt = s.clock.Now()
	if err := s.onboardingRepo.Update(ctx, ob); err != nil {
		return onboarding.OnboardingResponse{}, fmt.Errorf("failed to update onboarding: %w", err)
	}

	tasks, err := s.taskRepo.ListByOnboarding(ctx, ob.ID)
	if err != nil {
		return onboarding.OnboardingResponse{}, err
	}
	return onboarding.ToResponse(ob, tasks), nil
}

func (s *OnboardingServiceImpl) Get(ctx context.Context, id string) (onboarding.OnboardingResponse, error) {
	ob, err := s.onboardingRepo.GetByID(ctx, id)
	if err != nil {
		return onboarding.OnboardingResponse{}, err
	}
	tasks, err := s.taskRepo.ListByOnboarding(ctx, ob.ID)
	if err != nil {
		return onboarding.OnboardingResponse{}, err
	}
	return onboarding.ToResponse(ob, tasks), nil
}

func (s *OnboardingServiceImpl) GetByEmployee(ctx context.Context, employeeID string) (onboarding.OnboardingResponse, error) {
	ob, err := s.onboardingRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return onboarding.OnboardingResponse{}, err
	}
	tasks, err := s.taskRepo.ListByOnboarding(ctx, ob.ID)
	if err != nil {
		return onboarding.OnboardingResponse{}, err
	}
	return onboarding.ToResponse(ob, tasks), nil
}

func (s *OnboardingServiceImpl) ListActive(ctx context.Context) ([]onboarding.OnboardingResponse, error) {
	items, err := s.onboardingRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]onboarding.OnboardingResponse, 0, len(items))
	for _, ob := range items {
		result = append(result, onboarding.ToResponse(ob, nil))
	}
	return result, nil
}

func (s *OnboardingServiceImpl) CountActive(ctx context.Context) (int64, error) {
	return s.onboardingRepo.CountActive(ctx)
}

func (s *OnboardingServiceImpl) AverageProgress(ctx context.Context) (float64, error) {
	return s.onboardingRepo.AverageProgress(ctx)
}

// resolveTemplate picks the explicit template when given, otherwise the
// department's active template, otherwise the department-less default.
// No template at all is allowed; the instance just starts with no tasks.
func (s *OnboardingServiceImpl) resolveTemplate(ctx context.Context, templateID, departmentID *string) (*onboarding.Template, error) {
	if templateID != nil {
		tmpl, err := s.templateRepo.GetByID(ctx, *templateID)
		if err != nil {
			return nil, err
		}
		return &tmpl, nil
	}

	if departmentID != nil {
		tmpl, err := s.templateRepo.GetActiveByDepartment(ctx, *departmentID)
		if err == nil {
			return &tmpl, nil
		}
		if !errors.Is(err, onboarding.ErrTemplateNotFound) {
			return nil, err
		}
	}

	tmpl, err := s.templateRepo.GetDefaultActive(ctx)
	if err == nil {
		return &tmpl, nil
	}
	if !errors.Is(err, onboarding.ErrTemplateNotFound) {
		return nil, err
	}
	return nil, nil
}

// refreshProgress recomputes the instance percentage from the task
// counts. Skipped tasks stay in the denominator. 100% completes the
// instance and stamps the actual end date.
func (s *OnboardingServiceImpl) refreshProgress(ctx context.Context, onboardingID string) error {
	total, err := s.taskRepo.CountByOnboarding(ctx, onboardingID)
	if err != nil {
		return err
	}
	completed, err := s.taskRepo.CountCompletedByOnboarding(ctx, onboardingID)
	if err != nil {
		return err
	}

	progress := 0
	if total > 0 {
		progress = int(math.Round(float64(completed) * 100 / float64(total)))
	}

	ob, err := s.onboardingRepo.GetByID(ctx, onboardingID)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	ob.ProgressPercentage = progress
	ob.UpdatedAt = now
	if progress == 100 && ob.Status != onboarding.StatusCompleted {
		ob.Status = onboarding.StatusCompleted
		ob.ActualEndDate = &now

		s.notify(ctx, ob.EmployeeID, notification.TypeOnboardingCompleted, "Onboarding completed",
			"All onboarding tasks are done. Welcome aboard!")
	}

	if err := s.onboardingRepo.Update(ctx, ob); err != nil {
		return fmt.Errorf("failed to update onboarding: %w", err)
	}
	return nil
}

func (s *OnboardingServiceImpl) notify(ctx context.Context, employeeID string, notifType notification.NotificationType, title, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, employeeID, notifType, title, message); err != nil {
		slog.Error("failed to send onboarding notification",
			"employee_id", employeeID, "error", err)
	}
}
