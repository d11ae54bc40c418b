package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type NotificationServiceImpl struct {
	notificationRepo notification.NotificationRepository
	clock            clock.Clock
}

func NewNotificationService(
	notificationRepo notification.NotificationRepository,
	clk clock.Clock,
) notification.NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		clock:            clk,
	}
}

func (s *NotificationServiceImpl) Notify(ctx context.Context, employeeID string, notifType notification.NotificationType, title, message string) error {
	n := notification.Notification{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Type:       notifType,
		Title:      title,
		Message:    message,
		CreatedAt:  s.clock.Now(),
	}

	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *NotificationServiceImpl) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]notification.NotificationResponse, error) {
	items, err := s.notificationRepo.ListByEmployee(ctx, employeeID, unreadOnly)
	if err != nil {
		return nil, err
	}
	return notification.ToResponses(items), nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	if _, err := s.notificationRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, id)
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, employeeID string) error {
	return s.notificationRepo.MarkAllRead(ctx, employeeID)
}

func (s *NotificationServiceImpl) CountUnread(ctx context.Context, employeeID string) (int, error) {
	return s.notificationRepo.CountUnread(ctx, employeeID)
}
