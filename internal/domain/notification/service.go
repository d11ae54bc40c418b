package notification

import "context"

// NotificationService creates and delivers in-app notifications.
// Notify is best effort. Callers treat a failed notification as
// non-fatal and only log it.
type NotificationService interface {
	Notify(ctx context.Context, employeeID string, notifType NotificationType, title, message string) error
	ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, employeeID string) error
	CountUnread(ctx context.Context, employeeID string) (int, error)
}
