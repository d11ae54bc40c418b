package notification

import "context"

// NotificationRepository defines data access for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	GetByID(ctx context.Context, id string) (Notification, error)
	ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, employeeID string) error
	CountUnread(ctx context.Context, employeeID string) (int, error)
}
