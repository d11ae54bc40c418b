package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const notificationColumns = `
	id, employee_id, type, title, message, is_read, read_at, created_at
`

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, employee_id, type, title, message, is_read, read_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		n.ID, n.EmployeeID, string(n.Type), n.Title, n.Message, n.Read, n.ReadAt, n.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (notification.Notification, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM notifications WHERE id = $1`, notificationColumns)

	n, err := scanNotification(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return notification.Notification{}, notification.ErrNotificationNotFound
		}
		return notification.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}
	return n, nil
}

func (r *notificationRepository) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]notification.Notification, error) {
	q := database.GetQuerier(ctx, r.db)

	where := "employee_id = $1"
	if unreadOnly {
		where += " AND is_read = false"
	}

	query := fmt.Sprintf(`
		SELECT %s FROM notifications
		WHERE %s
		ORDER BY created_at DESC
	`, notificationColumns, where)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var items []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}
	return items, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE notifications SET is_read = true, read_at = NOW() WHERE id = $1 AND is_read = false`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, employeeID string) error {
	q := database.GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE notifications SET is_read = true, read_at = NOW() WHERE employee_id = $1 AND is_read = false`,
		employeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, employeeID string) (int, error) {
	q := database.GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE employee_id = $1 AND is_read = false`,
		employeeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var n notification.Notification
	var notifType string

	err := row.Scan(
		&n.ID, &n.EmployeeID, &notifType, &n.Title, &n.Message, &n.Read, &n.ReadAt, &n.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, err
	}

	n.Type = notification.NotificationType(notifType)
	return n, nil
}
