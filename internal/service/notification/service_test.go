package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type fakeNotificationRepo struct {
	notifications map[string]notification.Notification
	now           func() time.Time
}

func newFakeNotificationRepo(now func() time.Time) *fakeNotificationRepo {
	return &fakeNotificationRepo{
		notifications: make(map[string]notification.Notification),
		now:           now,
	}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	r.notifications[n.ID] = n
	return n, nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id string) (notification.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return notification.Notification{}, notification.ErrNotificationNotFound
	}
	return n, nil
}

func (r *fakeNotificationRepo) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]notification.Notification, error) {
	var result []notification.Notification
	for _, n := range r.notifications {
		if n.EmployeeID != employeeID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	n, ok := r.notifications[id]
	if !ok {
		return notification.ErrNotificationNotFound
	}
	now := r.now()
	n.Read = true
	n.ReadAt = &now
	r.notifications[id] = n
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, employeeID string) error {
	now := r.now()
	for id, n := range r.notifications {
		if n.EmployeeID == employeeID && !n.Read {
			n.Read = true
			n.ReadAt = &now
			r.notifications[id] = n
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, employeeID string) (int, error) {
	count := 0
	for _, n := range r.notifications {
		if n.EmployeeID == employeeID && !n.Read {
			count++
		}
	}
	return count, nil
}

func newNotificationTestService() (notification.NotificationService, *fakeNotificationRepo) {
	clk := clock.Fixed{T: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)}
	repo := newFakeNotificationRepo(clk.Now)
	return NewNotificationService(repo, clk), repo
}

func TestNotificationService_NotifyAndCount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationTestService()

	require.NoError(t, svc.Notify(ctx, "emp-1", notification.TypeVacationApproved, "Vacation approved", "Your July request was approved."))
	require.NoError(t, svc.Notify(ctx, "emp-1", notification.TypePayrollPaid, "Payroll paid", "June payroll has been paid."))
	require.NoError(t, svc.Notify(ctx, "emp-2", notification.TypeGeneral, "Welcome", "Welcome aboard."))

	count, err := svc.CountUnread(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationTestService()

	require.NoError(t, svc.Notify(ctx, "emp-1", notification.TypeGeneral, "Hello", "First message."))

	all, err := svc.ListByEmployee(ctx, "emp-1", false)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, svc.MarkRead(ctx, all[0].ID))

	unread, err := svc.ListByEmployee(ctx, "emp-1", true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	err = svc.MarkRead(ctx, "missing")
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationTestService()

	require.NoError(t, svc.Notify(ctx, "emp-1", notification.TypeGeneral, "One", "First."))
	require.NoError(t, svc.Notify(ctx, "emp-1", notification.TypeGeneral, "Two", "Second."))

	require.NoError(t, svc.MarkAllRead(ctx, "emp-1"))

	count, err := svc.CountUnread(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
