package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcrm/crm-api/internal/domain"
)

func createTaskCompany(t *testing.T, env *testEnv) uuid.UUID {
	t.Helper()
	company, err := env.companies.Create(context.Background(), domain.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)
	return company.ID
}

func TestTaskMutationSyncsOverdueNotifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	companyID := createTaskCompany(t, env)

	// Creating an already-overdue task produces an unread warning.
	task, err := env.tasks.Create(ctx, domain.CreateTaskRequest{
		CompanyID: companyID,
		Name:      "늦은 보고서",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-10",
	})
	require.NoError(t, err)

	notifications, err := env.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, task.ID.String()+"-overdue", notifications[0].ID)
	assert.Equal(t, domain.NotificationTypeWarning, notifications[0].Type)
	assert.Equal(t, `태스크 "늦은 보고서" 마감일이 지났습니다.`, notifications[0].Message)
	assert.False(t, notifications[0].IsRead)

	count, err := env.notifications.UnreadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// Completing the task clears the notice.
	done := domain.TaskStatusCompleted
	_, err = env.tasks.Update(ctx, task.ID, domain.UpdateTaskRequest{Status: &done})
	require.NoError(t, err)

	notifications, err = env.notifications.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestResyncPreservesReadStateWhileOverdue(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	companyID := createTaskCompany(t, env)

	task, err := env.tasks.Create(ctx, domain.CreateTaskRequest{
		CompanyID: companyID,
		Name:      "late",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-10",
	})
	require.NoError(t, err)

	noticeID := task.ID.String() + "-overdue"
	require.NoError(t, env.notifications.MarkAsRead(ctx, noticeID))

	// A redundant resync is a no-op: still one notice, still read.
	require.NoError(t, env.notifications.Resync(ctx))
	notifications, err := env.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].IsRead)
}

func TestReentryProducesFreshUnreadNotice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	companyID := createTaskCompany(t, env)

	task, err := env.tasks.Create(ctx, domain.CreateTaskRequest{
		CompanyID: companyID,
		Name:      "late",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-10",
	})
	require.NoError(t, err)
	noticeID := task.ID.String() + "-overdue"
	require.NoError(t, env.notifications.MarkAsRead(ctx, noticeID))

	// Deadline pushed past today: notice removed, read state lost.
	future := "2025-07-01"
	_, err = env.tasks.Update(ctx, task.ID, domain.UpdateTaskRequest{EndDate: &future})
	require.NoError(t, err)
	notifications, err := env.notifications.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	// Deadline pulled back: the notice returns unread.
	past := "2025-06-01"
	_, err = env.tasks.Update(ctx, task.ID, domain.UpdateTaskRequest{EndDate: &past})
	require.NoError(t, err)
	notifications, err = env.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].IsRead)
}

func TestTaskDeletionRemovesNotice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	companyID := createTaskCompany(t, env)

	task, err := env.tasks.Create(ctx, domain.CreateTaskRequest{
		CompanyID: companyID,
		Name:      "late",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-10",
	})
	require.NoError(t, err)

	require.NoError(t, env.tasks.Delete(ctx, task.ID))
	notifications, err := env.notifications.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestMarkAllAsRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	companyID := createTaskCompany(t, env)

	for _, name := range []string{"a", "b", "c"} {
		_, err := env.tasks.Create(ctx, domain.CreateTaskRequest{
			CompanyID: companyID,
			Name:      name,
			StartDate: "2025-06-01",
			EndDate:   "2025-06-10",
		})
		require.NoError(t, err)
	}

	count, err := env.notifications.UnreadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	require.NoError(t, env.notifications.MarkAllAsRead(ctx))
	count, err = env.notifications.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkAsReadUnknownID(t *testing.T) {
	env := newTestEnv(t)
	err := env.notifications.MarkAsRead(context.Background(), "missing-overdue")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
