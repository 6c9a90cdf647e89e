// Package notify keeps overdue-task notifications in step with the
// task list. The synchronizer is a pure diff; the notification service
// applies its result to storage.
package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/domain"
)

// overdueSuffix marks a notification as an overdue-task notice. The id
// is derived from the task id, which makes resynchronization
// idempotent: the same overdue task always produces the same notice.
const overdueSuffix = "-overdue"

// OverdueNoticeID returns the deterministic notification id for a task.
func OverdueNoticeID(taskID string) string {
	return taskID + overdueSuffix
}

// IsOverdueNotice reports whether a notification is an overdue-task
// notice managed by this synchronizer.
func IsOverdueNotice(n *domain.Notification) bool {
	return strings.HasSuffix(n.ID, overdueSuffix)
}

// Result is the outcome of a synchronization pass.
//
// Desired is the complete notification set after the pass. Created and
// DeletedIDs are the storage delta: notices to insert and notices to
// remove. An empty delta means the pass was a no-op.
type Result struct {
	Desired    []domain.Notification
	Created    []domain.Notification
	DeletedIDs []string
}

// SyncOverdue diffs the current notification set against the tasks
// that are overdue as of today (date-only ISO string).
//
// Notices for still-overdue tasks survive with their read state.
// Notices whose task is no longer overdue, was completed, or was
// deleted are dropped. Newly overdue tasks get a fresh unread warning
// stamped with now. Notifications that are not overdue notices pass
// through untouched.
//
// A dropped notice takes its read state with it: if the task becomes
// overdue again later, the replacement notice starts unread.
func SyncOverdue(tasks []domain.Task, existing []domain.Notification, today string, now time.Time) Result {
	overdue := map[string]*domain.Task{}
	for i := range tasks {
		t := &tasks[i]
		if t.Status == domain.TaskStatusCompleted {
			continue
		}
		end := dateutil.DateOnly(t.EndDate)
		if !dateutil.IsValid(end) || end >= today {
			continue
		}
		overdue[t.ID.String()] = t
	}

	res := Result{Desired: []domain.Notification{}}
	seen := map[string]bool{}
	for i := range existing {
		n := existing[i]
		if !IsOverdueNotice(&n) {
			res.Desired = append(res.Desired, n)
			continue
		}
		taskID := strings.TrimSuffix(n.ID, overdueSuffix)
		if _, stillOverdue := overdue[taskID]; stillOverdue {
			res.Desired = append(res.Desired, n)
			seen[taskID] = true
		} else {
			res.DeletedIDs = append(res.DeletedIDs, n.ID)
		}
	}

	for i := range tasks {
		t := &tasks[i]
		id := t.ID.String()
		if _, isOverdue := overdue[id]; !isOverdue || seen[id] {
			continue
		}
		n := domain.Notification{
			ID:        OverdueNoticeID(id),
			Message:   fmt.Sprintf("태스크 \"%s\" 마감일이 지났습니다.", t.Name),
			Type:      domain.NotificationTypeWarning,
			RelatedID: id,
			IsRead:    false,
			CreatedAt: now,
		}
		res.Desired = append(res.Desired, n)
		res.Created = append(res.Created, n)
	}
	return res
}
