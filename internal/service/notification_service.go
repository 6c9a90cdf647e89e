package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/notify"
	"github.com/labcrm/crm-api/internal/repository"
)

// NotificationService exposes the notification inbox and keeps it in
// sync with overdue tasks.
type NotificationService struct {
	repo   *repository.NotificationRepository
	tasks  *repository.TaskRepository
	clock  dateutil.Clock
	logger *zap.Logger
}

func NewNotificationService(
	repo *repository.NotificationRepository,
	tasks *repository.TaskRepository,
	clock dateutil.Clock,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{repo: repo, tasks: tasks, clock: clock, logger: logger}
}

func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	notifications, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	count, err := s.repo.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id string) error {
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	if err := s.repo.MarkAllAsRead(ctx); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// Resync reconciles overdue-task notices with the current task list.
// It runs after every task mutation and on the background schedule, so
// notices appear when a deadline passes even without task activity.
func (s *NotificationService) Resync(ctx context.Context) error {
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}

	now := s.clock.Now()
	res := notify.SyncOverdue(tasks, existing, now.Format(dateutil.ISODate), now)
	if len(res.Created) == 0 && len(res.DeletedIDs) == 0 {
		return nil
	}
	if err := s.repo.ApplyDiff(ctx, res.Created, res.DeletedIDs); err != nil {
		return fmt.Errorf("failed to apply notification diff: %w", err)
	}
	s.logger.Info("synchronized overdue notifications",
		zap.Int("created", len(res.Created)),
		zap.Int("deleted", len(res.DeletedIDs)))
	return nil
}
