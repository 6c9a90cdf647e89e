package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/labcrm/crm-api/internal/domain"
)

// NotificationRepository persists notifications.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// FindAll returns notifications newest first.
func (r *NotificationRepository) FindAll(ctx context.Context) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("is_read = ?", false).Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("is_read = ?", false).Update("is_read", true).Error
}

// ApplyDiff inserts and deletes notifications in one transaction, used
// by the overdue synchronizer.
func (r *NotificationRepository) ApplyDiff(ctx context.Context, created []domain.Notification, deletedIDs []string) error {
	if len(created) == 0 && len(deletedIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(deletedIDs) > 0 {
			if err := tx.Delete(&domain.Notification{}, "id IN ?", deletedIDs).Error; err != nil {
				return err
			}
		}
		if len(created) > 0 {
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
