package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/labcrm/crm-api/internal/domain"
)

// MeetingRepository persists meetings.
type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) FindAll(ctx context.Context) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	err := r.db.WithContext(ctx).Order("date").Find(&meetings).Error
	return meetings, err
}

func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	var meeting domain.Meeting
	if err := r.db.WithContext(ctx).First(&meeting, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *MeetingRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("date").Find(&meetings).Error
	return meetings, err
}

func (r *MeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

func (r *MeetingRepository) Update(ctx context.Context, meeting *domain.Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}

func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Meeting{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
