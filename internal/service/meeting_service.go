package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/repository"
)

// MeetingService manages meetings.
type MeetingService struct {
	repo   *repository.MeetingRepository
	logger *zap.Logger
}

func NewMeetingService(repo *repository.MeetingRepository, logger *zap.Logger) *MeetingService {
	return &MeetingService{repo: repo, logger: logger}
}

func (s *MeetingService) List(ctx context.Context) ([]domain.Meeting, error) {
	meetings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

func (s *MeetingService) Get(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	meeting, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

func (s *MeetingService) Create(ctx context.Context, req domain.CreateMeetingRequest) (*domain.Meeting, error) {
	meeting := &domain.Meeting{
		CompanyID:   req.CompanyID,
		ContactID:   req.ContactID,
		Title:       req.Title,
		Date:        req.Date,
		Attendees:   req.Attendees,
		Summary:     req.Summary,
		ActionItems: req.ActionItems,
	}
	if err := s.repo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	s.logger.Info("created meeting", zap.String("meeting_id", meeting.ID.String()))
	return meeting, nil
}

func (s *MeetingService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateMeetingRequest) (*domain.Meeting, error) {
	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ContactID != nil {
		meeting.ContactID = req.ContactID
	}
	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Date != nil {
		meeting.Date = *req.Date
	}
	if req.Attendees != nil {
		meeting.Attendees = *req.Attendees
	}
	if req.Summary != nil {
		meeting.Summary = *req.Summary
	}
	if req.ActionItems != nil {
		meeting.ActionItems = *req.ActionItems
	}
	if err := s.repo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return meeting, nil
}

func (s *MeetingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMeetingNotFound
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}
