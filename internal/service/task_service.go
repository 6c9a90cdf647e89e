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

// TaskService manages tasks. Every mutation triggers an overdue
// notification resync so the inbox never lags behind the task list.
type TaskService struct {
	repo          *repository.TaskRepository
	notifications *NotificationService
	logger        *zap.Logger
}

func NewTaskService(repo *repository.TaskRepository, notifications *NotificationService, logger *zap.Logger) *TaskService {
	return &TaskService{repo: repo, notifications: notifications, logger: logger}
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, req domain.CreateTaskRequest) (*domain.Task, error) {
	status := req.Status
	if status == "" {
		status = domain.TaskStatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidTaskStatus
	}
	task := &domain.Task{
		CompanyID:   req.CompanyID,
		ContactID:   req.ContactID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
		Assignee:    req.Assignee,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	s.resync(ctx)
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *req.Status
	}
	if req.ContactID != nil {
		task.ContactID = req.ContactID
	}
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = *req.EndDate
	}
	if req.Assignee != nil {
		task.Assignee = *req.Assignee
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	s.resync(ctx)
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	s.resync(ctx)
	return nil
}

// resync is best effort: a failed notification sync never fails the
// task mutation, the periodic job will catch up.
func (s *TaskService) resync(ctx context.Context) {
	if err := s.notifications.Resync(ctx); err != nil {
		s.logger.Warn("overdue notification resync failed", zap.Error(err))
	}
}
