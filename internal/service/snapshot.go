package service

import (
	"context"
	"fmt"

	"github.com/labcrm/crm-api/internal/derive"
	"github.com/labcrm/crm-api/internal/repository"
)

// SnapshotLoader materializes the full dataset the derivation engine
// runs over. Every derived view recomputes from a fresh snapshot; at
// this system's data volume that is simpler and safer than keeping
// incremental indexes consistent.
type SnapshotLoader struct {
	companies *repository.CompanyRepository
	meetings  *repository.MeetingRepository
	tasks     *repository.TaskRepository
}

func NewSnapshotLoader(
	companies *repository.CompanyRepository,
	meetings *repository.MeetingRepository,
	tasks *repository.TaskRepository,
) *SnapshotLoader {
	return &SnapshotLoader{companies: companies, meetings: meetings, tasks: tasks}
}

// Load reads all companies (with children), meetings and tasks.
func (l *SnapshotLoader) Load(ctx context.Context) (*derive.Snapshot, error) {
	companies, err := l.companies.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}
	meetings, err := l.meetings.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load meetings: %w", err)
	}
	tasks, err := l.tasks.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return &derive.Snapshot{
		Companies: companies,
		Meetings:  meetings,
		Tasks:     tasks,
	}, nil
}
