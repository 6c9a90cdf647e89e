package service

import (
	"context"
	"fmt"

	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/derive"
)

// DashboardService serves the dashboard and calendar read-models.
// Both recompute from a fresh snapshot per request.
type DashboardService struct {
	loader *SnapshotLoader
	clock  dateutil.Clock
}

func NewDashboardService(loader *SnapshotLoader, clock dateutil.Clock) *DashboardService {
	return &DashboardService{loader: loader, clock: clock}
}

func (s *DashboardService) Dashboard(ctx context.Context) (*derive.Dashboard, error) {
	snapshot, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	d := derive.BuildDashboard(snapshot, dateutil.Today(s.clock))
	return &d, nil
}

// CalendarDay returns everything scheduled on the given ISO date.
func (s *DashboardService) CalendarDay(ctx context.Context, date string) (*derive.CalendarDay, error) {
	if !dateutil.IsValid(date) {
		return nil, ErrInvalidDate
	}
	snapshot, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	day := derive.BuildCalendarDay(snapshot, date)
	return &day, nil
}
