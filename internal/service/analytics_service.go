package service

import (
	"context"
	"fmt"

	"github.com/labcrm/crm-api/internal/derive"
)

// AnalyticsService serves the analytics read-model.
type AnalyticsService struct {
	loader *SnapshotLoader
}

func NewAnalyticsService(loader *SnapshotLoader) *AnalyticsService {
	return &AnalyticsService{loader: loader}
}

func (s *AnalyticsService) Analytics(ctx context.Context) (*derive.Analytics, error) {
	snapshot, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	a := derive.BuildAnalytics(snapshot)
	return &a, nil
}
