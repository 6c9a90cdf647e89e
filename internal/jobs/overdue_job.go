package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/config"
	"github.com/labcrm/crm-api/internal/service"
)

// RegisterOverdueSync schedules the periodic overdue-notification
// resync. Task mutations already resync inline; this job covers
// deadlines that pass while nobody touches a task.
func RegisterOverdueSync(s *Scheduler, cfg config.JobsConfig, notifications *service.NotificationService, logger *zap.Logger) error {
	return s.AddJob("overdue-notification-sync", cfg.OverdueSyncCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := notifications.Resync(ctx); err != nil {
			logger.Error("scheduled overdue resync failed", zap.Error(err))
		}
	})
}
