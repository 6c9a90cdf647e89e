package service

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/labcrm/crm-api/internal/database"
	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/repository"
)

// testClock pins "now" to 2025-06-15 for every service test.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	db            *gorm.DB
	companies     *CompanyService
	meetings      *MeetingService
	tasks         *TaskService
	notifications *NotificationService
	dashboard     *DashboardService
	analytics     *AnalyticsService
	export        *ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := database.OpenTest(t)
	log := zap.NewNop()
	clock := dateutil.FixedClock{T: testNow}

	companyRepo := repository.NewCompanyRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	loader := NewSnapshotLoader(companyRepo, meetingRepo, taskRepo)
	notifications := NewNotificationService(notificationRepo, taskRepo, clock, log)

	return &testEnv{
		db:            db,
		companies:     NewCompanyService(companyRepo, log),
		meetings:      NewMeetingService(meetingRepo, log),
		tasks:         NewTaskService(taskRepo, notifications, log),
		notifications: notifications,
		dashboard:     NewDashboardService(loader, clock),
		analytics:     NewAnalyticsService(loader),
		export:        NewExportService(loader),
	}
}
