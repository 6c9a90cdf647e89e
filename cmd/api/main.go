// Command api runs the CRM HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/auth"
	"github.com/labcrm/crm-api/internal/config"
	"github.com/labcrm/crm-api/internal/database"
	"github.com/labcrm/crm-api/internal/dateutil"
	"github.com/labcrm/crm-api/internal/http/handler"
	"github.com/labcrm/crm-api/internal/http/router"
	"github.com/labcrm/crm-api/internal/jobs"
	"github.com/labcrm/crm-api/internal/logger"
	"github.com/labcrm/crm-api/internal/repository"
	"github.com/labcrm/crm-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := database.SeedAdmin(db, cfg.Auth, log); err != nil {
		return err
	}

	clock := dateutil.SystemClock{}
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clock)

	companyRepo := repository.NewCompanyRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)

	loader := service.NewSnapshotLoader(companyRepo, meetingRepo, taskRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, taskRepo, clock, log)
	companySvc := service.NewCompanyService(companyRepo, log)
	meetingSvc := service.NewMeetingService(meetingRepo, log)
	taskSvc := service.NewTaskService(taskRepo, notificationSvc, log)
	dashboardSvc := service.NewDashboardService(loader, clock)
	analyticsSvc := service.NewAnalyticsService(loader)
	exportSvc := service.NewExportService(loader)
	authSvc := service.NewAuthService(userRepo, issuer, log)

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc, log),
		Company:      handler.NewCompanyHandler(companySvc, log),
		Meeting:      handler.NewMeetingHandler(meetingSvc, log),
		Task:         handler.NewTaskHandler(taskSvc, log),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc, log),
		Analytics:    handler.NewAnalyticsHandler(analyticsSvc, log),
		Notification: handler.NewNotificationHandler(notificationSvc, log),
		Export:       handler.NewExportHandler(exportSvc, log),
		TokenIssuer:  issuer,
	}

	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterOverdueSync(scheduler, cfg.Jobs, notificationSvc, log); err != nil {
			return err
		}
		scheduler.Start()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, db, handlers, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
