// Package router wires the middleware stack and route tree.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/labcrm/crm-api/internal/auth"
	"github.com/labcrm/crm-api/internal/config"
	"github.com/labcrm/crm-api/internal/database"
	"github.com/labcrm/crm-api/internal/http/handler"
	"github.com/labcrm/crm-api/internal/http/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Company      *handler.CompanyHandler
	Meeting      *handler.MeetingHandler
	Task         *handler.TaskHandler
	Dashboard    *handler.DashboardHandler
	Analytics    *handler.AnalyticsHandler
	Notification *handler.NotificationHandler
	Export       *handler.ExportHandler
	TokenIssuer  *auth.TokenIssuer
}

// New builds the chi router with the full middleware stack.
func New(cfg *config.Config, db *gorm.DB, h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RateLimit(cfg.RateLimit))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/db", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		w.Header().Set("Content-Type", "application/json")
		if err := database.Ping(ctx, db); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.With(auth.Middleware(h.TokenIssuer, logger)).Get("/me", h.Auth.Me)
		})

		// Everything else requires a valid token.
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.TokenIssuer, logger))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", h.Company.List)
				r.Post("/", h.Company.Create)
				r.Route("/{companyID}", func(r chi.Router) {
					r.Get("/", h.Company.Get)
					r.Put("/", h.Company.Update)
					r.Delete("/", h.Company.Delete)

					r.Post("/contacts", h.Company.AddContact)
					r.Put("/contacts/{contactID}", h.Company.UpdateContact)
					r.Delete("/contacts/{contactID}", h.Company.DeleteContact)

					r.Post("/quotations", h.Company.AddQuotation)
					r.Put("/quotations/{quotationID}", h.Company.UpdateQuotation)
					r.Delete("/quotations/{quotationID}", h.Company.DeleteQuotation)

					r.Post("/contracts", h.Company.AddContract)
					r.Put("/contracts/{contractID}", h.Company.UpdateContract)
					r.Delete("/contracts/{contractID}", h.Company.DeleteContract)

					r.Post("/studies", h.Company.AddStudy)
					r.Put("/studies/{studyID}", h.Company.UpdateStudy)
					r.Delete("/studies/{studyID}", h.Company.DeleteStudy)
				})
			})

			r.Route("/meetings", func(r chi.Router) {
				r.Get("/", h.Meeting.List)
				r.Post("/", h.Meeting.Create)
				r.Get("/{meetingID}", h.Meeting.Get)
				r.Put("/{meetingID}", h.Meeting.Update)
				r.Delete("/{meetingID}", h.Meeting.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Post("/", h.Task.Create)
				r.Get("/{taskID}", h.Task.Get)
				r.Put("/{taskID}", h.Task.Update)
				r.Delete("/{taskID}", h.Task.Delete)
			})

			r.Get("/dashboard", h.Dashboard.Dashboard)
			r.Get("/calendar/{date}", h.Dashboard.CalendarDay)
			r.Get("/analytics", h.Analytics.Analytics)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/count", h.Notification.UnreadCount)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
				r.Put("/{notificationID}/read", h.Notification.MarkAsRead)
			})

			r.Get("/export/{entity}", h.Export.Download)
		})
	})

	return r
}
